// SPDX-License-Identifier: MPL-2.0

package b2ctool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ListSites fetches the instance's site identifiers via `sites list`.
// Callers treat this as best effort: the wizard falls back to manual
// entry on any error without surfacing the cause to the operator.
func (t *Tool) ListSites(ctx context.Context) ([]string, error) {
	result, err := t.Run(ctx, "sites", "list")
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("sites list: %s", ParseFailure(result.Combined()).Message)
	}

	var response struct {
		Sites []struct {
			ID string `json:"id"`
		} `json:"sites"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(result.Stdout)), &response); err != nil {
		return nil, fmt.Errorf("decode sites list: %w", err)
	}

	ids := make([]string, 0, len(response.Sites))
	for _, site := range response.Sites {
		if site.ID != "" {
			ids = append(ids, site.ID)
		}
	}
	return ids, nil
}
