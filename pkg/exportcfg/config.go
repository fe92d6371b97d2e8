// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// The four groups permitted directly under dataUnits.
const (
	GroupGlobalData     = "global_data"
	GroupSites          = "sites"
	GroupCustomerLists  = "customer_lists"
	GroupInventoryLists = "inventory_lists"
)

// DefaultArchiveName is the archive name template used when a
// configuration does not set one.
const DefaultArchiveName = "{site}-export-{date}-{time}"

type (
	// UnitTree is the dataUnits section of a configuration: a tree whose
	// leaves are booleans and whose inner nodes are nested trees (JSON
	// objects decode to map[string]any, so nested nodes appear as
	// map[string]any values). A nil UnitTree means the section was absent
	// from the document, which is distinct from an empty one.
	UnitTree = map[string]any

	// ArchiveSettings holds archive naming options.
	ArchiveSettings struct {
		// Name is a template string; see RenderArchiveName for the
		// recognized placeholders.
		Name string `json:"name,omitempty"`
	}

	// Configuration is the root export configuration document.
	Configuration struct {
		Archive   ArchiveSettings `json:"archive,omitempty"`
		DataUnits UnitTree        `json:"dataUnits"`
	}

	// NotFoundError is returned by Load when the configuration file does
	// not exist. It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Path string
	}

	// ParseError is returned by Load when the file content is not valid
	// JSON. It carries the underlying syntax error and wraps ErrParse.
	ParseError struct {
		Path string
		Err  error
	}
)

// Sentinel errors wrapped by the typed file-loading errors.
var (
	ErrNotFound = errors.New("configuration file not found")
	ErrParse    = errors.New("configuration file is not valid JSON")
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file %q not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func (e *ParseError) Error() string {
	return fmt.Sprintf("configuration file %q is not valid JSON: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Load reads and decodes a configuration file. It distinguishes a missing
// file (*NotFoundError) from malformed JSON (*ParseError); structural
// validation is a separate step (see Validate) and is not performed here.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read configuration %q: %w", path, err)
	}

	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Save writes a configuration as pretty-printed JSON. The written file
// round-trips through Load unchanged.
func Save(path string, cfg *Configuration) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write configuration %q: %w", path, err)
	}
	return nil
}

// Template returns a starter configuration. The minimal variant shows a
// small commented-by-example selection; the full variant enumerates every
// catalog key set to false so operators can flip on what they need.
func Template(full bool) *Configuration {
	cfg := &Configuration{
		Archive: ArchiveSettings{Name: DefaultArchiveName},
	}

	if !full {
		cfg.DataUnits = UnitTree{
			GroupGlobalData: map[string]any{
				"meta_data":    false,
				"custom_types": false,
			},
			GroupSites: map[string]any{
				"RefArch": map[string]any{
					"content":          false,
					"site_preferences": false,
				},
			},
		}
		return cfg
	}

	global := map[string]any{}
	for _, key := range globalDataKeys {
		global[key] = false
	}
	site := map[string]any{}
	for _, key := range siteDataKeys {
		site[key] = false
	}
	cfg.DataUnits = UnitTree{
		GroupGlobalData:     global,
		GroupSites:          map[string]any{"RefArch": site},
		GroupCustomerLists:  map[string]any{},
		GroupInventoryLists: map[string]any{},
	}
	return cfg
}
