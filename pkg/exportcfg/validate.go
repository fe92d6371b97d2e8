// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalid is the sentinel error wrapped by ValidationError.
var ErrInvalid = errors.New("invalid export configuration")

// ValidationError aggregates every structural violation found in a
// configuration. It is only returned with at least one problem.
type ValidationError struct {
	Problems []string
}

// Error joins the accumulated problems one per line.
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "\n")
}

// Unwrap returns ErrInvalid for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// permittedGroups are the only keys allowed directly under dataUnits.
var permittedGroups = []string{
	GroupGlobalData,
	GroupSites,
	GroupCustomerLists,
	GroupInventoryLists,
}

// Validate checks a configuration against the data-unit catalog and the
// structural rules of the dataUnits tree. All violations are collected
// before reporting; a valid configuration is returned untouched (no
// mutation, no default filling). Values under customer_lists and
// inventory_lists are intentionally not checked beyond the group key
// itself, mirroring the external job tool's own leniency there.
func Validate(cfg *Configuration) error {
	if cfg == nil || cfg.DataUnits == nil {
		return &ValidationError{Problems: []string{"configuration has no dataUnits section"}}
	}

	var problems []string

	for _, group := range sortedKeys(cfg.DataUnits) {
		if !isPermittedGroup(group) {
			problems = append(problems, fmt.Sprintf("unknown data unit group %q", group))
		}
	}

	if global, ok := cfg.DataUnits[GroupGlobalData].(map[string]any); ok {
		for _, key := range sortedKeys(global) {
			if !IsGlobalDataKey(key) {
				problems = append(problems, fmt.Sprintf("unknown global data unit %q", key))
			}
		}
	}

	if sites, ok := cfg.DataUnits[GroupSites].(map[string]any); ok {
		for _, siteID := range sortedKeys(sites) {
			switch units := sites[siteID].(type) {
			case bool:
				// Shorthand for "all data units, on or off".
			case map[string]any:
				for _, key := range sortedKeys(units) {
					if !IsSiteDataKey(key) {
						problems = append(problems, fmt.Sprintf("site %q: unknown site data unit %q", siteID, key))
					}
				}
			default:
				problems = append(problems, fmt.Sprintf("site %q: value must be a boolean or an object", siteID))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func isPermittedGroup(group string) bool {
	for _, g := range permittedGroups {
		if g == group {
			return true
		}
	}
	return false
}

// sortedKeys gives the validator a deterministic report order regardless
// of Go's map iteration order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
