// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_MissingDataUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *Configuration
	}{
		{name: "nil configuration", cfg: nil},
		{name: "nil dataUnits", cfg: &Configuration{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.cfg)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), "dataUnits") {
				t.Errorf("error %q should mention the missing dataUnits section", err)
			}
		})
	}
}

func TestValidate_AccumulatesAllProblems(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{DataUnits: UnitTree{
		"bogus_group": map[string]any{},
		GroupGlobalData: map[string]any{
			"meta_data":    true,
			"not_a_unit":   true,
			"another_fake": false,
		},
		GroupSites: map[string]any{
			"RefArch":    map[string]any{"content": true, "nonsense": true},
			"SiteGen":    "yes",
			"Storefront": true,
		},
	}}

	err := Validate(cfg)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}

	want := []string{
		`unknown data unit group "bogus_group"`,
		`unknown global data unit "not_a_unit"`,
		`unknown global data unit "another_fake"`,
		`site "RefArch": unknown site data unit "nonsense"`,
		`site "SiteGen": value must be a boolean or an object`,
	}
	if len(verr.Problems) != len(want) {
		t.Fatalf("got %d problems %v, want %d", len(verr.Problems), verr.Problems, len(want))
	}
	joined := err.Error()
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("error list missing %q in:\n%s", w, joined)
		}
	}
	if got := len(strings.Split(joined, "\n")); got != len(want) {
		t.Errorf("Error() should join one problem per line, got %d lines", got)
	}
}

func TestValidate_ValidConfigurations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *Configuration
	}{
		{name: "empty dataUnits", cfg: &Configuration{DataUnits: UnitTree{}}},
		{
			name: "nothing enabled is still valid",
			cfg: &Configuration{DataUnits: UnitTree{
				GroupGlobalData: map[string]any{"meta_data": false},
			}},
		},
		{
			name: "boolean site shorthand",
			cfg: &Configuration{DataUnits: UnitTree{
				GroupSites: map[string]any{"RefArch": true, "SiteGen": false},
			}},
		},
		{
			name: "sentinel all accepted in both categories",
			cfg: &Configuration{DataUnits: UnitTree{
				GroupGlobalData: map[string]any{AllUnits: true},
				GroupSites:      map[string]any{"RefArch": map[string]any{AllUnits: true}},
			}},
		},
		{
			name: "everything populated",
			cfg: &Configuration{DataUnits: UnitTree{
				GroupGlobalData: map[string]any{"meta_data": true, "custom_types": true},
				GroupSites: map[string]any{
					"RefArch": map[string]any{"content": true, "coupons": false},
				},
				GroupCustomerLists:  map[string]any{"loyal-customers": true},
				GroupInventoryLists: map[string]any{"inventory-main": true},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := Validate(tt.cfg); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

// The validator deliberately does not inspect values under the two list
// collections; this pins the observed leniency of the external tool.
func TestValidate_ListCollectionsUnchecked(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{DataUnits: UnitTree{
		GroupCustomerLists:  map[string]any{"anything goes": "even strings"},
		GroupInventoryLists: map[string]any{"numbers too": 42},
	}}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() = %v, want nil for arbitrary list collection values", err)
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{DataUnits: UnitTree{
		GroupGlobalData: map[string]any{"meta_data": false},
	}}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if v, ok := cfg.DataUnits[GroupGlobalData].(map[string]any); !ok || v["meta_data"] != false {
		t.Error("Validate must leave the configuration untouched")
	}
}
