// SPDX-License-Identifier: MPL-2.0

package exportcfg

import (
	"reflect"
	"testing"
)

func TestFilterEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   UnitTree
		want UnitTree
	}{
		{name: "empty tree", in: UnitTree{}, want: UnitTree{}},
		{
			name: "true leaves survive",
			in:   UnitTree{GroupGlobalData: map[string]any{"meta_data": true}},
			want: UnitTree{GroupGlobalData: map[string]any{"meta_data": true}},
		},
		{
			name: "false leaves are dropped",
			in:   UnitTree{GroupGlobalData: map[string]any{"meta_data": false}},
			want: UnitTree{},
		},
		{
			name: "empty nested maps are dropped",
			in:   UnitTree{GroupSites: map[string]any{"RefArch": map[string]any{}}},
			want: UnitTree{},
		},
		{
			name: "all-false site collapses away",
			in: UnitTree{GroupSites: map[string]any{
				"RefArch": map[string]any{"content": false, "coupons": false},
			}},
			want: UnitTree{},
		},
		{
			name: "mixed depth",
			in: UnitTree{
				GroupGlobalData: map[string]any{"meta_data": true, "users": false},
				GroupSites: map[string]any{
					"RefArch": map[string]any{"content": true, "coupons": false},
					"SiteGen": false,
					"Other":   true,
				},
				GroupInventoryLists: map[string]any{"inventory-main": false},
			},
			want: UnitTree{
				GroupGlobalData: map[string]any{"meta_data": true},
				GroupSites: map[string]any{
					"RefArch": map[string]any{"content": true},
					"Other":   true,
				},
			},
		},
		{
			name: "non-boolean scalars are dropped",
			in:   UnitTree{GroupCustomerLists: map[string]any{"weird": "yes", "ok": true}},
			want: UnitTree{GroupCustomerLists: map[string]any{"ok": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterEnabled(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEnabled_Idempotent(t *testing.T) {
	t.Parallel()

	in := UnitTree{
		GroupGlobalData: map[string]any{"meta_data": true, "users": false},
		GroupSites: map[string]any{
			"RefArch": map[string]any{"content": true},
			"SiteGen": true,
		},
	}
	once := FilterEnabled(in)
	twice := FilterEnabled(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering is not idempotent: %v != %v", once, twice)
	}
}

func TestFilterEnabled_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	in := UnitTree{GroupSites: map[string]any{"RefArch": map[string]any{"content": true}}}
	got := FilterEnabled(in)
	got[GroupSites].(map[string]any)["RefArch"].(map[string]any)["coupons"] = true
	if _, ok := in[GroupSites].(map[string]any)["RefArch"].(map[string]any)["coupons"]; ok {
		t.Error("filtered tree must not alias the input tree")
	}
}

func TestHasEnabledUnits(t *testing.T) {
	t.Parallel()

	if HasEnabledUnits(UnitTree{}) {
		t.Error("empty tree has no enabled units")
	}
	if HasEnabledUnits(UnitTree{GroupGlobalData: map[string]any{"meta_data": false}}) {
		t.Error("all-false tree has no enabled units")
	}
	if !HasEnabledUnits(UnitTree{GroupSites: map[string]any{"RefArch": true}}) {
		t.Error("boolean site shorthand counts as enabled")
	}
}
