// SPDX-License-Identifier: MPL-2.0

package exportcfg

// FilterEnabled reduces a dataUnits tree to only its enabled entries.
// The recursion is depth-generic: a true leaf survives, a false leaf is
// dropped, and a nested tree is kept only if it has at least one
// surviving entry after filtering. Anything that is neither a boolean
// nor a nested tree is dropped (the validator has already rejected such
// values on the loading path).
//
// FilterEnabled is idempotent and never mutates its input; the result is
// a fresh tree with no aliasing back into the argument.
func FilterEnabled(tree UnitTree) UnitTree {
	filtered := UnitTree{}
	for key, value := range tree {
		switch v := value.(type) {
		case bool:
			if v {
				filtered[key] = true
			}
		case map[string]any:
			if sub := FilterEnabled(v); len(sub) > 0 {
				filtered[key] = sub
			}
		}
	}
	return filtered
}

// HasEnabledUnits reports whether any data unit in the tree is enabled,
// i.e. whether FilterEnabled would yield a non-empty result.
func HasEnabledUnits(tree UnitTree) bool {
	return len(FilterEnabled(tree)) > 0
}
