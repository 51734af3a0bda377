// SPDX-License-Identifier: MIT
// Package: levels
//
// Purpose:
//   - Single source of truth for level-set validation.
//   - Checks run in a fixed order so the reported sentinel is stable:
//     empty → top level → finiteness → range → ordering.

package levels

import "math"

// Validate checks that levels form a valid level set.
//
// Errors (first violation wins):
//   - ErrEmpty:         len(levels) == 0.
//   - ErrMissingTop:    1.0 absent or repeated.
//   - ErrNotFinite:     NaN or ±Inf entry.
//   - ErrOutOfRange:    entry ≤ 0 or > 1.
//   - ErrNotDescending: some entry ≥ its predecessor.
//
// Complexity: O(n), no allocations.
func Validate(levels []float64) error {
	if len(levels) == 0 {
		return levelsErrorf("Validate", ErrEmpty)
	}

	tops := 0
	for _, l := range levels {
		if l == Top {
			tops++
		}
	}
	if tops != 1 {
		return levelsErrorf("Validate", ErrMissingTop)
	}

	for _, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return levelsErrorf("Validate", ErrNotFinite)
		}
	}

	if err := ValidateLevels(levels...); err != nil {
		return levelsErrorf("Validate", err)
	}

	for i := 1; i < len(levels); i++ {
		if levels[i] >= levels[i-1] {
			return levelsErrorf("Validate", ErrNotDescending)
		}
	}

	return nil
}

// ValidateLevels checks that every entry is a single admissible level in
// (0,1]. Unlike Validate it says nothing about order or the top level,
// which makes it suitable for point queries.
func ValidateLevels(levels ...float64) error {
	for _, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return ErrNotFinite
		}
		if !(l > 0 && l <= Top) {
			return ErrOutOfRange
		}
	}

	return nil
}
