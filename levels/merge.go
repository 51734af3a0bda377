// SPDX-License-Identifier: MIT
// Package: levels
//
// Merge semantics:
//   - Both inputs are descending; the output is their union, descending.
//   - Equal heads advance both pointers and are emitted once, so the
//     output never contains duplicates.
//   - MergeAll folds left; the resulting membership does not depend on
//     the order of the inputs.

package levels

// Merge returns the union of a and b in descending order.
//
// Implementation:
//   - Stage 1: compare heads, emit the larger one.
//   - Stage 2: advance every pointer whose head was not strictly smaller.
//   - Stage 3: append whichever tail remains.
//
// Complexity: O(|a|+|b|) time and space.
func Merge(a, b Set) Set {
	x, y := a.levels, b.levels
	out := make([]float64, 0, len(x)+len(y))

	i, j := 0, 0
	for i < len(x) && j < len(y) {
		hx, hy := x[i], y[j]
		if hx >= hy {
			out = append(out, hx)
		} else {
			out = append(out, hy)
		}
		if hx >= hy {
			i++
		}
		if hy >= hx {
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)

	return Set{levels: out}
}

// MergeAll folds Merge over sets from left to right. With no input it
// returns the empty Set.
func MergeAll(sets ...Set) Set {
	if len(sets) == 0 {
		return Set{}
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc = Merge(acc, s)
	}

	return acc
}
