// SPDX-License-Identifier: MIT
// File: canonical.go
// Role: the squash rule shared by the lifting engine and the batch runner.
// Rule:
//   - walk pairs in descending level order;
//   - always keep the first pair (level 1.0);
//   - keep a later pair only if its value differs from the last KEPT value;
//   - one survivor collapses to a crisp value.
// Determinism:
//   - a single forward pass, no reordering; idempotent on canonical input.

package graded

import "github.com/katalvlaran/gradual/levels"

// Canonicalize reduces pairs to canonical form.
//
// Errors:
//   - ErrValidation when the pair levels do not form a valid level set.
//   - ErrTypeMismatch when the kept values do not share one runtime type.
//
// Complexity: O(n) equality checks plus copying the kept values.
func Canonicalize[T any](pairs []Pair[T], opts ...Option) (Result[T], error) {
	o := gatherOptions(opts...)

	lv := make([]float64, len(pairs))
	for i, p := range pairs {
		lv[i] = p.Level
	}
	if err := levels.Validate(lv); err != nil {
		return Result[T]{}, gradedErrorf("Canonicalize", err)
	}

	keptLevels := []float64{pairs[0].Level}
	keptValues := []T{pairs[0].Value}
	for _, p := range pairs[1:] {
		if o.equal(keptValues[len(keptValues)-1], p.Value) {
			continue
		}
		keptLevels = append(keptLevels, p.Level)
		keptValues = append(keptValues, p.Value)
	}

	if len(keptValues) == 1 {
		if o.deepCopy {
			return Result[T]{crisp: deepCopy(keptValues[0])}, nil
		}
		return Result[T]{crisp: keptValues[0]}, nil
	}

	// A subsequence of a valid level set is still valid (1.0 is kept).
	set, err := levels.New(keptLevels...)
	if err != nil {
		return Result[T]{}, gradedErrorf("Canonicalize", err)
	}
	v, err := build(set, keptValues, o)
	if err != nil {
		return Result[T]{}, err
	}

	return Result[T]{value: v}, nil
}

// IsCanonical reports whether v is already in canonical form, i.e. no two
// adjacent levels hold equal values.
func IsCanonical[T any](v *Value[T], opts ...Option) bool {
	o := gatherOptions(opts...)
	for i := 1; i < len(v.values); i++ {
		if o.equal(v.values[i-1], v.values[i]) {
			return false
		}
	}

	return true
}
