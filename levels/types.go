// SPDX-License-Identifier: MIT

package levels

import (
	"math"
	"strconv"
	"strings"
)

// Top is the mandatory coarsest level present in every level set.
const Top = 1.0

// Set is an immutable, validated level set.
//
// Invariants (enforced by New):
//   - len > 0, contains Top exactly once (always at index 0);
//   - every level is finite and in (0,1];
//   - strictly descending, hence duplicate-free.
//
// The zero Set is empty and invalid; obtain values through New, MustNew,
// Merge or MergeAll.
type Set struct {
	levels []float64
}

// New validates levels and returns a Set holding a private copy of them.
//
// Errors: any sentinel from Validate, tagged with "New".
// Complexity: O(n).
func New(levels ...float64) (Set, error) {
	if err := Validate(levels); err != nil {
		return Set{}, levelsErrorf("New", err)
	}

	return Set{levels: append([]float64(nil), levels...)}, nil
}

// MustNew is New that panics on invalid input. Intended for literals in
// tests and examples.
func MustNew(levels ...float64) Set {
	s, err := New(levels...)
	if err != nil {
		panic(err)
	}

	return s
}

// Single returns the level set {1.0} used for promoted crisp values.
func Single() Set {
	return Set{levels: []float64{Top}}
}

// Len returns the number of levels.
func (s Set) Len() int { return len(s.levels) }

// At returns the i-th level in descending order. It panics when i is out
// of range, like slice indexing.
func (s Set) At(i int) float64 { return s.levels[i] }

// Values returns a copy of the levels in descending order.
func (s Set) Values() []float64 {
	return append([]float64(nil), s.levels...)
}

// Index returns the position of level, or -1 when absent.
// Complexity: O(log n) by binary search over the descending slice.
func (s Set) Index(level float64) int {
	lo, hi := 0, len(s.levels)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.levels[mid] > level {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.levels) && s.levels[lo] == level {
		return lo
	}

	return -1
}

// Contains reports whether level belongs to the set.
func (s Set) Contains(level float64) bool { return s.Index(level) >= 0 }

// Equal reports whether both sets hold the same levels in the same order.
func (s Set) Equal(o Set) bool {
	if len(s.levels) != len(o.levels) {
		return false
	}
	for i := range s.levels {
		if s.levels[i] != o.levels[i] {
			return false
		}
	}

	return true
}

// String renders the set as "[1 0.8 0.5]".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, l := range s.levels {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(l, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}

// Format renders a single level the way tables print it: always with a
// fractional part, so 1 prints as "1.0" and 0.8 as "0.8". Levels below
// 1e-4 switch to exponent notation with a two-digit exponent ("1e-05").
func Format(level float64) string {
	if level != 0 && math.Abs(level) < 1e-4 {
		return strconv.FormatFloat(level, 'e', -1, 64)
	}
	s := strconv.FormatFloat(level, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
