// SPDX-License-Identifier: MIT

package lift_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/lift"
)

// tagSet is a user type exposed to the registry through its methods only.
type tagSet map[string]bool

func tags(xs ...string) tagSet {
	s := tagSet{}
	for _, x := range xs {
		s[x] = true
	}

	return s
}

func (s tagSet) Union(o tagSet) tagSet {
	out := tagSet{}
	for k := range s {
		out[k] = true
	}
	for k := range o {
		out[k] = true
	}

	return out
}

func (s tagSet) Intersect(o tagSet) tagSet {
	out := tagSet{}
	for k := range s {
		if o[k] {
			out[k] = true
		}
	}

	return out
}

func (s tagSet) Or(o tagSet) tagSet  { return s.Union(o) }
func (s tagSet) And(o tagSet) tagSet { return s.Intersect(o) }

func (s tagSet) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return fmt.Sprint(keys)
}

// widget has an operation mixing a required operand, an optional one with
// a default, extra positional operands and keyword operands.
type widget struct{ Val int }

// widgetCombine computes self + a + b + c + sum(rest) + sum(other keywords)
// where b defaults to 7 and c is a required keyword.
func widgetCombine(self any, args []any, kwargs map[string]any) (any, error) {
	w, ok := self.(widget)
	if !ok {
		return nil, fmt.Errorf("self: want widget, got %T", self)
	}
	if len(args) < 1 {
		return nil, lift.ErrArity
	}
	a, ok := args[0].(widget)
	if !ok {
		return nil, fmt.Errorf("a: want widget, got %T", args[0])
	}
	b := 7
	if len(args) > 1 {
		if b, ok = args[1].(int); !ok {
			return nil, fmt.Errorf("b: want int, got %T", args[1])
		}
	}
	c, ok := kwargs["c"].(int)
	if !ok {
		return nil, fmt.Errorf("c: required int keyword, got %T", kwargs["c"])
	}
	sum := w.Val + a.Val + b + c
	for _, x := range args[min(2, len(args)):] {
		n, ok := x.(int)
		if !ok {
			return nil, fmt.Errorf("rest: want int, got %T", x)
		}
		sum += n
	}
	for k, x := range kwargs {
		if k == "c" {
			continue
		}
		n, ok := x.(int)
		if !ok {
			return nil, fmt.Errorf("%s: want int, got %T", k, x)
		}
		sum += n
	}

	return sum, nil
}

// pairs flattens a lifted result into level → value for comparisons.
func pairs(t *testing.T, r lift.Result) map[float64]any {
	t.Helper()
	g, ok := r.Graded()
	require.True(t, ok, "expected a graded result, got crisp %v", r.Any())
	out := make(map[float64]any, g.Len())
	set := g.Levels()
	for i := 0; i < set.Len(); i++ {
		x, found := g.Lookup(set.At(i))
		require.True(t, found)
		out[set.At(i)] = x
	}

	return out
}

func ints(m map[float64]int) *graded.Value[int] {
	v, err := graded.FromMap(m)
	if err != nil {
		panic(err)
	}

	return v
}
