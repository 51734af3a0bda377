// SPDX-License-Identifier: MIT
// File: value.go
// Role: construction and read access for Value[T].
// Immutability:
//   - values are deep-copied on construction and on every read, so neither
//     callers nor operations can reach the stored state.
// Canonical form:
//   - construction stores its input verbatim; squashing only happens in
//     Canonicalize, i.e. on operation results.

package graded

import (
	"reflect"
	"sort"

	"github.com/katalvlaran/gradual/levels"
)

// Value is an immutable graded value over element type T.
type Value[T any] struct {
	set    levels.Set
	values []T
	elem   reflect.Type
}

// New builds a Value from parallel level and value slices.
//
// Implementation:
//   - Stage 1: validate the level set (levels.Validate).
//   - Stage 2: check both slices have the same length.
//   - Stage 3: check every value shares one runtime type.
//   - Stage 4: copy values (deep copy unless WithShallowCopy).
//
// Errors:
//   - ErrValidation (levels sentinels or ErrLengthMismatch).
//   - ErrTypeMismatch for heterogeneous runtime types.
//
// Complexity: O(n) plus the cost of copying values.
func New[T any](lv []float64, values []T, opts ...Option) (*Value[T], error) {
	set, err := levels.New(lv...)
	if err != nil {
		return nil, gradedErrorf("New", err)
	}
	if len(values) != set.Len() {
		return nil, gradedErrorf("New", ErrLengthMismatch)
	}

	return build(set, values, gatherOptions(opts...))
}

// MustNew is New that panics on error. Intended for tests and examples.
func MustNew[T any](lv []float64, values []T, opts ...Option) *Value[T] {
	v, err := New(lv, values, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// FromPairs builds a Value from pairs given in descending level order.
func FromPairs[T any](pairs []Pair[T], opts ...Option) (*Value[T], error) {
	lv := make([]float64, len(pairs))
	vals := make([]T, len(pairs))
	for i, p := range pairs {
		lv[i], vals[i] = p.Level, p.Value
	}

	return New(lv, vals, opts...)
}

// FromMap builds a Value from a map; keys are ordered descending first, so
// only range and top-level checks can fail.
func FromMap[T any](m map[float64]T, opts ...Option) (*Value[T], error) {
	lv := make([]float64, 0, len(m))
	for l := range m {
		lv = append(lv, l)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(lv)))

	vals := make([]T, len(lv))
	for i, l := range lv {
		vals[i] = m[l]
	}

	return New(lv, vals, opts...)
}

// Crisp wraps v as a single-level graded value at level 1.0.
func Crisp[T any](v T) *Value[T] {
	out, err := build(levels.Single(), []T{v}, gatherOptions())
	if err != nil {
		// A single value always has a homogeneous type; only a nil
		// interface value could get here.
		return &Value[T]{set: levels.Single(), values: []T{v}, elem: staticType[T]()}
	}

	return out
}

// build assumes set is valid and len(values) == set.Len().
func build[T any](set levels.Set, values []T, o Options) (*Value[T], error) {
	elem, err := elemTypeOf(values)
	if err != nil {
		return nil, gradedErrorf("New", err)
	}

	stored := make([]T, len(values))
	for i, v := range values {
		if o.deepCopy {
			stored[i] = deepCopy(v)
		} else {
			stored[i] = v
		}
	}

	return &Value[T]{set: set, values: stored, elem: elem}, nil
}

// elemTypeOf returns the single runtime type of values. For concrete T it
// is T itself; for interface T every dynamic type must agree and nil
// entries are rejected.
func elemTypeOf[T any](values []T) (reflect.Type, error) {
	static := staticType[T]()
	if static.Kind() != reflect.Interface {
		return static, nil
	}

	var elem reflect.Type
	for _, v := range values {
		t := reflect.TypeOf(any(v))
		if t == nil {
			return nil, ErrTypeMismatch
		}
		if elem == nil {
			elem = t
			continue
		}
		if t != elem {
			return nil, ErrTypeMismatch
		}
	}

	return elem, nil
}

func staticType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Levels returns the level set.
func (v *Value[T]) Levels() levels.Set { return v.set }

// Len returns the number of stored levels.
func (v *Value[T]) Len() int { return len(v.values) }

// ElemType returns the runtime type of the stored values.
func (v *Value[T]) ElemType() reflect.Type { return v.elem }

// At returns a copy of the value stored at level.
func (v *Value[T]) At(level float64) (T, bool) {
	i := v.set.Index(level)
	if i < 0 {
		var zero T
		return zero, false
	}

	return deepCopy(v.values[i]), true
}

// Get returns the value stored at level, or fallback when the level is
// not stored. Passing the previous level's value as fallback yields the
// extend-forward semantics.
func (v *Value[T]) Get(level float64, fallback T) T {
	if x, ok := v.At(level); ok {
		return x
	}

	return fallback
}

// Lookup implements Graded.
func (v *Value[T]) Lookup(level float64) (any, bool) {
	x, ok := v.At(level)
	if !ok {
		return nil, false
	}

	return x, true
}

// Top returns a copy of the value at level 1.0.
func (v *Value[T]) Top() T { return deepCopy(v.values[0]) }

// Values returns copies of the stored values in descending level order.
func (v *Value[T]) Values() []T {
	out := make([]T, len(v.values))
	for i, x := range v.values {
		out[i] = deepCopy(x)
	}

	return out
}

// Pairs returns copies of the stored (level, value) pairs, descending.
func (v *Value[T]) Pairs() []Pair[T] {
	out := make([]Pair[T], len(v.values))
	for i, x := range v.values {
		out[i] = Pair[T]{Level: v.set.At(i), Value: deepCopy(x)}
	}

	return out
}

// Equal reports whether o has the same levels and equal values at each.
func (v *Value[T]) Equal(o *Value[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if !v.set.Equal(o.set) {
		return false
	}
	for i := range v.values {
		if !Equal(v.values[i], o.values[i]) {
			return false
		}
	}

	return true
}

// String renders the value as an "RL-<Type>" table.
func (v *Value[T]) String() string {
	return Table(TypeName(v.elem), v)
}

// As converts an erased graded value into a *Value[T]. When g already is a
// *Value[T] it is returned as is; otherwise every stored value must be
// assignable to T.
func As[T any](g Graded) (*Value[T], error) {
	if v, ok := g.(*Value[T]); ok {
		return v, nil
	}

	set := g.Levels()
	vals := make([]T, set.Len())
	for i := 0; i < set.Len(); i++ {
		x, _ := g.Lookup(set.At(i))
		t, ok := x.(T)
		if !ok {
			return nil, gradedErrorf("As", ErrTypeMismatch)
		}
		vals[i] = t
	}

	// Lookup already handed out copies.
	return build(set, vals, gatherOptions(WithShallowCopy()))
}
