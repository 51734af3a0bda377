// SPDX-License-Identifier: MIT

package graded

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/gradual/levels"
)

// Pair is one (level, value) entry of a graded value.
type Pair[T any] struct {
	Level float64
	Value T
}

// Graded is the type-erased view of a graded value. Every *Value[T]
// implements it; the lifting engine works exclusively through it so that
// operands of different element types can be combined.
type Graded interface {
	// Levels returns the level set of the value.
	Levels() levels.Set
	// Lookup returns a copy of the value stored at level.
	Lookup(level float64) (any, bool)
	// ElemType returns the runtime type shared by all stored values.
	ElemType() reflect.Type
	// Len returns the number of stored levels.
	Len() int

	fmt.Stringer
}

// Result is the outcome of canonicalization: either a graded value with at
// least two levels, or a crisp value when only level 1.0 survived.
type Result[T any] struct {
	value *Value[T]
	crisp T
}

// Graded returns the graded value, if the result did not collapse.
func (r Result[T]) Graded() (*Value[T], bool) { return r.value, r.value != nil }

// Crisp returns the bare value, if the result collapsed.
func (r Result[T]) Crisp() (T, bool) { return r.crisp, r.value == nil }

// IsCrisp reports whether the result collapsed to one level.
func (r Result[T]) IsCrisp() bool { return r.value == nil }

// Any returns either the *Value[T] or the crisp T.
func (r Result[T]) Any() any {
	if r.value != nil {
		return r.value
	}

	return r.crisp
}

// Top returns the value at level 1.0 whichever form the result took.
func (r Result[T]) Top() T {
	if r.value != nil {
		return r.value.Top()
	}

	return r.crisp
}

// GradedResult wraps a graded value as a Result.
func GradedResult[T any](v *Value[T]) Result[T] { return Result[T]{value: v} }

// CrispResult wraps a bare value as a collapsed Result.
func CrispResult[T any](x T) Result[T] { return Result[T]{crisp: x} }
