// SPDX-License-Identifier: MIT

package lift

import (
	"fmt"

	"github.com/katalvlaran/gradual/graded"
)

// Result is the outcome of a lifted operation: a graded value with at
// least two levels, or the crisp value left after canonicalization.
type Result struct {
	value graded.Graded
	crisp any
}

// Graded returns the graded value, if the result did not collapse.
func (r Result) Graded() (graded.Graded, bool) { return r.value, r.value != nil }

// Crisp returns the bare value, if the result collapsed.
func (r Result) Crisp() (any, bool) { return r.crisp, r.value == nil }

// IsCrisp reports whether the result collapsed to one level.
func (r Result) IsCrisp() bool { return r.value == nil }

// Any returns the graded value or the crisp value. Passing it back to the
// Lifter as self or operand composes lifted operations.
func (r Result) Any() any {
	if r.value != nil {
		return r.value
	}

	return r.crisp
}

// String renders the graded table or the crisp value.
func (r Result) String() string {
	if r.value != nil {
		return r.value.String()
	}

	return fmt.Sprint(r.crisp)
}

// Typed converts r into a typed graded.Result.
func Typed[T any](r Result) (graded.Result[T], error) {
	if r.value == nil {
		x, ok := r.crisp.(T)
		if !ok {
			return graded.Result[T]{}, liftErrorf("Typed", mismatch(typeOf[T](), r.crisp))
		}
		return graded.CrispResult(x), nil
	}

	v, err := graded.As[T](r.value)
	if err != nil {
		return graded.Result[T]{}, liftErrorf("Typed", err)
	}

	return graded.GradedResult(v), nil
}
