// SPDX-License-Identifier: MIT
// Package lift: sentinel error set.
// Registry failures on unknown types match graded.ErrTypeMismatch so a
// closed-world miss and a heterogeneous mapping are handled alike.

package lift

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/levels"
)

var (
	// ErrOperation matches every *OperationError.
	ErrOperation = errors.New("lift: operation failed")

	// ErrUnknownOperation is returned when the element type declares no
	// operation with the requested name.
	ErrUnknownOperation = errors.New("lift: unknown operation")

	// ErrUnknownOperator is returned for tokens missing from the operator table.
	ErrUnknownOperator = errors.New("lift: unknown operator")

	// ErrInvalidOperator is returned when registering a malformed operator.
	ErrInvalidOperator = errors.New("lift: invalid operator")

	// ErrArity is returned when the operand count does not fit the operation.
	ErrArity = errors.New("lift: wrong number of operands")

	// ErrKeywordsUnsupported is returned when keyword operands are passed to
	// an operation that does not accept them.
	ErrKeywordsUnsupported = errors.New("lift: operation does not accept keyword operands")

	// ErrUnregisteredType is returned in closed-world mode for types without
	// a capability declaration.
	ErrUnregisteredType = fmt.Errorf("%w: type is not registered", graded.ErrTypeMismatch)

	// ErrDuplicateType is returned when a type is registered twice.
	ErrDuplicateType = errors.New("lift: type already registered")

	// ErrInterfaceType is returned when registering a capability for an
	// interface type. Dispatch is keyed by the dynamic type of stored
	// values, which is never an interface.
	ErrInterfaceType = errors.New("lift: capability type is an interface")

	// ErrNilType is returned when registering a capability without a type.
	ErrNilType = errors.New("lift: capability has no type")

	// ErrDivisionByZero is returned by the builtin Div and Mod operations.
	ErrDivisionByZero = errors.New("lift: division by zero")

	// ErrNegativeExponent is returned by the builtin integer Pow.
	ErrNegativeExponent = errors.New("lift: negative integer exponent")

	// ErrPanic wraps a value recovered from a panicking operation.
	ErrPanic = errors.New("lift: operation panicked")
)

// OperationError reports an operation that failed at one level.
type OperationError struct {
	Op       string
	Level    float64
	ElemType reflect.Type
	Err      error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("lift: %s failed at level %s on %s: %v",
		e.Op, levels.Format(e.Level), graded.TypeName(e.ElemType), e.Err)
}

// Unwrap exposes the underlying operation error.
func (e *OperationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrOperation) hold for every OperationError.
func (e *OperationError) Is(target error) bool { return target == ErrOperation }

func liftErrorf(op string, err error) error {
	return fmt.Errorf("lift: %s: %w", op, err)
}

// mismatch builds a type-mismatch error naming the expected and actual types.
func mismatch(want reflect.Type, got any) error {
	return fmt.Errorf("%w: want %s, got %T", graded.ErrTypeMismatch, want, got)
}
