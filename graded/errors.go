// SPDX-License-Identifier: MIT
// Package graded: sentinel error set.
// Validation failures reuse the levels sentinel so a single errors.Is
// check covers malformed level sets and malformed mappings alike.

package graded

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gradual/levels"
)

var (
	// ErrValidation is the validation umbrella shared with package levels.
	ErrValidation = levels.ErrValidation

	// ErrLengthMismatch is returned when levels and values differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: levels and values differ in length", levels.ErrValidation)

	// ErrTypeMismatch is returned when the values of one graded value do not
	// share a single runtime type, or when a value cannot be converted to
	// the requested element type.
	ErrTypeMismatch = errors.New("graded: type mismatch")
)

func gradedErrorf(op string, err error) error {
	return fmt.Errorf("graded: %s: %w", op, err)
}
