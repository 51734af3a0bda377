// SPDX-License-Identifier: MIT
// Package levels: sentinel error set.
// Every specific sentinel wraps ErrValidation so callers can match either
// the precise violation or the whole class with errors.Is.

package levels

import (
	"errors"
	"fmt"
)

// ErrValidation is the umbrella sentinel for malformed level sets.
var ErrValidation = errors.New("levels: validation failed")

var (
	// ErrEmpty is returned when a level set has no entries.
	ErrEmpty = fmt.Errorf("%w: level set cannot be empty", ErrValidation)

	// ErrMissingTop is returned when level 1.0 is absent (or present more than once).
	ErrMissingTop = fmt.Errorf("%w: level 1 must be present exactly once", ErrValidation)

	// ErrNotFinite is returned for NaN or ±Inf levels.
	ErrNotFinite = fmt.Errorf("%w: levels must be real numbers", ErrValidation)

	// ErrOutOfRange is returned for levels outside (0,1].
	ErrOutOfRange = fmt.Errorf("%w: levels must be in (0,1]", ErrValidation)

	// ErrNotDescending is returned when levels are not strictly descending
	// (this includes duplicates).
	ErrNotDescending = fmt.Errorf("%w: levels must be in strictly descending order", ErrValidation)
)

// levelsErrorf tags err with the failing operation, keeping the sentinel
// reachable for errors.Is.
func levelsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
