// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gradual/levels"
)

var (
	// ErrExecution matches every *ExecutionError.
	ErrExecution = errors.New("batch: program execution failed")

	// ErrInvalidWorkers is returned for a worker count of 0 or below -1.
	ErrInvalidWorkers = errors.New("batch: workers must be -1 (all CPUs) or >= 1")

	// ErrEmptyCommand is returned when a command has no program path.
	ErrEmptyCommand = errors.New("batch: empty command")
)

// ExecutionError reports a failed program invocation at one level.
type ExecutionError struct {
	Level    float64
	ExitCode int // -1 when the program did not exit normally
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("batch: program execution failed at level %s", levels.Format(e.Level))
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		return msg + ": " + e.Stderr
	}

	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap exposes the underlying exec error.
func (e *ExecutionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrExecution) hold for every ExecutionError.
func (e *ExecutionError) Is(target error) bool { return target == ErrExecution }

func batchErrorf(op string, err error) error {
	return fmt.Errorf("batch: %s: %w", op, err)
}
