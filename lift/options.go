// SPDX-License-Identifier: MIT

package lift

import "go.uber.org/zap"

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultMode is the registry mode used when WithMode is not given.
	DefaultMode = OpenWorld

	// DefaultBuiltins registers the numeric, string and bool capabilities.
	DefaultBuiltins = true
)

// Option configures a Registry or a Lifter. Each constructor reads only the
// fields it needs.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	mode      Mode
	builtins  bool
	logger    *zap.Logger
	operators *OperatorTable
}

// WithMode selects open-world or closed-world registry behaviour.
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithoutBuiltins leaves the registry empty, e.g. to declare custom
// capabilities for int or string.
func WithoutBuiltins() Option {
	return func(o *Options) { o.builtins = false }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOperators makes the Lifter dispatch tokens through t instead of a
// fresh DefaultOperators table.
func WithOperators(t *OperatorTable) Option {
	return func(o *Options) {
		if t != nil {
			o.operators = t
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		mode:     DefaultMode,
		builtins: DefaultBuiltins,
		logger:   zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
