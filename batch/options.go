// SPDX-License-Identifier: MIT

package batch

import (
	"time"

	"go.uber.org/zap"
)

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultWorkers uses every CPU.
	DefaultWorkers = -1

	// DefaultTimeout disables the per-invocation timeout.
	DefaultTimeout time.Duration = 0

	// DefaultWaitDelay bounds how long a killed program may keep its
	// output pipes open.
	DefaultWaitDelay = time.Second
)

// Option configures a Runner.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	workers int
	timeout time.Duration
	logger  *zap.Logger
	metrics *Metrics
}

// WithWorkers sets the worker count: -1 for all CPUs, 1 for sequential
// execution, n > 1 for at most n concurrent invocations (capped at the
// CPU count). NewRunner rejects any other value.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithTimeout bounds each invocation; 0 disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records invocations into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
