// SPDX-License-Identifier: MIT

package graded

// EqualFunc decides whether two values are the same for canonicalization.
type EqualFunc func(a, b any) bool

// DefaultDeepCopy makes construction copy every value so instances never
// alias caller-owned data.
const DefaultDeepCopy = true

// Option configures construction and canonicalization.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	equal    EqualFunc
	deepCopy bool
}

// WithEqual replaces the default structural equality (go-cmp) used to
// detect repeated values. A nil fn is ignored.
func WithEqual(fn EqualFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.equal = fn
		}
	}
}

// WithShallowCopy stores values as given. Only safe when the caller owns
// values that are never mutated afterwards.
func WithShallowCopy() Option {
	return func(o *Options) { o.deepCopy = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		equal:    Equal,
		deepCopy: DefaultDeepCopy,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
