// SPDX-License-Identifier: MIT
// File: registry.go
// Role: type → capability catalog owned by the caller.
// Concurrency:
//   - guarded by an RWMutex; open-world mode writes on first use of a type,
//     so concurrent Lifter calls may race to register the same type and
//     the first writer wins.

package lift

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Mode selects how the registry treats types it has not seen.
type Mode int

const (
	// OpenWorld registers unseen types on first use via Introspect.
	OpenWorld Mode = iota
	// ClosedWorld rejects unseen types with ErrUnregisteredType.
	ClosedWorld
)

// String returns "open" or "closed".
func (m Mode) String() string {
	switch m {
	case OpenWorld:
		return "open"
	case ClosedWorld:
		return "closed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "open" or "closed" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open", "open-world", "":
		return OpenWorld, nil
	case "closed", "closed-world":
		return ClosedWorld, nil
	default:
		return 0, fmt.Errorf("lift: unknown registry mode %q", s)
	}
}

// Registry maps concrete value types to their capabilities.
type Registry struct {
	mu     sync.RWMutex
	mode   Mode
	caps   map[reflect.Type]*Capability
	logger *zap.Logger
}

// NewRegistry returns a registry configured by opts. Builtin capabilities
// are registered unless WithoutBuiltins is given.
func NewRegistry(opts ...Option) *Registry {
	o := gatherOptions(opts...)
	r := &Registry{
		mode:   o.mode,
		caps:   make(map[reflect.Type]*Capability),
		logger: o.logger,
	}
	if o.builtins {
		for _, c := range Builtins() {
			r.caps[c.Type] = &c
		}
	}

	return r
}

// Mode returns the registry mode.
func (r *Registry) Mode() Mode { return r.mode }

// Register adds c. Registering the same type twice fails with
// ErrDuplicateType; an interface type fails with ErrInterfaceType.
func (r *Registry) Register(c Capability) error {
	if c.Type == nil {
		return liftErrorf("Register", ErrNilType)
	}
	if c.Type.Kind() == reflect.Interface {
		return liftErrorf("Register", fmt.Errorf("%w: %s", ErrInterfaceType, c.Type))
	}
	if c.wrap == nil {
		return liftErrorf("Register", fmt.Errorf("%w: build it with Declare or Introspect", ErrNilType))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.caps[c.Type]; ok {
		return liftErrorf("Register", fmt.Errorf("%w: %s", ErrDuplicateType, c.Type))
	}
	r.caps[c.Type] = &c
	r.logger.Debug("registered capability",
		zap.Stringer("type", c.Type), zap.Strings("operations", c.Names()))

	return nil
}

// Register declares ops for T and adds them to r.
func Register[T any](r *Registry, ops ...Operation) error {
	return r.Register(Declare[T](ops...))
}

// Lookup returns the capability of t without auto-registration.
func (r *Registry) Lookup(t reflect.Type) (*Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[t]

	return c, ok
}

// Resolve returns the capability of t. In open-world mode a missing type
// is introspected and registered; in closed-world mode it fails with
// ErrUnregisteredType.
func (r *Registry) Resolve(t reflect.Type) (*Capability, error) {
	if c, ok := r.Lookup(t); ok {
		return c, nil
	}
	if t == nil {
		return nil, liftErrorf("Resolve", ErrNilType)
	}
	if r.mode == ClosedWorld {
		return nil, liftErrorf("Resolve", fmt.Errorf("%w: %s", ErrUnregisteredType, t))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.caps[t]; ok {
		return c, nil
	}
	c := Introspect(t)
	r.caps[t] = &c
	r.logger.Debug("auto-registered type",
		zap.Stringer("type", t), zap.Strings("operations", c.Names()))

	return &c, nil
}

// Types returns the registered types sorted by their string form.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	out := make([]reflect.Type, 0, len(r.caps))
	for t := range r.caps {
		out = append(out, t)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.caps)
}
