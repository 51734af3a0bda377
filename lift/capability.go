// SPDX-License-Identifier: MIT
// File: capability.go
// Role: capability declarations, i.e. the explicit list of operations
// dispatchable on one concrete type.
// Sources of declarations:
//   - Declare[T] with typed builders (Nullary, Binary, Variadic);
//   - Introspect, which exposes the exported methods of a type.

package lift

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/gradual/graded"
)

// Arity is the operand class of an operation: SelfOnly, AnyArity, or an
// exact count of positional operands.
type Arity int

const (
	// AnyArity accepts any number of positional operands.
	AnyArity Arity = -1
	// SelfOnly accepts no operands besides self.
	SelfOnly Arity = 0
)

// Func is the uniform calling convention of every operation: self plus
// positional and keyword operands, all already resolved at one level.
type Func func(self any, args []any, kwargs map[string]any) (any, error)

// Operation is one entry of a capability declaration.
type Operation struct {
	Name     string
	Arity    Arity
	Keywords bool // accepts keyword operands
	Fn       Func
}

// accepts checks the operand counts against the declaration.
func (op Operation) accepts(nargs, nkw int) error {
	if nkw > 0 && !op.Keywords {
		return ErrKeywordsUnsupported
	}
	if op.Arity == AnyArity {
		return nil
	}
	if nargs != int(op.Arity) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op.Name, op.Arity, nargs)
	}

	return nil
}

// Capability declares the operations of one type and how results of that
// type are wrapped back into a graded value.
type Capability struct {
	Type reflect.Type
	ops  map[string]Operation
	wrap func(*graded.Value[any]) (graded.Graded, error)
}

// Operation returns the declared operation called name.
func (c *Capability) Operation(name string) (Operation, bool) {
	op, ok := c.ops[name]
	return op, ok
}

// Names returns the declared operation names, sorted.
func (c *Capability) Names() []string {
	out := make([]string, 0, len(c.ops))
	for n := range c.ops {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Wrap converts canonical erased results into a graded value of c.Type.
func (c *Capability) Wrap(v *graded.Value[any]) (graded.Graded, error) {
	if v.ElemType() != c.Type {
		return nil, mismatch(c.Type, v.Top())
	}

	return c.wrap(v)
}

// Declare builds the capability of T from ops. Later operations with the
// same name replace earlier ones. Wrapped results are *graded.Value[T].
// T must be a concrete type: Registry.Register rejects interfaces.
func Declare[T any](ops ...Operation) Capability {
	c := Capability{
		Type: reflect.TypeOf((*T)(nil)).Elem(),
		ops:  make(map[string]Operation, len(ops)),
		wrap: func(v *graded.Value[any]) (graded.Graded, error) {
			return graded.As[T](v)
		},
	}
	for _, op := range ops {
		c.ops[op.Name] = op
	}

	return c
}

// Nullary declares a self-only operation.
func Nullary[T, R any](name string, fn func(T) (R, error)) Operation {
	return Operation{
		Name:  name,
		Arity: SelfOnly,
		Fn: func(self any, _ []any, _ map[string]any) (any, error) {
			s, ok := self.(T)
			if !ok {
				return nil, mismatch(reflect.TypeOf((*T)(nil)).Elem(), self)
			}
			return fn(s)
		},
	}
}

// Binary declares an operation with exactly one positional operand. The
// operand must already have type U; no numeric conversion takes place.
func Binary[T, U, R any](name string, fn func(T, U) (R, error)) Operation {
	return Operation{
		Name:  name,
		Arity: 1,
		Fn: func(self any, args []any, _ map[string]any) (any, error) {
			s, ok := self.(T)
			if !ok {
				return nil, mismatch(reflect.TypeOf((*T)(nil)).Elem(), self)
			}
			u, ok := args[0].(U)
			if !ok {
				return nil, mismatch(reflect.TypeOf((*U)(nil)).Elem(), args[0])
			}
			return fn(s, u)
		},
	}
}

// Variadic declares an operation that receives the raw operand lists.
// keywords controls whether keyword operands are accepted.
func Variadic(name string, keywords bool, fn Func) Operation {
	return Operation{Name: name, Arity: AnyArity, Keywords: keywords, Fn: fn}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Introspect derives a capability from the exported methods of t.
//
// Mapping:
//   - no parameters          → SelfOnly
//   - variadic signature     → AnyArity
//   - n fixed parameters     → Arity(n)
//   - results (R) or (R, error); other result shapes are skipped.
//
// Operands must be assignable to the parameter types; nil operands become
// the parameter's zero value. Keyword operands are not supported.
// For a non-pointer t the methods declared on *t are included too; they
// run on an addressable copy of self, so stored values never change.
// Results are wrapped as *graded.Value[any] with element type t.
func Introspect(t reflect.Type) Capability {
	c := Capability{
		Type: t,
		ops:  make(map[string]Operation),
		wrap: func(v *graded.Value[any]) (graded.Graded, error) { return v, nil },
	}
	if t == nil || t.Kind() == reflect.Interface {
		return c
	}

	mset := t
	if t.Kind() != reflect.Pointer {
		mset = reflect.PointerTo(t) // superset of t's own methods
	}
	for i := 0; i < mset.NumMethod(); i++ {
		m := mset.Method(i)
		onPointer := mset != t
		if vm, ok := t.MethodByName(m.Name); ok {
			m, onPointer = vm, false
		}
		ft := m.Type
		switch {
		case ft.NumOut() == 1:
		case ft.NumOut() == 2 && ft.Out(1) == errorType:
		default:
			continue
		}

		arity := Arity(ft.NumIn() - 1) // receiver is In(0)
		if ft.IsVariadic() {
			arity = AnyArity
		}
		c.ops[m.Name] = Operation{Name: m.Name, Arity: arity, Fn: methodFunc(t, m, onPointer)}
	}

	return c
}

// methodFunc adapts a reflected method to the Func convention. With
// onPointer set the receiver is the address of a fresh copy of self.
func methodFunc(t reflect.Type, m reflect.Method, onPointer bool) Func {
	ft := m.Type

	return func(self any, args []any, _ map[string]any) (any, error) {
		sv := reflect.ValueOf(self)
		if !sv.IsValid() || sv.Type() != t {
			return nil, mismatch(t, self)
		}
		fixed := ft.NumIn() - 1
		if ft.IsVariadic() {
			fixed--
			if len(args) < fixed {
				return nil, fmt.Errorf("%w: %s takes at least %d, got %d", ErrArity, m.Name, fixed, len(args))
			}
		}

		recv := sv
		if onPointer {
			recv = reflect.New(t)
			recv.Elem().Set(sv)
		}
		in := make([]reflect.Value, 0, len(args)+1)
		in = append(in, recv)
		for i, a := range args {
			var pt reflect.Type
			if ft.IsVariadic() && i >= fixed {
				pt = ft.In(ft.NumIn() - 1).Elem()
			} else {
				pt = ft.In(i + 1)
			}
			av, err := operandValue(a, pt)
			if err != nil {
				return nil, err
			}
			in = append(in, av)
		}

		out := m.Func.Call(in)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}

		return out[0].Interface(), nil
	}
}

func operandValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}
	av := reflect.ValueOf(a)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, mismatch(pt, a)
	}
	if av.Type() != pt {
		// e.g. concrete value into an interface parameter
		conv := reflect.New(pt).Elem()
		conv.Set(av)
		return conv, nil
	}

	return av, nil
}
