// SPDX-License-Identifier: MIT
// File: lifter.go
// Role: the lifting engine.
// Algorithm (Apply):
//   1. promote crisp self/operands to single-level values at 1.0;
//   2. merge every level set (keyword operands in sorted key order);
//   3. fold over the merged levels in descending order, re-resolving each
//      side with "value at level, else previous value" and invoking the
//      operation bound to self's capability;
//   4. canonicalize and wrap the result through the registry.
// Determinism:
//   - fixed operand order, fixed level order, a single goroutine per call.
// Failure:
//   - the first failing level aborts the call; nothing partial escapes.

package lift

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/levels"
)

// Lifter applies operations level-wise over graded values.
type Lifter struct {
	reg    *Registry
	ops    *OperatorTable
	logger *zap.Logger
}

// NewLifter returns a Lifter dispatching through reg. A nil reg is replaced
// by NewRegistry(opts...).
func NewLifter(reg *Registry, opts ...Option) *Lifter {
	o := gatherOptions(opts...)
	if reg == nil {
		reg = NewRegistry(opts...)
	}
	ops := o.operators
	if ops == nil {
		ops = DefaultOperators()
	}

	return &Lifter{reg: reg, ops: ops, logger: o.logger}
}

// Registry returns the registry used for dispatch and wrapping.
func (l *Lifter) Registry() *Registry { return l.reg }

// Operators returns the operator table used by Op.
func (l *Lifter) Operators() *OperatorTable { return l.ops }

// Call is Apply with positional operands only.
func (l *Lifter) Call(ctx context.Context, self any, op string, args ...any) (Result, error) {
	return l.Apply(ctx, self, op, args, nil)
}

// Op dispatches token through the operator table.
func (l *Lifter) Op(ctx context.Context, token string, self any, operands ...any) (Result, error) {
	o, ok := l.ops.Lookup(token)
	if !ok {
		return Result{}, liftErrorf("Op", fmt.Errorf("%w: %q", ErrUnknownOperator, token))
	}
	if len(operands) != int(o.Arity) {
		return Result{}, liftErrorf("Op", fmt.Errorf("%w: %q takes %d, got %d", ErrArity, token, o.Arity, len(operands)))
	}

	return l.Apply(ctx, self, o.Method, operands, nil)
}

// Unary dispatches a unary operator token such as "neg".
func (l *Lifter) Unary(ctx context.Context, token string, self any) (Result, error) {
	return l.Op(ctx, token, self)
}

// Binary dispatches a binary operator token such as "+".
func (l *Lifter) Binary(ctx context.Context, token string, self, other any) (Result, error) {
	return l.Op(ctx, token, self, other)
}

// Apply lifts the operation named op.
//
// self and every operand may be a graded.Graded, a Result, or a crisp
// value; crisp values are promoted to level 1.0.
//
// Errors:
//   - registry errors for self's element type (closed-world miss);
//   - ErrUnknownOperation, ErrArity, ErrKeywordsUnsupported before any
//     level is evaluated;
//   - *OperationError for the first level whose operation fails;
//   - ctx.Err() when the context ends between levels;
//   - registry/type errors while wrapping a graded result.
func (l *Lifter) Apply(ctx context.Context, self any, op string, args []any, kwargs map[string]any) (Result, error) {
	s := promote(self)
	elem := s.ElemType()

	capab, err := l.reg.Resolve(elem)
	if err != nil {
		return Result{}, liftErrorf("Apply", err)
	}
	operation, ok := capab.Operation(op)
	if !ok {
		return Result{}, liftErrorf("Apply", fmt.Errorf("%w: %s has no %q", ErrUnknownOperation, graded.TypeName(elem), op))
	}
	if err = operation.accepts(len(args), len(kwargs)); err != nil {
		return Result{}, liftErrorf("Apply", err)
	}

	pos := make([]graded.Graded, len(args))
	for i, a := range args {
		pos[i] = promote(a)
	}
	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kw := make([]graded.Graded, len(keys))
	for i, k := range keys {
		kw[i] = promote(kwargs[k])
	}

	sets := make([]levels.Set, 0, 1+len(pos)+len(kw))
	sets = append(sets, s.Levels())
	for _, g := range pos {
		sets = append(sets, g.Levels())
	}
	for _, g := range kw {
		sets = append(sets, g.Levels())
	}
	merged := levels.MergeAll(sets...)

	// Seed the carried values from level 1.0.
	curSelf, _ := s.Lookup(levels.Top)
	curPos := make([]any, len(pos))
	for i, g := range pos {
		curPos[i], _ = g.Lookup(levels.Top)
	}
	curKw := make([]any, len(kw))
	for i, g := range kw {
		curKw[i], _ = g.Lookup(levels.Top)
	}

	out := make([]graded.Pair[any], 0, merged.Len())
	for i := 0; i < merged.Len(); i++ {
		if err = ctx.Err(); err != nil {
			return Result{}, liftErrorf("Apply", err)
		}
		lvl := merged.At(i)

		curSelf = extend(s, lvl, curSelf)
		callArgs := make([]any, len(pos))
		for j, g := range pos {
			curPos[j] = extend(g, lvl, curPos[j])
			callArgs[j] = curPos[j]
		}
		var callKw map[string]any
		if len(kw) > 0 {
			callKw = make(map[string]any, len(kw))
			for j, g := range kw {
				curKw[j] = extend(g, lvl, curKw[j])
				callKw[keys[j]] = curKw[j]
			}
		}

		res, err := invoke(operation, curSelf, callArgs, callKw)
		if err != nil {
			l.logger.Debug("lifted operation failed",
				zap.String("op", op), zap.Float64("level", lvl), zap.Error(err))
			return Result{}, &OperationError{Op: op, Level: lvl, ElemType: elem, Err: err}
		}
		out = append(out, graded.Pair[any]{Level: lvl, Value: res})
	}

	canon, err := graded.Canonicalize(out)
	if err != nil {
		return Result{}, liftErrorf("Apply", err)
	}
	if x, ok := canon.Crisp(); ok {
		l.logger.Debug("lifted operation collapsed",
			zap.String("op", op), zap.Int("levels", merged.Len()))
		return Result{crisp: x}, nil
	}

	v, _ := canon.Graded()
	resCap, err := l.reg.Resolve(v.ElemType())
	if err != nil {
		return Result{}, liftErrorf("Apply", err)
	}
	wrapped, err := resCap.Wrap(v)
	if err != nil {
		return Result{}, liftErrorf("Apply", err)
	}
	l.logger.Debug("lifted operation",
		zap.String("op", op),
		zap.Stringer("elem", elem),
		zap.Stringer("result", v.ElemType()),
		zap.Int("levels", merged.Len()),
		zap.Int("kept", v.Len()))

	return Result{value: wrapped}, nil
}

// promote returns x as a graded value; crisp values become {1.0: x}.
func promote(x any) graded.Graded {
	switch v := x.(type) {
	case graded.Graded:
		return v
	case Result:
		return promote(v.Any())
	default:
		return graded.Crisp[any](x)
	}
}

// extend returns g's value at level, or prev when g has no such level.
func extend(g graded.Graded, level float64, prev any) any {
	if x, ok := g.Lookup(level); ok {
		return x
	}

	return prev
}

// invoke calls the operation, converting a panic into an error.
func invoke(op Operation, self any, args []any, kwargs map[string]any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	return op.Fn(self, args, kwargs)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
