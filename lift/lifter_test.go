// SPDX-License-Identifier: MIT

package lift_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/lift"
)

// LifterSuite covers the reference vectors of the lifting engine.
type LifterSuite struct {
	suite.Suite
	ctx context.Context
	l   *lift.Lifter

	int1, int2 *graded.Value[int]
	set1, set2 *graded.Value[tagSet]
	wid1, wid2 *graded.Value[widget]
}

func (s *LifterSuite) SetupTest() {
	s.ctx = context.Background()
	s.l = lift.NewLifter(nil)
	s.int1 = ints(map[float64]int{1: 5, 0.8: 3})
	s.int2 = ints(map[float64]int{1: 5, 0.7: 4})
	s.set1 = graded.MustNew([]float64{1, 0.8}, []tagSet{tags("a", "b"), tags("c")})
	s.set2 = graded.MustNew([]float64{1, 0.7}, []tagSet{tags("c"), tags("a", "c", "d")})
	s.wid1 = graded.MustNew([]float64{1, 0.8}, []widget{{5}, {10}})
	s.wid2 = graded.MustNew([]float64{1, 0.7}, []widget{{3}, {2}})
}

func (s *LifterSuite) op(token string, self any, operands ...any) lift.Result {
	res, err := s.l.Op(s.ctx, token, self, operands...)
	s.Require().NoError(err)

	return res
}

func (s *LifterSuite) TestAddMergesLevels() {
	got := s.op("+", s.int1, s.int2)
	s.Equal(map[float64]any{1: 10, 0.8: 8, 0.7: 7}, pairs(s.T(), got))
}

func (s *LifterSuite) TestAddSameLevels() {
	got := s.op("+", s.int1, ints(map[float64]int{1: 5, 0.8: 2}))
	s.Equal(map[float64]any{1: 10, 0.8: 5}, pairs(s.T(), got))
}

func (s *LifterSuite) TestCrispOperand() {
	got := s.op("+", s.int1, 10)
	s.Equal(map[float64]any{1: 15, 0.8: 13}, pairs(s.T(), got))

	got = s.op("+", s.int1, 0)
	s.Equal(map[float64]any{1: 5, 0.8: 3}, pairs(s.T(), got))

	union := s.op("|", s.set1, tags("b", "c"))
	s.Equal(map[float64]any{1: tags("a", "b", "c"), 0.8: tags("b", "c")}, pairs(s.T(), union))
}

func (s *LifterSuite) TestCollapseToCrisp() {
	got := s.op("+", ints(map[float64]int{1: 5, 0.8: 5}), ints(map[float64]int{1: 2, 0.8: 2}))
	s.True(got.IsCrisp())
	s.Equal(7, got.Any())

	got = s.op("*", s.int1, ints(map[float64]int{1: 3, 0.8: 5}))
	x, ok := got.Crisp()
	s.True(ok)
	s.Equal(15, x)
}

func (s *LifterSuite) TestSquashKeepsLastKept() {
	got := s.op("-",
		ints(map[float64]int{1: 7, 0.8: 3, 0.5: 5}),
		ints(map[float64]int{1: 5, 0.8: 1, 0.6: 10}))
	s.Equal(map[float64]any{1: 2, 0.6: -7, 0.5: -5}, pairs(s.T(), got))
}

func (s *LifterSuite) TestMod() {
	got, err := s.l.Call(s.ctx, s.int1, "Mod", s.int2)
	s.Require().NoError(err)
	s.Equal(map[float64]any{1: 0, 0.8: 3}, pairs(s.T(), got))
}

func (s *LifterSuite) TestResultType() {
	less := s.op("<", s.int1, 4)
	g, ok := less.Graded()
	s.Require().True(ok)
	bv, ok := g.(*graded.Value[bool])
	s.Require().True(ok, "got %T", g)
	s.Equal([]bool{false, true}, bv.Values())

	div := s.op("/",
		graded.MustNew([]float64{1, 0.8}, []float64{10, 8}),
		graded.MustNew([]float64{1, 0.8}, []float64{5, 2}))
	typed, err := lift.Typed[float64](div)
	s.Require().NoError(err)
	v, ok := typed.Graded()
	s.Require().True(ok)
	s.Equal([]graded.Pair[float64]{{Level: 1, Value: 2}, {Level: 0.8, Value: 4}}, v.Pairs())
}

func (s *LifterSuite) TestIntrospectedMethods() {
	union, err := s.l.Call(s.ctx, s.set1, "Union", s.set2)
	s.Require().NoError(err)
	s.Equal(map[float64]any{
		1:   tags("a", "b", "c"),
		0.8: tags("c"),
		0.7: tags("a", "c", "d"),
	}, pairs(s.T(), union))
	g, _ := union.Graded()
	s.Equal(reflect.TypeOf(tagSet{}), g.ElemType())

	inter := s.op("&", s.set1, s.set2)
	s.Equal(map[float64]any{1: tags(), 0.8: tags("c")}, pairs(s.T(), inter))
}

func (s *LifterSuite) TestKeywordOperands() {
	s.Require().NoError(lift.Register[widget](s.l.Registry(), lift.Variadic("Combine", true, widgetCombine)))

	got, err := s.l.Apply(s.ctx, s.wid1, "Combine", []any{s.wid2}, map[string]any{"c": s.int1})
	s.Require().NoError(err)
	s.Equal(map[float64]any{1: 20, 0.8: 23, 0.7: 22}, pairs(s.T(), got))

	got, err = s.l.Apply(s.ctx, s.wid1, "Combine",
		[]any{s.wid2, 10, 20}, map[string]any{"c": s.int1, "some_kwarg": 10})
	s.Require().NoError(err)
	s.Equal(map[float64]any{1: 53, 0.8: 56, 0.7: 55}, pairs(s.T(), got))

	_, err = s.l.Apply(s.ctx, s.int1, "Add", []any{1}, map[string]any{"c": 1})
	s.ErrorIs(err, lift.ErrKeywordsUnsupported)
}

func (s *LifterSuite) TestRuntimeOperator() {
	_, err := s.l.Op(s.ctx, "**", s.int1, s.int2)
	s.ErrorIs(err, lift.ErrUnknownOperator)

	s.Require().NoError(s.l.Operators().Register(lift.Operator{Token: "**", Method: "Pow", Arity: 1}))
	got := s.op("**", s.int1, s.int2)
	s.Equal(map[float64]any{1: 3125, 0.8: 243, 0.7: 81}, pairs(s.T(), got))
}

func (s *LifterSuite) TestUnary() {
	got := s.op("neg", s.int1)
	s.Equal(map[float64]any{1: -5, 0.8: -3}, pairs(s.T(), got))

	flags := graded.MustNew([]float64{1, 0.5}, []bool{true, false})
	got = s.op("not", flags)
	s.Equal(map[float64]any{1: false, 0.5: true}, pairs(s.T(), got))
}

func (s *LifterSuite) TestComposition() {
	sum := s.op("+", s.int1, s.int2)
	got := s.op("*", sum, 2)
	s.Equal(map[float64]any{1: 20, 0.8: 16, 0.7: 14}, pairs(s.T(), got))
}

func (s *LifterSuite) TestArity() {
	_, err := s.l.Op(s.ctx, "+", s.int1)
	s.ErrorIs(err, lift.ErrArity)

	_, err = s.l.Call(s.ctx, s.int1, "Neg", 1)
	s.ErrorIs(err, lift.ErrArity)

	_, err = s.l.Call(s.ctx, s.int1, "Frobnicate")
	s.ErrorIs(err, lift.ErrUnknownOperation)
}

func TestLifterSuite(t *testing.T) {
	suite.Run(t, new(LifterSuite))
}

func TestApply_OperationErrorLevel(t *testing.T) {
	l := lift.NewLifter(nil)
	_, err := l.Op(context.Background(), "/",
		ints(map[float64]int{1: 4, 0.8: 2}),
		ints(map[float64]int{1: 2, 0.8: 0}))

	var opErr *lift.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 0.8, opErr.Level)
	assert.Equal(t, "Div", opErr.Op)
	assert.ErrorIs(t, err, lift.ErrDivisionByZero)
	assert.ErrorIs(t, err, lift.ErrOperation)
	assert.Contains(t, err.Error(), "level 0.8")
}

func TestApply_MixedNumericTypes(t *testing.T) {
	l := lift.NewLifter(nil)
	_, err := l.Op(context.Background(), "+", ints(map[float64]int{1: 1, 0.5: 2}), 1.5)
	require.ErrorIs(t, err, graded.ErrTypeMismatch)

	var opErr *lift.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 1.0, opErr.Level)
}

type boom int

func TestApply_RecoversPanic(t *testing.T) {
	l := lift.NewLifter(nil)
	require.NoError(t, lift.Register[boom](l.Registry(),
		lift.Nullary("Explode", func(b boom) (boom, error) { panic("kaboom") })))

	_, err := l.Call(context.Background(), graded.Crisp(boom(1)), "Explode")
	require.ErrorIs(t, err, lift.ErrPanic)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestApply_ContextCanceled(t *testing.T) {
	l := lift.NewLifter(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Op(ctx, "+", ints(map[float64]int{1: 1, 0.5: 2}), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestApply_ClosedWorld(t *testing.T) {
	l := lift.NewLifter(nil, lift.WithMode(lift.ClosedWorld))
	set := graded.MustNew([]float64{1, 0.5}, []tagSet{tags("a"), tags("b")})

	_, err := l.Op(context.Background(), "|", set, tags("z"))
	require.ErrorIs(t, err, lift.ErrUnregisteredType)
	require.ErrorIs(t, err, graded.ErrTypeMismatch)

	require.NoError(t, l.Registry().Register(lift.Introspect(reflect.TypeOf(tagSet{}))))
	got, err := l.Op(context.Background(), "|", set, tags("z"))
	require.NoError(t, err)
	assert.Equal(t, map[float64]any{1: tags("a", "z"), 0.5: tags("b", "z")}, pairs(t, got))
}

// TestApply_ClosedWorldResultType fails when the operation produces a type
// the registry does not know.
func TestApply_ClosedWorldResultType(t *testing.T) {
	l := lift.NewLifter(nil, lift.WithMode(lift.ClosedWorld))
	require.NoError(t, lift.Register[widget](l.Registry(),
		lift.Nullary("Tags", func(w widget) (tagSet, error) {
			return tags(string(rune('a' + w.Val))), nil
		})))

	_, err := l.Call(context.Background(),
		graded.MustNew([]float64{1, 0.5}, []widget{{0}, {1}}), "Tags")
	require.ErrorIs(t, err, lift.ErrUnregisteredType)
}

func TestApply_InputsUnchanged(t *testing.T) {
	l := lift.NewLifter(nil)
	set := graded.MustNew([]float64{1, 0.5}, []tagSet{tags("a"), tags("b")})
	before := set.Pairs()

	_, err := l.Op(context.Background(), "|", set, tags("z"))
	require.NoError(t, err)
	assert.Equal(t, before, set.Pairs())
}

func TestApply_Deterministic(t *testing.T) {
	l := lift.NewLifter(nil)
	a := ints(map[float64]int{1: 7, 0.8: 3, 0.5: 5})
	b := ints(map[float64]int{1: 5, 0.8: 1, 0.6: 10})

	first, err := l.Op(context.Background(), "-", a, b)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := l.Op(context.Background(), "-", a, b)
		require.NoError(t, err)
		assert.Equal(t, first.String(), again.String())
	}
}

func TestApply_Concurrent(t *testing.T) {
	l := lift.NewLifter(nil)
	set1 := graded.MustNew([]float64{1, 0.8}, []tagSet{tags("a"), tags("b")})
	want := map[float64]any{1: tags("a", "x"), 0.8: tags("b", "x")}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := l.Op(context.Background(), "|", set1, tags("x"))
			if err != nil {
				errs <- err
				return
			}
			g, _ := got.Graded()
			for lvl, x := range want {
				v, _ := g.Lookup(lvl)
				if !graded.Equal(v, x) {
					errs <- errors.New("unexpected union")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestApply_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := lift.NewLifter(nil, lift.WithLogger(zap.New(core)))

	_, err := l.Op(context.Background(), "+", ints(map[float64]int{1: 1, 0.5: 2}), 1)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("lifted operation").Len())
	entry := logs.FilterMessage("lifted operation").All()[0]
	assert.Equal(t, "Add", entry.ContextMap()["op"])
}

func TestTyped_Mismatch(t *testing.T) {
	l := lift.NewLifter(nil)
	got, err := l.Op(context.Background(), "+", ints(map[float64]int{1: 1, 0.5: 2}), 1)
	require.NoError(t, err)

	_, err = lift.Typed[string](got)
	require.ErrorIs(t, err, graded.ErrTypeMismatch)

	typed, err := lift.Typed[int](got)
	require.NoError(t, err)
	assert.Equal(t, 2, typed.Top())
}

func TestUnaryBinaryHelpers(t *testing.T) {
	l := lift.NewLifter(nil)
	ctx := context.Background()

	got, err := l.Binary(ctx, "<", ints(map[float64]int{1: 1, 0.5: 9}), 5)
	require.NoError(t, err)
	assert.Equal(t, map[float64]any{1: true, 0.5: false}, pairs(t, got))

	got, err = l.Unary(ctx, "abs", ints(map[float64]int{1: -1, 0.5: 2}))
	require.NoError(t, err)
	assert.Equal(t, map[float64]any{1: 1, 0.5: 2}, pairs(t, got))

	_, err = l.Unary(ctx, "+", 1)
	require.ErrorIs(t, err, lift.ErrArity)
}
