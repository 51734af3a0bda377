// SPDX-License-Identifier: MIT

package graded_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/levels"
)

func TestNew_Validation(t *testing.T) {
	_, err := graded.New([]float64{1, 1.1}, []int{1, 2})
	require.ErrorIs(t, err, levels.ErrOutOfRange)
	require.ErrorIs(t, err, graded.ErrValidation)

	_, err = graded.New([]float64{0.8, 0.5}, []int{1, 2})
	require.ErrorIs(t, err, levels.ErrMissingTop)

	_, err = graded.New([]float64{1, 0.8}, []int{1})
	require.ErrorIs(t, err, graded.ErrLengthMismatch)
	require.ErrorIs(t, err, graded.ErrValidation)
}

func TestNew_Homogeneous(t *testing.T) {
	_, err := graded.New([]float64{1, 0.8}, []any{"a", 1})
	require.ErrorIs(t, err, graded.ErrTypeMismatch)

	_, err = graded.New([]float64{1}, []any{nil})
	require.ErrorIs(t, err, graded.ErrTypeMismatch)

	v, err := graded.New([]float64{1, 0.8}, []any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), v.ElemType())
}

// TestNew_NoSquash keeps construction verbatim even with repeated values.
func TestNew_NoSquash(t *testing.T) {
	v := graded.MustNew([]float64{1, 0.8, 0.5}, []int{5, 5, 5})
	assert.Equal(t, 3, v.Len())
	assert.False(t, graded.IsCanonical(v))
}

// TestNew_DeepCopy checks that neither input nor output slices alias storage.
func TestNew_DeepCopy(t *testing.T) {
	in := []map[string]int{{"a": 1}, {"b": 2}}
	v := graded.MustNew([]float64{1, 0.5}, in)

	in[0]["a"] = 100
	top := v.Top()
	assert.Equal(t, 1, top["a"])

	top["a"] = 42
	again, ok := v.At(1)
	require.True(t, ok)
	assert.Equal(t, 1, again["a"])

	pairs := v.Pairs()
	pairs[1].Value["b"] = 7
	assert.Equal(t, 2, v.Values()[1]["b"])
}

func TestGet_ExtendForward(t *testing.T) {
	v := graded.MustNew([]float64{1, 0.8}, []int{5, 3})
	assert.Equal(t, 5, v.Get(1, -1))
	assert.Equal(t, 3, v.Get(0.8, 5))
	assert.Equal(t, 3, v.Get(0.7, 3), "absent level keeps the previous value")
	_, ok := v.At(0.7)
	assert.False(t, ok)
}

func TestFromMap(t *testing.T) {
	v, err := graded.FromMap(map[float64]string{0.5: "c", 1: "a", 0.8: "b"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.8, 0.5}, v.Levels().Values())
	assert.Equal(t, []string{"a", "b", "c"}, v.Values())

	_, err = graded.FromMap(map[float64]string{0.5: "c"})
	require.ErrorIs(t, err, levels.ErrMissingTop)
}

func TestFromPairs(t *testing.T) {
	v, err := graded.FromPairs([]graded.Pair[int]{{Level: 1, Value: 2}, {Level: 0.3, Value: 4}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, v.Values())

	_, err = graded.FromPairs([]graded.Pair[int]{{Level: 0.3, Value: 4}, {Level: 1, Value: 2}})
	require.ErrorIs(t, err, levels.ErrNotDescending)
}

func TestAs(t *testing.T) {
	erased := graded.MustNew([]float64{1, 0.8}, []any{2.5, 1.5})
	typed, err := graded.As[float64](erased)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 1.5}, typed.Values())

	same, err := graded.As[float64](typed)
	require.NoError(t, err)
	assert.Same(t, typed, same)

	_, err = graded.As[int](erased)
	require.ErrorIs(t, err, graded.ErrTypeMismatch)
}

func TestCrisp(t *testing.T) {
	c := graded.Crisp(7)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 7, c.Top())
	assert.True(t, c.Levels().Equal(levels.Single()))
}

func TestValue_Equal(t *testing.T) {
	a := graded.MustNew([]float64{1, 0.8}, []int{5, 3})
	b := graded.MustNew([]float64{1, 0.8}, []int{5, 3})
	c := graded.MustNew([]float64{1, 0.7}, []int{5, 3})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
