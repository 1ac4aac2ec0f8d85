// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops_test

import (
	"container/list"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/texpr/cexpr"
	"github.com/born-ml/texpr/ops"
	"github.com/born-ml/texpr/tensor"
)

type money struct{ cents int }

func (money) ObjectKind() string { return "money" }

func TestRegisterNewKind(t *testing.T) {
	kind := ops.Kind("money")
	t.Cleanup(func() {
		ops.Unregister(cexpr.Add, kind, kind)
		ops.Unregister(cexpr.Mul, kind, ops.Integral)
	})
	ops.Register(cexpr.Add, kind, kind, func(a, b any) (any, error) {
		return money{a.(money).cents + b.(money).cents}, nil
	})
	ops.Register(cexpr.Mul, kind, ops.Integral, func(a, b any) (any, error) {
		n, ok := b.(int)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ops.ErrOperand, b)
		}
		return money{a.(money).cents * n}, nil
	})

	got, err := ops.Add(money{150}, money{25})
	require.NoError(t, err)
	assert.Equal(t, money{175}, got)

	got, err = ops.Mul(money{10}, 3)
	require.NoError(t, err)
	assert.Equal(t, money{30}, got)

	_, err = ops.Mul(money{10}, int8(3))
	assert.ErrorIs(t, err, ops.ErrOperand)
	_, err = ops.Sub(money{1}, money{1})
	assert.ErrorIs(t, err, ops.ErrUnresolved)

	// Built-in overloads are unaffected.
	got, err = ops.Add(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestUnregisterRestoresResolution(t *testing.T) {
	kind := ops.Kind("money")
	ops.Register(cexpr.Sub, kind, kind, func(a, b any) (any, error) {
		return money{a.(money).cents - b.(money).cents}, nil
	})
	got, err := ops.Sub(money{5}, money{2})
	require.NoError(t, err)
	assert.Equal(t, money{3}, got)

	assert.True(t, ops.Unregister(cexpr.Sub, kind, kind))
	_, err = ops.Sub(money{5}, money{2})
	assert.ErrorIs(t, err, ops.ErrUnresolved)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ops.Tensor, ops.KindOf(tensor.Eye[int](2, 2)))
	assert.Equal(t, ops.CExpr, ops.KindOf(cexpr.P0))
	assert.Equal(t, ops.Floating, ops.KindOf(1.5))
	assert.Equal(t, ops.Container, ops.KindOf(list.New()))
}

func TestContainerOf(t *testing.T) {
	arr := [2]int{}
	assert.Equal(t, "array", ops.ContainerOf(arr))
	assert.Equal(t, "array-pointer", ops.ContainerOf(&arr))
	assert.Equal(t, "slice", ops.ContainerOf([]float64{1}))
	assert.Equal(t, "deque", ops.ContainerOf(list.New()))
	assert.Equal(t, "none", ops.ContainerOf(tensor.Eye[int](2, 2)))
	assert.Equal(t, "none", ops.ContainerOf(3))
}

func TestTensorEntryPoints(t *testing.T) {
	v, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Static(3), true)
	require.NoError(t, err)

	neg, err := ops.Neg(tensor.Eye[float64](3, 3))
	require.NoError(t, err)
	prod, err := ops.MatMul(neg, v)
	require.NoError(t, err)
	out, err := ops.Eval(prod, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -2, -3}, out.(*tensor.Tensor[float64]).Data())

	s, err := ops.Sum(v)
	require.NoError(t, err)
	assert.Equal(t, 6.0, s)

	p, err := ops.Permute(cexpr.P0, 1, 0)
	require.NoError(t, err)
	m, _ := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Static(2, 3), true)
	view, err := p.(cexpr.Node).Invoke(m)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, view.(tensor.Expr[int]).Shape().Dims())

	q, err := ops.Div(v, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, q.(tensor.Expr[float64]).At(2))
}
