// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/texpr/tensor"
)

func TestQuickStart(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Static(2, 2), true)
	require.NoError(t, err)

	out := tensor.Dense(tensor.MatMul(tensor.Expr[float64](a), tensor.Eye[float64](2, 2)))
	assert.True(t, tensor.Equal[float64](a, out))
	assert.Equal(t, tensor.DenseDynamic, out.Storage())

	s := tensor.Sparse(tensor.Eye[float64](10, 20000))
	assert.Equal(t, 10, s.CountNonZero())
}

func TestStaticNumElements(t *testing.T) {
	for _, dims := range [][]int{{}, {4}, {2, 3}, {2, 3, 4}, {5, 0, 2}} {
		shape := tensor.Static(dims...)
		x := tensor.New[int](shape, true)
		want := 1
		for _, d := range shape.Dims() {
			want *= d
		}
		assert.Equal(t, want, x.NumElements())
		assert.Equal(t, tensor.DenseStatic, x.Storage())
	}
}

func TestSelectStorage(t *testing.T) {
	assert.Equal(t, tensor.DenseStatic, tensor.SelectStorage(tensor.Static(2), true))
	assert.Equal(t, tensor.DenseDynamic, tensor.SelectStorage(tensor.Dynamic(2), true))
	mixed, err := tensor.NewShape(tensor.Fixed(2), tensor.Dyn(3))
	require.NoError(t, err)
	assert.Equal(t, tensor.DenseDynamic, tensor.SelectStorage(mixed, true))
	assert.Equal(t, tensor.SparseMap, tensor.SelectStorage(tensor.Static(2), false))
	_, err = tensor.NewShape(tensor.Dyn(-1))
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestOnesMinusOne(t *testing.T) {
	z := tensor.Sparse(tensor.SubScalar(tensor.Ones[int](tensor.Dynamic(3, 3)), 1))
	assert.Equal(t, 0, z.CountNonZero())
	assert.True(t, tensor.None[int](z))
}

func TestMeshgrid(t *testing.T) {
	g := tensor.Meshgrid[int](3, 2)
	x, y := tensor.Dense(g[0]), tensor.Dense(g[1])
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, i, x.At(i, j))
			assert.Equal(t, j, y.At(i, j))
		}
	}
}

func TestAssignAndOwn(t *testing.T) {
	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Static(2, 2), true)
	view := tensor.Neg[float32](x)
	owned := tensor.Neg(tensor.Own[float32](x))

	tensor.Assign[float32](x, tensor.Transpose[float32](x))
	assert.Equal(t, []float32{1, 3, 2, 4}, x.Data())
	assert.Equal(t, float32(-3), view.At(0, 1))
	assert.Equal(t, float32(-2), owned.At(0, 1))
}

func TestReshapeCopyAndMove(t *testing.T) {
	x, _ := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Static(2, 3), false)
	c := tensor.Reshape(x, tensor.Static(3, 2))
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, 4, c.At(1, 1))

	m := tensor.ReshapeMove(x, tensor.Static(6))
	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, 6, m.At(5))
	assert.Panics(t, func() { tensor.Reshape(m, tensor.Static(4)) })
}

func TestReductionsAndSprint(t *testing.T) {
	e := tensor.Eye[int](2, 2)
	assert.Equal(t, 2, tensor.Sum(e))
	assert.Equal(t, 1, tensor.Max(e))
	assert.Equal(t, "[[1 0]\n [0 1]]", tensor.Sprint(e))
	assert.Equal(t, []int{1, 1}, tensor.Dense(tensor.SumAxis(e, 0)).Data())
}

func TestEvalAll(t *testing.T) {
	out, err := tensor.EvalAll(context.Background(), []tensor.Expr[float64]{
		tensor.Eye[float64](3, 3),
		tensor.Fill(tensor.Static(2), 2.5),
	}, true, tensor.WithWorkers(2), tensor.WithParallel(tensor.DefaultParallelConfig()))
	require.NoError(t, err)
	assert.Equal(t, 3, out[0].CountNonZero())
	assert.Equal(t, []float64{2.5, 2.5}, out[1].Data())
	assert.True(t, tensor.AllClose[float64](out[1], tensor.Fill(tensor.Static(2), 2.5000001), 1e-3))
}
