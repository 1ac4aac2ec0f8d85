package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Static(2, 3), true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x.At(0, 1))
	assert.Equal(t, 6.0, x.At(1, 2))
	assert.Equal(t, 4.0, x.AtIndex(3))
	assert.Equal(t, 5.0, x.AtSubscript([]int{1, 1}))
	assert.True(t, x.IsDense())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())

	_, err = FromSlice([]float64{1, 2}, Static(2, 3), true)
	assert.Error(t, err)
}

func TestFromSliceSparseDropsZeros(t *testing.T) {
	x, err := FromSlice([]int{0, 3, 0, 0, 5, 0}, Dynamic(6), false)
	require.NoError(t, err)
	assert.True(t, x.IsSparse())
	assert.Equal(t, 2, x.CountNonZero())
	assert.Nil(t, x.Data())
	assert.Equal(t, 5, x.At(4))
	assert.Equal(t, 0, x.At(0))
}

func TestTensorSetBounds(t *testing.T) {
	x := Zeros[float32](Static(2, 2))
	x.Set(3, 1, 0)
	assert.Equal(t, float32(3), x.At(1, 0))
	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
	assert.Panics(t, func() { x.Set(1, 0, -1) })
}

func TestFull(t *testing.T) {
	x := Full(Dynamic(3), int64(7))
	assert.Equal(t, DenseDynamic, x.Storage())
	assert.Equal(t, []int64{7, 7, 7}, x.Data())
	assert.Equal(t, 3, x.CountNonZero())
}

func TestCloneIsDeep(t *testing.T) {
	x := Zeros[int](Static(2))
	c := x.Clone()
	c.Set(4, 1)
	assert.Equal(t, 0, x.At(1))
	assert.Equal(t, 4, c.At(1))
}

func TestReshapeCopies(t *testing.T) {
	x, _ := FromSlice([]int{1, 2, 3, 4, 5, 6}, Static(2, 3), true)
	y := Reshape(x, Static(3, 2))
	assert.Equal(t, 4, y.At(1, 1))
	y.Set(100, 0, 0)
	assert.Equal(t, 1, x.At(0, 0))

	assert.Panics(t, func() { Reshape(x, Static(4, 2)) })
}

func TestReshapeRoundTrip(t *testing.T) {
	x, _ := FromSlice([]float64{0, 1.5, 0, 3}, Static(2, 2), false)
	y := Reshape(x, x.Shape())
	for i := 0; i < x.NumElements(); i++ {
		assert.Equal(t, x.AtIndex(i), y.AtIndex(i))
	}
}

func TestReshapeMoveTransfersStorage(t *testing.T) {
	x, _ := FromSlice([]int{1, 2, 3, 4}, Static(4), true)
	data := x.Data()
	y := ReshapeMove(x, Static(2, 2))
	assert.Equal(t, 3, y.At(1, 0))
	assert.Same(t, &data[0], &y.Data()[0])
	assert.Nil(t, x.Provider())
}

func TestResize(t *testing.T) {
	x := New[int](Dynamic(4), true)
	x.SetIndex(1, 5)
	x.Resize(Dynamic(2, 3))
	assert.Equal(t, 6, len(x.Data()))
	assert.Equal(t, 5, x.AtIndex(1))

	s := New[int](Static(4), false)
	s.SetIndex(3, 1)
	s.Resize(Static(2))
	assert.Equal(t, 0, s.CountNonZero())

	fixed := New[int](Static(4), true)
	assert.Panics(t, func() { fixed.Resize(Static(5)) })
	assert.NotPanics(t, func() { fixed.Resize(Static(2, 2)) })
}

func TestWalkAndReadProtocols(t *testing.T) {
	x, _ := FromSlice([]int{1, 2, 3, 4, 5, 6}, Static(2, 3), true)
	var seen []int
	Walk[int](x, func(i int, v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seen)
	assert.Equal(t, 6, ReadIndex[int](x, 5))
	assert.Equal(t, 4, ReadSubscript[int](x, []int{1, 0}))
}

func TestSprint(t *testing.T) {
	x, _ := FromSlice([]int{1, 0, 0, 1}, Static(2, 2), true)
	assert.Equal(t, "[[1 0]\n [0 1]]", Sprint[int](x))

	v, _ := FromSlice([]int{1, 2, 3}, Static(3), true)
	assert.Equal(t, "[1 2 3]", Sprint[int](v))

	s, _ := FromSlice([]int{7}, ScalarShape(), true)
	assert.Equal(t, "7", Sprint[int](s))
}

func TestTensorString(t *testing.T) {
	x := New[float64](Dynamic(2), false)
	assert.Equal(t, "Tensor[float64](n=2) sparse", x.String())
}
