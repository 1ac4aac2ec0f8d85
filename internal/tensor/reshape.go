package tensor

import "fmt"

// Reshape returns a tensor with the new shape over a copy of t's storage.
// t is left untouched.
//
// Panics if the element counts differ.
func Reshape[T DType](t *Tensor[T], shape Shape) *Tensor[T] {
	checkReshape(t.shape, shape)
	return &Tensor[T]{shape: shape, data: t.data.Clone()}
}

// ReshapeMove returns a tensor with the new shape that takes over t's
// storage without copying. t is left empty (rank 0, no storage) and must
// not be read afterwards.
//
// Panics if the element counts differ.
func ReshapeMove[T DType](t *Tensor[T], shape Shape) *Tensor[T] {
	checkReshape(t.shape, shape)
	moved := &Tensor[T]{shape: shape, data: t.data}
	t.shape = Shape{}
	t.data = nil
	return moved
}

func checkReshape(from, to Shape) {
	if from.NumElements() != to.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			from, from.NumElements(), to, to.NumElements()))
	}
}
