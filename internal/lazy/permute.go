package lazy

import (
	"fmt"
	"iter"

	"github.com/born-ml/texpr/internal/index"
	"github.com/born-ml/texpr/internal/tensor"
)

// Permutation reorders the axes of its input: output axis k is input axis
// axes[k].
type Permutation[T tensor.DType] struct {
	object
	in    tensor.Expr[T]
	axes  index.Seq
	inv   index.Seq
	shape tensor.Shape
}

// Permute returns a view of e with axes reordered.
// Panics unless axes is a permutation of 0..rank-1.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Static(2, 3, 4))
//	y := lazy.Permute[float32](x, 2, 0, 1) // Shape: (4, 2, 3)
func Permute[T tensor.DType](e tensor.Expr[T], axes ...int) *Permutation[T] {
	in := e.Shape()
	perm := index.Of(axes...)
	if len(perm) != in.Rank() || !perm.IsPermutation() {
		panic(fmt.Sprintf("permute: axes %v are not a permutation of rank %d", axes, in.Rank()))
	}
	extents := make([]tensor.Extent, len(perm))
	for k, axis := range perm {
		extents[k] = in.Extent(axis)
	}
	return &Permutation[T]{
		in:    e,
		axes:  perm,
		inv:   perm.Inverse(),
		shape: tensor.MustShape(extents...),
	}
}

// Transpose reverses all axes. For matrices this is the usual transpose.
func Transpose[T tensor.DType](e tensor.Expr[T]) *Permutation[T] {
	return Permute(e, index.Iota(e.Shape().Rank()).Reverse()...)
}

// Axes returns the permutation.
func (p *Permutation[T]) Axes() []int { return p.axes.Clone() }

// Shape returns the permuted shape.
func (p *Permutation[T]) Shape() tensor.Shape { return p.shape }

// Access supports subscript reads only.
func (p *Permutation[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (p *Permutation[T]) At(sub ...int) T { return tensor.ReadSubscript[T](p, sub) }

// AtSubscript maps sub back to the input: input axis j takes the output
// component at the position of j within the permutation.
func (p *Permutation[T]) AtSubscript(sub []int) T {
	inSub := make([]int, len(sub))
	for j := range inSub {
		inSub[j] = sub[p.inv[j]]
	}
	return tensor.ReadSubscript(p.in, inSub)
}

// NonZeros remaps the input's nonzero iteration, if it has one.
// Entries are not visited in ascending output order.
func (p *Permutation[T]) NonZeros() (iter.Seq2[int, T], bool) {
	seq, ok := tensor.NonZerosOf(p.in)
	if !ok {
		return nil, false
	}
	inShape := p.in.Shape()
	return func(yield func(int, T) bool) {
		inSub := make([]int, len(p.axes))
		outSub := make([]int, len(p.axes))
		for i, v := range seq {
			inShape.Unravel(i, inSub)
			for k, axis := range p.axes {
				outSub[k] = inSub[axis]
			}
			if !yield(p.shape.Ravel(outSub), v) {
				return
			}
		}
	}, true
}

// ReshapeView reinterprets its input's flat index space with a new shape.
type ReshapeView[T tensor.DType] struct {
	object
	in    tensor.Expr[T]
	shape tensor.Shape
}

// Reshape returns a view of e with a different shape and the same
// row-major element order. Panics if the element counts differ.
func Reshape[T tensor.DType](e tensor.Expr[T], shape tensor.Shape) *ReshapeView[T] {
	if e.Shape().NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("reshape: cannot view %v as %v", e.Shape(), shape))
	}
	return &ReshapeView[T]{in: e, shape: shape}
}

// Shape returns the new shape.
func (r *ReshapeView[T]) Shape() tensor.Shape { return r.shape }

// Access supports reads by index only.
func (r *ReshapeView[T]) Access() tensor.Access { return tensor.ByIndex }

// At reads the element at sub.
func (r *ReshapeView[T]) At(sub ...int) T { return tensor.ReadSubscript[T](r, sub) }

// AtIndex reads the input at the same flat index.
func (r *ReshapeView[T]) AtIndex(i int) T { return tensor.ReadIndex(r.in, i) }

// NonZeros forwards the input's nonzero iteration.
func (r *ReshapeView[T]) NonZeros() (iter.Seq2[int, T], bool) {
	return tensor.NonZerosOf(r.in)
}
