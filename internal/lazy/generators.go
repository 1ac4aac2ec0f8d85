package lazy

import (
	"iter"

	"github.com/born-ml/texpr/internal/tensor"
)

// Constant is a tensor whose every element equals one value.
type Constant[T tensor.DType] struct {
	object
	shape tensor.Shape
	value T
}

// Fill returns a constant-valued descriptor of the given shape.
func Fill[T tensor.DType](shape tensor.Shape, value T) *Constant[T] {
	return &Constant[T]{shape: shape, value: value}
}

// Scalar returns a rank-0 constant. Plain values combined with tensors are
// lifted into this form.
func Scalar[T tensor.DType](value T) *Constant[T] {
	return &Constant[T]{shape: tensor.ScalarShape(), value: value}
}

// Zeros returns a constant zero descriptor.
func Zeros[T tensor.DType](shape tensor.Shape) *Constant[T] {
	var zero T
	return Fill(shape, zero)
}

// Ones returns a constant one descriptor.
func Ones[T tensor.DType](shape tensor.Shape) *Constant[T] {
	return Fill(shape, tensor.One[T]())
}

// Value returns the constant.
func (c *Constant[T]) Value() T { return c.value }

// Shape returns the shape.
func (c *Constant[T]) Shape() tensor.Shape { return c.shape }

// Access supports both protocols.
func (c *Constant[T]) Access() tensor.Access { return tensor.ByBoth }

// At reads the element at sub.
func (c *Constant[T]) At(sub ...int) T { return tensor.ReadSubscript[T](c, sub) }

// AtIndex returns the constant.
func (c *Constant[T]) AtIndex(int) T { return c.value }

// AtSubscript returns the constant.
func (c *Constant[T]) AtSubscript([]int) T { return c.value }

// NonZeros is available only for the zero constant, which has none.
func (c *Constant[T]) NonZeros() (iter.Seq2[int, T], bool) {
	var zero T
	if c.value != zero {
		return nil, false
	}
	return func(func(int, T) bool) {}, true
}

// Sequence yields the flat index of each element: 0, 1, 2, ...
type Sequence[T tensor.DType] struct {
	object
	shape tensor.Shape
}

// Iota returns a descriptor whose element at flat index i is i.
func Iota[T tensor.DType](shape tensor.Shape) *Sequence[T] {
	return &Sequence[T]{shape: shape}
}

// Shape returns the shape.
func (s *Sequence[T]) Shape() tensor.Shape { return s.shape }

// Access supports reads by index only.
func (s *Sequence[T]) Access() tensor.Access { return tensor.ByIndex }

// At reads the element at sub.
func (s *Sequence[T]) At(sub ...int) T { return tensor.ReadSubscript[T](s, sub) }

// AtIndex returns i.
func (s *Sequence[T]) AtIndex(i int) T { return tensor.FromInt[T](i) }

// Identity is 1 where all subscripts are equal and 0 elsewhere.
type Identity[T tensor.DType] struct {
	object
	shape tensor.Shape
}

// Eye returns an m×n identity descriptor.
func Eye[T tensor.DType](m, n int) *Identity[T] {
	return EyeOf[T](tensor.Dynamic(m, n))
}

// EyeOf returns an identity descriptor of any shape: the element is one
// when every subscript component is equal.
func EyeOf[T tensor.DType](shape tensor.Shape) *Identity[T] {
	return &Identity[T]{shape: shape}
}

// Shape returns the shape.
func (e *Identity[T]) Shape() tensor.Shape { return e.shape }

// Access supports subscript reads only.
func (e *Identity[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (e *Identity[T]) At(sub ...int) T { return tensor.ReadSubscript[T](e, sub) }

// AtSubscript returns one on the diagonal and zero elsewhere.
func (e *Identity[T]) AtSubscript(sub []int) T {
	if len(sub) == 0 {
		return tensor.One[T]()
	}
	for _, s := range sub[1:] {
		if s != sub[0] {
			var zero T
			return zero
		}
	}
	return tensor.One[T]()
}

// NonZeros visits only the diagonal.
func (e *Identity[T]) NonZeros() (iter.Seq2[int, T], bool) {
	return func(yield func(int, T) bool) {
		if e.shape.Rank() == 0 {
			yield(0, tensor.One[T]())
			return
		}
		dims := e.shape.Dims()
		n := dims[0]
		for _, d := range dims[1:] {
			n = min(n, d)
		}
		sub := make([]int, len(dims))
		for k := 0; k < n; k++ {
			for i := range sub {
				sub[i] = k
			}
			if !yield(e.shape.Ravel(sub), tensor.One[T]()) {
				return
			}
		}
	}, true
}

// Grid is one coordinate array of a mesh grid: the element at a subscript
// is that subscript's component along axis.
type Grid[T tensor.DType] struct {
	object
	shape tensor.Shape
	axis  int
}

// Meshgrid returns one Grid per dimension over the shape dims. For two
// dimensions m, n: X(i, j) == i and Y(i, j) == j.
func Meshgrid[T tensor.DType](dims ...int) []*Grid[T] {
	shape := tensor.Dynamic(dims...)
	grids := make([]*Grid[T], len(dims))
	for axis := range dims {
		grids[axis] = &Grid[T]{shape: shape, axis: axis}
	}
	return grids
}

// Axis returns the coordinate axis this grid reports.
func (g *Grid[T]) Axis() int { return g.axis }

// Shape returns the shape.
func (g *Grid[T]) Shape() tensor.Shape { return g.shape }

// Access supports subscript reads only.
func (g *Grid[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (g *Grid[T]) At(sub ...int) T { return tensor.ReadSubscript[T](g, sub) }

// AtSubscript returns sub[axis].
func (g *Grid[T]) AtSubscript(sub []int) T { return tensor.FromInt[T](sub[g.axis]) }
