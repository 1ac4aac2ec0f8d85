package lazy

import (
	"fmt"

	"github.com/born-ml/texpr/internal/tensor"
)

// Sum returns the sum of all elements. Expressions with nonzero iteration
// only visit their nonzeros.
func Sum[T tensor.DType](e tensor.Expr[T]) T {
	var sum T
	if seq, ok := tensor.NonZerosOf(e); ok {
		for _, v := range seq {
			sum += v
		}
		return sum
	}
	tensor.Walk(e, func(_ int, v T) bool {
		sum += v
		return true
	})
	return sum
}

// Prod returns the product of all elements. The empty product is one.
func Prod[T tensor.DType](e tensor.Expr[T]) T {
	prod := tensor.One[T]()
	tensor.Walk(e, func(_ int, v T) bool {
		prod *= v
		return true
	})
	return prod
}

// Max returns the largest element. Panics on an empty expression.
func Max[T tensor.Real](e tensor.Expr[T]) T {
	return extremum(e, "max", func(a, b T) bool { return a > b })
}

// Min returns the smallest element. Panics on an empty expression.
func Min[T tensor.Real](e tensor.Expr[T]) T {
	return extremum(e, "min", func(a, b T) bool { return a < b })
}

func extremum[T tensor.Real](e tensor.Expr[T], name string, better func(a, b T) bool) T {
	if e.Shape().NumElements() == 0 {
		panic(fmt.Sprintf("%s: empty expression %v", name, e.Shape()))
	}
	var best T
	tensor.Walk(e, func(i int, v T) bool {
		if i == 0 || better(v, best) {
			best = v
		}
		return true
	})
	return best
}

// CountNonZero returns the number of nonzero elements.
func CountNonZero[T tensor.DType](e tensor.Expr[T]) int {
	var zero T
	n := 0
	if seq, ok := tensor.NonZerosOf(e); ok {
		for _, v := range seq {
			if v != zero {
				n++
			}
		}
		return n
	}
	tensor.Walk(e, func(_ int, v T) bool {
		if v != zero {
			n++
		}
		return true
	})
	return n
}

// Any reports whether at least one element is nonzero.
func Any[T tensor.DType](e tensor.Expr[T]) bool {
	var zero T
	found := false
	if seq, ok := tensor.NonZerosOf(e); ok {
		for _, v := range seq {
			if v != zero {
				return true
			}
		}
		return false
	}
	tensor.Walk(e, func(_ int, v T) bool {
		found = v != zero
		return !found
	})
	return found
}

// None reports whether every element is zero.
func None[T tensor.DType](e tensor.Expr[T]) bool {
	return !Any(e)
}

// All reports whether every element is nonzero. It is true for empty
// expressions.
func All[T tensor.DType](e tensor.Expr[T]) bool {
	var zero T
	all := true
	tensor.Walk(e, func(_ int, v T) bool {
		all = v != zero
		return all
	})
	return all
}

// AxisSum sums its input along one axis, removing that axis.
type AxisSum[T tensor.DType] struct {
	object
	in    tensor.Expr[T]
	axis  int
	shape tensor.Shape
}

// SumAxis returns a view summing e along axis. Panics if axis is out of range.
func SumAxis[T tensor.DType](e tensor.Expr[T], axis int) *AxisSum[T] {
	in := e.Shape()
	if axis < 0 || axis >= in.Rank() {
		panic(fmt.Sprintf("sum: axis %d out of range for rank %d", axis, in.Rank()))
	}
	extents := in.Extents()
	extents = append(extents[:axis], extents[axis+1:]...)
	return &AxisSum[T]{in: e, axis: axis, shape: tensor.MustShape(extents...)}
}

// Shape returns the reduced shape.
func (s *AxisSum[T]) Shape() tensor.Shape { return s.shape }

// Access supports subscript reads only.
func (s *AxisSum[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (s *AxisSum[T]) At(sub ...int) T { return tensor.ReadSubscript[T](s, sub) }

// AtSubscript sums the input over the reduced axis at sub.
func (s *AxisSum[T]) AtSubscript(sub []int) T {
	inSub := make([]int, len(sub)+1)
	copy(inSub, sub[:s.axis])
	copy(inSub[s.axis+1:], sub[s.axis:])
	var sum T
	for k := 0; k < s.in.Shape().Dim(s.axis); k++ {
		inSub[s.axis] = k
		sum += tensor.ReadSubscript(s.in, inSub)
	}
	return sum
}
