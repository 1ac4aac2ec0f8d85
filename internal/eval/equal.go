package eval

import (
	"math"

	"github.com/born-ml/texpr/internal/tensor"
)

// Equal reports whether a and b have equal shapes and equal elements.
func Equal[T tensor.DType](a, b tensor.Expr[T]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	equal := true
	tensor.Walk(a, func(i int, v T) bool {
		equal = v == tensor.ReadIndex(b, i)
		return equal
	})
	return equal
}

// AllClose reports whether a and b have equal shapes and every pair of
// elements differs by at most tol.
func AllClose[T tensor.Float](a, b tensor.Expr[T], tol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	ok := true
	tensor.Walk(a, func(i int, v T) bool {
		ok = math.Abs(float64(v)-float64(tensor.ReadIndex(b, i))) <= tol
		return ok
	})
	return ok
}
