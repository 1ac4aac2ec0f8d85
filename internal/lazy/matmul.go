package lazy

import (
	"fmt"

	"github.com/born-ml/texpr/internal/tensor"
)

// MatMul returns the matrix product of a and b as a lazy view.
//
// Supported operand ranks:
//   - (M, K) @ (K, N) → (M, N)
//   - (M, K) @ (K)    → (M)
//   - (K)    @ (K, N) → (N)
//
// Each element read sums over the contracted axis using the operands' own
// readers. Results are not cached: reading the same element twice repeats
// the O(K) summation. Evaluate the view once if elements are read often.
//
// Panics on unsupported ranks or mismatched inner dimensions.
func MatMul[T tensor.DType](a, b tensor.Expr[T]) tensor.Expr[T] {
	as, bs := a.Shape(), b.Shape()
	switch {
	case as.Rank() == 2 && bs.Rank() == 2:
		checkInner(as, 1, bs, 0)
		return &matMat[T]{a: a, b: b, k: as.Dim(1), shape: tensor.MustShape(as.Extent(0), bs.Extent(1))}
	case as.Rank() == 2 && bs.Rank() == 1:
		checkInner(as, 1, bs, 0)
		return &matVec[T]{a: a, b: b, k: as.Dim(1), shape: tensor.MustShape(as.Extent(0))}
	case as.Rank() == 1 && bs.Rank() == 2:
		checkInner(as, 0, bs, 0)
		return &vecMat[T]{a: a, b: b, k: as.Dim(0), shape: tensor.MustShape(bs.Extent(1))}
	default:
		panic(fmt.Sprintf("matmul: unsupported operand ranks %d and %d", as.Rank(), bs.Rank()))
	}
}

func checkInner(as tensor.Shape, ai int, bs tensor.Shape, bi int) {
	if as.Dim(ai) != bs.Dim(bi) {
		panic(fmt.Sprintf("matmul: incompatible shapes %v @ %v", as, bs))
	}
}

// matMat is (M, K) @ (K, N).
type matMat[T tensor.DType] struct {
	object
	a, b  tensor.Expr[T]
	k     int
	shape tensor.Shape
}

func (m *matMat[T]) Shape() tensor.Shape { return m.shape }
func (m *matMat[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (m *matMat[T]) At(sub ...int) T { return tensor.ReadSubscript[T](m, sub) }

func (m *matMat[T]) AtSubscript(sub []int) T {
	var sum T
	as := []int{sub[0], 0}
	bs := []int{0, sub[1]}
	for k := 0; k < m.k; k++ {
		as[1], bs[0] = k, k
		sum += tensor.ReadSubscript(m.a, as) * tensor.ReadSubscript(m.b, bs)
	}
	return sum
}

// matVec is (M, K) @ (K).
type matVec[T tensor.DType] struct {
	object
	a, b  tensor.Expr[T]
	k     int
	shape tensor.Shape
}

func (m *matVec[T]) Shape() tensor.Shape { return m.shape }
func (m *matVec[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (m *matVec[T]) At(sub ...int) T { return tensor.ReadSubscript[T](m, sub) }

func (m *matVec[T]) AtSubscript(sub []int) T {
	var sum T
	as := []int{sub[0], 0}
	bs := []int{0}
	for k := 0; k < m.k; k++ {
		as[1], bs[0] = k, k
		sum += tensor.ReadSubscript(m.a, as) * tensor.ReadSubscript(m.b, bs)
	}
	return sum
}

// vecMat is (K) @ (K, N).
type vecMat[T tensor.DType] struct {
	object
	a, b  tensor.Expr[T]
	k     int
	shape tensor.Shape
}

func (m *vecMat[T]) Shape() tensor.Shape { return m.shape }
func (m *vecMat[T]) Access() tensor.Access { return tensor.BySubscript }

// At reads the element at sub.
func (m *vecMat[T]) At(sub ...int) T { return tensor.ReadSubscript[T](m, sub) }

func (m *vecMat[T]) AtSubscript(sub []int) T {
	var sum T
	as := []int{0}
	bs := []int{0, sub[0]}
	for k := 0; k < m.k; k++ {
		as[0], bs[0] = k, k
		sum += tensor.ReadSubscript(m.a, as) * tensor.ReadSubscript(m.b, bs)
	}
	return sum
}
