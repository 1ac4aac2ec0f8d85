// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/texpr/internal/lazy"

// Generators

// Fill returns an expression with every element equal to value.
func Fill[T DType](shape Shape, value T) Expr[T] { return lazy.Fill(shape, value) }

// Scalar returns a rank-0 expression. It pairs with every element of the
// other operand in binary operations.
func Scalar[T DType](value T) Expr[T] { return lazy.Scalar(value) }

// Zeros returns an all-zero expression.
func Zeros[T DType](shape Shape) Expr[T] { return lazy.Zeros[T](shape) }

// Ones returns an all-one expression.
func Ones[T DType](shape Shape) Expr[T] { return lazy.Ones[T](shape) }

// Iota returns an expression whose elements are their flat indices.
func Iota[T DType](shape Shape) Expr[T] { return lazy.Iota[T](shape) }

// Eye returns an m×n identity expression.
//
// Example:
//
//	tensor.Sparse[float64](tensor.Eye[float64](10, 20000)).CountNonZero() // 10
func Eye[T DType](m, n int) Expr[T] { return lazy.Eye[T](m, n) }

// Meshgrid returns one coordinate expression per dimension.
// For dims m, n: X.At(i, j) == i and Y.At(i, j) == j.
func Meshgrid[T DType](dims ...int) []Expr[T] {
	grids := lazy.Meshgrid[T](dims...)
	out := make([]Expr[T], len(grids))
	for i, g := range grids {
		out[i] = g
	}
	return out
}

// Element-wise operations. Binary operations panic unless the shapes are
// equal or one operand is rank 0.

// Add returns a + b.
func Add[T DType](a, b Expr[T]) Expr[T] { return lazy.Add(a, b) }

// Sub returns a - b.
func Sub[T DType](a, b Expr[T]) Expr[T] { return lazy.Sub(a, b) }

// Mul returns the element-wise product a * b.
func Mul[T DType](a, b Expr[T]) Expr[T] { return lazy.Mul(a, b) }

// Div returns a / b.
func Div[T DType](a, b Expr[T]) Expr[T] { return lazy.Div(a, b) }

// Neg returns -e.
func Neg[T DType](e Expr[T]) Expr[T] { return lazy.Neg(e) }

// Abs returns |e|.
func Abs[T Real](e Expr[T]) Expr[T] { return lazy.Abs(e) }

// AddScalar returns e + s.
func AddScalar[T DType](e Expr[T], s T) Expr[T] { return lazy.AddScalar(e, s) }

// SubScalar returns e - s.
func SubScalar[T DType](e Expr[T], s T) Expr[T] { return lazy.SubScalar(e, s) }

// MulScalar returns e * s.
func MulScalar[T DType](e Expr[T], s T) Expr[T] { return lazy.MulScalar(e, s) }

// DivScalar returns e / s.
func DivScalar[T DType](e Expr[T], s T) Expr[T] { return lazy.DivScalar(e, s) }

// Map applies fn across inputs element by element.
func Map[T DType](name string, fn func(args []T) T, inputs ...Expr[T]) Expr[T] {
	return lazy.NewMap(name, fn, inputs...)
}

// Views

// Permute reorders axes: output axis k is input axis axes[k].
// Panics unless axes is a permutation of 0..rank-1.
func Permute[T DType](e Expr[T], axes ...int) Expr[T] { return lazy.Permute(e, axes...) }

// Transpose reverses all axes.
func Transpose[T DType](e Expr[T]) Expr[T] { return lazy.Transpose(e) }

// View reinterprets e with a new shape of equal element count.
func View[T DType](e Expr[T], shape Shape) Expr[T] { return lazy.Reshape(e, shape) }

// MatMul returns the matrix, matrix-vector or vector-matrix product.
// Every element read repeats the O(K) contraction; evaluate the result if
// elements are read more than once.
func MatMul[T DType](a, b Expr[T]) Expr[T] { return lazy.MatMul(a, b) }

// Reductions

// Sum returns the sum of all elements.
func Sum[T DType](e Expr[T]) T { return lazy.Sum(e) }

// SumAxis returns e summed along axis.
func SumAxis[T DType](e Expr[T], axis int) Expr[T] { return lazy.SumAxis(e, axis) }

// Prod returns the product of all elements.
func Prod[T DType](e Expr[T]) T { return lazy.Prod(e) }

// Max returns the largest element. Panics on an empty expression.
func Max[T Real](e Expr[T]) T { return lazy.Max(e) }

// Min returns the smallest element. Panics on an empty expression.
func Min[T Real](e Expr[T]) T { return lazy.Min(e) }

// CountNonZero returns the number of nonzero elements.
func CountNonZero[T DType](e Expr[T]) int { return lazy.CountNonZero(e) }

// Any reports whether some element is nonzero.
func Any[T DType](e Expr[T]) bool { return lazy.Any(e) }

// None reports whether every element is zero.
func None[T DType](e Expr[T]) bool { return lazy.None(e) }

// All reports whether every element is nonzero.
func All[T DType](e Expr[T]) bool { return lazy.All(e) }
