package tensor

import (
	"iter"

	"github.com/born-ml/texpr/internal/index"
)

// ObjectKind is the dispatch kind reported by tensors and lazy descriptors.
const ObjectKind = "tensor"

// Access is a set of read protocols an expression supports.
type Access uint8

// Read protocols.
const (
	// ByIndex reads elements by flat row-major index.
	ByIndex Access = 1 << iota
	// BySubscript reads elements by per-axis subscript.
	BySubscript

	// ByBoth supports both protocols.
	ByBoth = ByIndex | BySubscript
)

// Has reports whether all protocols in p are supported.
func (a Access) Has(p Access) bool {
	return a&p == p
}

// Expr is any tensor-shaped value: a concrete tensor or a lazy descriptor.
// Access declares which of IndexReader / SubscriptReader the value implements.
type Expr[T DType] interface {
	Shape() Shape
	Access() Access
	// At returns the element at the given subscript.
	At(sub ...int) T
}

// IndexReader reads elements by flat index.
type IndexReader[T DType] interface {
	Expr[T]
	AtIndex(i int) T
}

// SubscriptReader reads elements by subscript. Implementations must not
// retain sub.
type SubscriptReader[T DType] interface {
	Expr[T]
	AtSubscript(sub []int) T
}

// NonZeroer is implemented by expressions that can enumerate their
// structurally nonzero elements without scanning every position. The bool
// result is false when this particular value cannot (for example a wrapper
// whose input cannot).
type NonZeroer[T DType] interface {
	NonZeros() (iter.Seq2[int, T], bool)
}

// ReadIndex returns the element at flat index i using the protocol e declares.
func ReadIndex[T DType](e Expr[T], i int) T {
	if e.Access().Has(ByIndex) {
		return e.(IndexReader[T]).AtIndex(i)
	}
	s := e.Shape()
	sub := make([]int, s.Rank())
	s.Unravel(i, sub)
	return e.(SubscriptReader[T]).AtSubscript(sub)
}

// ReadSubscript returns the element at sub using the protocol e declares.
func ReadSubscript[T DType](e Expr[T], sub []int) T {
	if e.Access().Has(BySubscript) {
		return e.(SubscriptReader[T]).AtSubscript(sub)
	}
	return e.(IndexReader[T]).AtIndex(e.Shape().Ravel(sub))
}

// NonZerosOf returns the nonzero iterator of e if it offers one.
func NonZerosOf[T DType](e Expr[T]) (iter.Seq2[int, T], bool) {
	nz, ok := e.(NonZeroer[T])
	if !ok {
		return nil, false
	}
	return nz.NonZeros()
}

// Walk calls fn for every position of e in row-major order, passing the flat
// index and the element. Index-readable expressions are read by index,
// others by an incrementing subscript.
func Walk[T DType](e Expr[T], fn func(i int, v T) bool) {
	s := e.Shape()
	n := s.NumElements()
	if n == 0 {
		return
	}
	if e.Access().Has(ByIndex) {
		r := e.(IndexReader[T])
		for i := 0; i < n; i++ {
			if !fn(i, r.AtIndex(i)) {
				return
			}
		}
		return
	}
	r := e.(SubscriptReader[T])
	dims := s.Dims()
	sub := make([]int, len(dims))
	for i := 0; i < n; i++ {
		if !fn(i, r.AtSubscript(sub)) {
			return
		}
		index.Next(dims, sub)
	}
}
