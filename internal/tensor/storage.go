package tensor

import (
	"fmt"
	"iter"
)

// StorageKind identifies the data provider backing a tensor.
type StorageKind int

// Storage kinds.
const (
	DenseStatic StorageKind = iota
	DenseDynamic
	Sparse
)

// String returns a human-readable storage name.
func (k StorageKind) String() string {
	switch k {
	case DenseStatic:
		return "dense-static"
	case DenseDynamic:
		return "dense-dynamic"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// IsDense reports whether the kind stores every element.
func (k StorageKind) IsDense() bool {
	return k == DenseStatic || k == DenseDynamic
}

// SelectStorage picks the provider for a shape: dense requests get a fixed
// block for static shapes and a resizable block otherwise; everything else
// is sparse regardless of the shape.
func SelectStorage(s Shape, dense bool) StorageKind {
	switch {
	case dense && s.IsStatic():
		return DenseStatic
	case dense:
		return DenseDynamic
	default:
		return Sparse
	}
}

// Provider is the storage strategy behind a Tensor. Indices are flat
// row-major offsets in [0, Len()).
type Provider[T DType] interface {
	Kind() StorageKind
	Len() int
	Get(i int) T
	Set(i int, v T)
	Clone() Provider[T]
	// NonZeros iterates the structurally nonzero entries in ascending order.
	NonZeros() iter.Seq2[int, T]
}

// NewProvider allocates a zero-filled provider of the given kind.
func NewProvider[T DType](kind StorageKind, n int) Provider[T] {
	switch kind {
	case DenseStatic:
		return &staticBlock[T]{data: make([]T, n)}
	case DenseDynamic:
		return &dynamicBlock[T]{data: make([]T, n)}
	case Sparse:
		return NewSparse[T](n)
	default:
		panic(fmt.Sprintf("unknown storage kind %d", kind))
	}
}

// staticBlock is a fixed-size element block. Its length never changes.
type staticBlock[T DType] struct {
	data []T
}

func (b *staticBlock[T]) Kind() StorageKind { return DenseStatic }
func (b *staticBlock[T]) Len() int          { return len(b.data) }
func (b *staticBlock[T]) Get(i int) T       { return b.data[i] }
func (b *staticBlock[T]) Set(i int, v T)    { b.data[i] = v }

func (b *staticBlock[T]) Clone() Provider[T] {
	return &staticBlock[T]{data: append([]T(nil), b.data...)}
}

func (b *staticBlock[T]) NonZeros() iter.Seq2[int, T] {
	return denseNonZeros(b.data)
}

// dynamicBlock is a resizable element block.
type dynamicBlock[T DType] struct {
	data []T
}

func (b *dynamicBlock[T]) Kind() StorageKind { return DenseDynamic }
func (b *dynamicBlock[T]) Len() int          { return len(b.data) }
func (b *dynamicBlock[T]) Get(i int) T       { return b.data[i] }
func (b *dynamicBlock[T]) Set(i int, v T)    { b.data[i] = v }

func (b *dynamicBlock[T]) Clone() Provider[T] {
	return &dynamicBlock[T]{data: append([]T(nil), b.data...)}
}

func (b *dynamicBlock[T]) NonZeros() iter.Seq2[int, T] {
	return denseNonZeros(b.data)
}

// Resize changes the length, keeping the common prefix and zero-filling the rest.
func (b *dynamicBlock[T]) Resize(n int) {
	if n <= cap(b.data) {
		old := len(b.data)
		b.data = b.data[:n]
		clear(b.data[min(old, n):])
		return
	}
	grown := make([]T, n)
	copy(grown, b.data)
	b.data = grown
}

func denseNonZeros[T DType](data []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var zero T
		for i, v := range data {
			if v != zero && !yield(i, v) {
				return
			}
		}
	}
}

// DenseData exposes the element slice of dense providers (nil for sparse).
func DenseData[T DType](p Provider[T]) []T {
	switch b := p.(type) {
	case *staticBlock[T]:
		return b.data
	case *dynamicBlock[T]:
		return b.data
	default:
		return nil
	}
}
