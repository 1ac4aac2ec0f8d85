package tensor

import (
	"fmt"
	"iter"
)

// Tensor is a shape bound to a storage provider it owns outright.
//
// Type Parameters:
//   - T: Element type (must satisfy DType constraint)
//
// Example:
//
//	t := tensor.New[float64](tensor.Static(3, 4), true)
//	t.Set(1.5, 1, 2)
//	v := t.At(1, 2) // 1.5
type Tensor[T DType] struct {
	shape Shape
	data  Provider[T]
}

// New creates a zero-filled tensor. dense selects dense storage (static or
// dynamic depending on the shape); otherwise the tensor is sparse.
func New[T DType](shape Shape, dense bool) *Tensor[T] {
	return &Tensor[T]{
		shape: shape,
		data:  NewProvider[T](SelectStorage(shape, dense), shape.NumElements()),
	}
}

// Zeros creates a dense zero-filled tensor.
func Zeros[T DType](shape Shape) *Tensor[T] {
	return New[T](shape, true)
}

// Full creates a dense tensor filled with value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := 0; i < t.data.Len(); i++ {
		t.data.Set(i, value)
	}
	return t
}

// FromSlice creates a tensor from a Go slice laid out in row-major order.
// The slice is copied. Zero values are not stored when dense is false.
func FromSlice[T DType](data []T, shape Shape, dense bool) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t := New[T](shape, dense)
	for i, v := range data {
		t.data.Set(i, v)
	}
	return t, nil
}

// FromProvider wraps an existing provider. The tensor takes ownership.
// Panics if the provider length does not match the shape.
func FromProvider[T DType](shape Shape, p Provider[T]) *Tensor[T] {
	if p.Len() != shape.NumElements() {
		panic(fmt.Sprintf("provider holds %d elements, shape %v needs %d", p.Len(), shape, shape.NumElements()))
	}
	return &Tensor[T]{shape: shape, data: p}
}

// ObjectKind identifies tensors for operator dispatch.
func (t *Tensor[T]) ObjectKind() string { return ObjectKind }

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape { return t.shape }

// Access reports that tensors support both read protocols.
func (t *Tensor[T]) Access() Access { return ByBoth }

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int { return t.shape.Rank() }

// Dims returns the extents' values.
func (t *Tensor[T]) Dims() []int { return t.shape.Dims() }

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int { return t.shape.NumElements() }

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType { return DataTypeOf[T]() }

// Storage returns the provider kind.
func (t *Tensor[T]) Storage() StorageKind { return t.data.Kind() }

// IsDense reports whether every element is stored.
func (t *Tensor[T]) IsDense() bool { return t.data.Kind().IsDense() }

// IsSparse reports whether the tensor uses sparse storage.
func (t *Tensor[T]) IsSparse() bool { return t.data.Kind() == Sparse }

// Provider returns the underlying storage.
// Used by evaluation to fill tensors without per-element bounds checks.
func (t *Tensor[T]) Provider() Provider[T] { return t.data }

// Data returns the element slice of a dense tensor (zero-copy), or nil for
// sparse tensors.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T { return DenseData(t.data) }

// AtIndex returns the element at a flat row-major index.
func (t *Tensor[T]) AtIndex(i int) T { return t.data.Get(i) }

// AtSubscript returns the element at sub.
func (t *Tensor[T]) AtSubscript(sub []int) T { return t.data.Get(t.shape.Ravel(sub)) }

// At returns the element at the given indices.
// Panics if the index count or any index is out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.data.Get(t.offset(indices))
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data.Set(t.offset(indices), value)
}

// SetIndex sets the element at a flat index.
func (t *Tensor[T]) SetIndex(i int, value T) {
	t.data.Set(i, value)
}

func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != t.shape.Rank() {
		panic(fmt.Sprintf("expected %d indices, got %d", t.shape.Rank(), len(indices)))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape.Dim(i) {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape.Dim(i)))
		}
	}
	return t.shape.Ravel(indices)
}

// NonZeros iterates nonzero elements. For sparse tensors only stored entries
// are visited; dense tensors scan their block.
func (t *Tensor[T]) NonZeros() (iter.Seq2[int, T], bool) {
	return t.data.NonZeros(), true
}

// CountNonZero returns the number of nonzero elements. For sparse tensors
// this is the number of stored entries.
func (t *Tensor[T]) CountNonZero() int {
	if m, ok := t.data.(*SparseMap[T]); ok {
		return m.Count()
	}
	n := 0
	for range t.data.NonZeros() {
		n++
	}
	return n
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{shape: t.shape, data: t.data.Clone()}
}

// Resize changes the shape in place, reallocating dynamic or sparse storage.
// Elements at flat indices below both magnitudes are kept.
// Panics for dense-static storage when the magnitude changes.
func (t *Tensor[T]) Resize(shape Shape) {
	n := shape.NumElements()
	switch p := t.data.(type) {
	case *dynamicBlock[T]:
		p.Resize(n)
	case *SparseMap[T]:
		p.Resize(n)
	default:
		if n != t.data.Len() {
			panic(fmt.Sprintf("resize: dense-static storage of %d elements cannot hold shape %v", t.data.Len(), shape))
		}
	}
	t.shape = shape
}

// String returns a human-readable summary of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v %s", t.DType(), t.shape, t.data.Kind())
}

// SetProvider replaces the tensor's storage with p, which must hold
// NumElements() elements. Evaluation fills a fresh provider and swaps it in
// so that sources reading from t stay valid while it is being filled.
func (t *Tensor[T]) SetProvider(p Provider[T]) {
	if p.Len() != t.shape.NumElements() {
		panic(fmt.Sprintf("provider holds %d elements, shape %v needs %d", p.Len(), t.shape, t.shape.NumElements()))
	}
	t.data = p
}
