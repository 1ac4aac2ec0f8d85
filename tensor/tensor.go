// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"log/slog"

	"github.com/born-ml/texpr/internal/lazy"
	"github.com/born-ml/texpr/internal/logging"
	"github.com/born-ml/texpr/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types: signed and unsigned
// integers, floats and complex numbers.
type DType = tensor.DType

// Real is DType without complex numbers.
type Real = tensor.Real

// Float is the floating-point subset of DType.
type Float = tensor.Float

// DataType represents the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int        DataType = tensor.Int
	Int8       DataType = tensor.Int8
	Int16      DataType = tensor.Int16
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint8      DataType = tensor.Uint8
	Uint16     DataType = tensor.Uint16
	Uint32     DataType = tensor.Uint32
	Uint64     DataType = tensor.Uint64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Shape is an immutable list of static or dynamic extents.
type Shape = tensor.Shape

// Extent is one axis of a Shape.
type Extent = tensor.Extent

// StorageKind identifies a storage strategy.
type StorageKind = tensor.StorageKind

// Storage kinds.
const (
	DenseStatic  StorageKind = tensor.DenseStatic
	DenseDynamic StorageKind = tensor.DenseDynamic
	SparseMap    StorageKind = tensor.Sparse
)

// Access is the set of read protocols an expression supports.
type Access = tensor.Access

// Read protocols.
const (
	ByIndex     Access = tensor.ByIndex
	BySubscript Access = tensor.BySubscript
	ByBoth      Access = tensor.ByBoth
)

// Expr is a concrete tensor or a lazy expression with elements of type T.
type Expr[T DType] = tensor.Expr[T]

// Tensor is a shape bound to owned storage.
type Tensor[T DType] = tensor.Tensor[T]

// Logger is the structured logger accepted by WithLogger.
type Logger = logging.Logger

// ErrInvalidShape is returned for negative or overflowing extents.
var ErrInvalidShape = tensor.ErrInvalidShape

// Shapes

// Fixed returns a static extent.
func Fixed(n int) Extent { return tensor.Fixed(n) }

// Dyn returns a dynamic extent.
func Dyn(n int) Extent { return tensor.Dyn(n) }

// Static returns a shape whose extents are all static. Panics on a negative extent.
func Static(dims ...int) Shape { return tensor.Static(dims...) }

// Dynamic returns a shape whose extents are all dynamic. Panics on a negative extent.
func Dynamic(dims ...int) Shape { return tensor.Dynamic(dims...) }

// NewShape builds a shape from extents, checking for negative values and
// magnitude overflow.
func NewShape(extents ...Extent) (Shape, error) { return tensor.NewShape(extents...) }

// SelectStorage returns the storage kind a tensor of shape gets for the
// density hint.
func SelectStorage(shape Shape, dense bool) StorageKind { return tensor.SelectStorage(shape, dense) }

// Concrete tensors

// New creates a zero-filled tensor. dense selects dense storage, otherwise
// sparse.
func New[T DType](shape Shape, dense bool) *Tensor[T] { return tensor.New[T](shape, dense) }

// FromSlice creates a tensor holding a copy of data in row-major order.
// Sparse tensors store only the nonzero values.
func FromSlice[T DType](data []T, shape Shape, dense bool) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, dense)
}

// Reshape returns a tensor with a new shape over a copy of t's storage.
// Panics if the element counts differ.
func Reshape[T DType](t *Tensor[T], shape Shape) *Tensor[T] { return tensor.Reshape(t, shape) }

// ReshapeMove returns a tensor with a new shape that takes over t's
// storage. t is left empty. Panics if the element counts differ.
func ReshapeMove[T DType](t *Tensor[T], shape Shape) *Tensor[T] { return tensor.ReshapeMove(t, shape) }

// Own returns e with concrete tensors deep-copied, so the result no longer
// observes writes to caller-owned storage.
func Own[T DType](e Expr[T]) Expr[T] { return lazy.Own(e) }

// Sprint formats any expression as nested brackets.
func Sprint[T DType](e Expr[T]) string { return tensor.Sprint(e) }

// NewLogger creates a Logger with the given handler.
func NewLogger(handler slog.Handler) *Logger { return logging.New(handler) }
