// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package export writes tensor expressions into flat typed buffers for
// host numeric environments, and stores them in a checksummed container.
//
// Example:
//
//	a := export.Materialize[float64](tensor.Eye[float64](3, 3), export.ColumnMajor)
//	err := export.Encode(w, a, export.CompressionZstd)
package export

import (
	"io"

	"github.com/born-ml/texpr/internal/export"
	"github.com/born-ml/texpr/internal/logging"
	"github.com/born-ml/texpr/internal/tensor"
)

// Array is a dense numeric buffer with a rank, extents and element class.
type Array = export.Array

// Class is an element classification.
type Class = export.Class

// Element classes.
const (
	Logical = export.Logical
	Double  = export.Double
	Single  = export.Single
	Int8    = export.Int8
	Int16   = export.Int16
	Int32   = export.Int32
	Int64   = export.Int64
	Uint8   = export.Uint8
	Uint16  = export.Uint16
	Uint32  = export.Uint32
	Uint64  = export.Uint64
)

// Layout maps subscripts to buffer offsets.
type Layout = export.Layout

// LayoutFunc adapts a function to Layout.
type LayoutFunc = export.LayoutFunc

// Built-in layouts.
var (
	ColumnMajor = export.ColumnMajor
	RowMajor    = export.RowMajor
)

// Compression selects the container payload encoding.
type Compression = export.Compression

// Compression algorithms.
const (
	CompressionNone = export.CompressionNone
	CompressionLZ4  = export.CompressionLZ4
	CompressionZstd = export.CompressionZstd
)

// Header is the container's JSON header.
type Header = export.Header

// Option configures Encode and Decode.
type Option = export.Option

// Errors.
var (
	ErrInvalidMagic       = export.ErrInvalidMagic
	ErrUnsupportedVersion = export.ErrUnsupportedVersion
	ErrChecksumMismatch   = export.ErrChecksumMismatch
	ErrCorrupt            = export.ErrCorrupt
	ErrClassMismatch      = export.ErrClassMismatch
)

// Materialize writes e into a new Array using layout (ColumnMajor if nil).
func Materialize[T tensor.DType](e tensor.Expr[T], layout Layout) *Array {
	return export.Materialize(e, layout)
}

// MaterializeMask writes a Logical array marking the nonzeros of e.
func MaterializeMask[T tensor.DType](e tensor.Expr[T], layout Layout) *Array {
	return export.MaterializeMask(e, layout)
}

// ToTensor reads an Array back into a tensor of element type T.
func ToTensor[T tensor.DType](a *Array, layout Layout, dense bool) (*tensor.Tensor[T], error) {
	return export.ToTensor[T](a, layout, dense)
}

// ParseCompression returns the Compression named s: "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) { return export.ParseCompression(s) }

// Encode writes a as a container.
func Encode(w io.Writer, a *Array, c Compression, opts ...Option) error {
	return export.Encode(w, a, c, opts...)
}

// Decode reads a container.
func Decode(r io.Reader, opts ...Option) (*Array, Header, error) { return export.Decode(r, opts...) }

// WithLogger logs container sizes at debug level.
func WithLogger(l *logging.Logger) Option { return export.WithLogger(l) }

// WithMetadata stores key/value pairs in the header.
func WithMetadata(md map[string]string) Option { return export.WithMetadata(md) }
