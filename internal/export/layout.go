package export

import "github.com/born-ml/texpr/internal/index"

// Layout maps a subscript to an element offset within a flat buffer.
type Layout interface {
	Offset(dims, sub []int) int
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(dims, sub []int) int

// Offset calls f.
func (f LayoutFunc) Offset(dims, sub []int) int { return f(dims, sub) }

var (
	// ColumnMajor stores the first axis contiguously.
	ColumnMajor Layout = LayoutFunc(columnMajor)
	// RowMajor stores the last axis contiguously, like tensor storage.
	RowMajor Layout = LayoutFunc(index.Ravel)
)

func columnMajor(dims, sub []int) int {
	off := 0
	for i := len(dims) - 1; i >= 0; i-- {
		off = off*dims[i] + sub[i]
	}
	return off
}
