package tensor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/texpr/internal/index"
)

// ErrInvalidShape is returned for negative extents or magnitudes that overflow.
var ErrInvalidShape = errors.New("invalid shape")

// Extent is the size of one axis. A static extent is fixed when the shape is
// declared; a dynamic extent is only known at run time.
type Extent struct {
	Value  int
	Static bool
}

// Fixed returns a static extent.
func Fixed(n int) Extent { return Extent{Value: n, Static: true} }

// Dyn returns a dynamic extent.
func Dyn(n int) Extent { return Extent{Value: n} }

// Shape represents the dimensions of a tensor.
//
// A Shape is immutable: methods never modify it and reshaping always
// produces a new value. The element count is computed once at construction.
type Shape struct {
	extents []Extent
	numel   int
	static  bool
}

// NewShape creates a shape from its extents.
// Returns ErrInvalidShape for negative extents or an overflowing magnitude.
func NewShape(extents ...Extent) (Shape, error) {
	dims := make(index.Seq, len(extents))
	static := true
	for i, e := range extents {
		if e.Value < 0 {
			return Shape{}, fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, e.Value)
		}
		dims[i] = e.Value
		static = static && e.Static
	}
	numel, err := dims.CheckedProduct()
	if err != nil {
		return Shape{}, fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	return Shape{
		extents: append([]Extent(nil), extents...),
		numel:   numel,
		static:  static,
	}, nil
}

// MustShape is like NewShape but panics on error.
func MustShape(extents ...Extent) Shape {
	s, err := NewShape(extents...)
	if err != nil {
		panic(err)
	}
	return s
}

// Static creates a shape whose extents are all static.
//
// Example:
//
//	s := tensor.Static(3, 4) // rank 2, 12 elements
func Static(dims ...int) Shape {
	extents := make([]Extent, len(dims))
	for i, d := range dims {
		extents[i] = Fixed(d)
	}
	return MustShape(extents...)
}

// Dynamic creates a shape whose extents are all dynamic.
func Dynamic(dims ...int) Shape {
	extents := make([]Extent, len(dims))
	for i, d := range dims {
		extents[i] = Dyn(d)
	}
	return MustShape(extents...)
}

// ScalarShape returns the rank-0 shape. It holds one element.
func ScalarShape() Shape {
	return Shape{numel: 1, static: true}
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s.extents)
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if s.extents == nil && s.numel == 0 {
		return 1 // zero Shape value behaves as a scalar
	}
	return s.numel
}

// IsStatic reports whether every extent is static.
func (s Shape) IsStatic() bool {
	if s.extents == nil {
		return true
	}
	return s.static
}

// Dims returns a copy of the extents' values.
func (s Shape) Dims() []int {
	dims := make([]int, len(s.extents))
	for i, e := range s.extents {
		dims[i] = e.Value
	}
	return dims
}

// Dim returns the size of axis i.
func (s Shape) Dim(i int) int {
	return s.extents[i].Value
}

// Extent returns axis i's extent.
func (s Shape) Extent(i int) Extent {
	return s.extents[i]
}

// Extents returns a copy of all extents.
func (s Shape) Extents() []Extent {
	return append([]Extent(nil), s.extents...)
}

// Equal checks if two shapes have the same dimensions.
// Static and dynamic extents of equal value compare equal.
func (s Shape) Equal(other Shape) bool {
	if len(s.extents) != len(other.extents) {
		return false
	}
	for i := range s.extents {
		if s.extents[i].Value != other.extents[i].Value {
			return false
		}
	}
	return true
}

// Ravel converts a subscript into a flat row-major index.
func (s Shape) Ravel(sub []int) int {
	flat := 0
	for i, e := range s.extents {
		flat = flat*e.Value + sub[i]
	}
	return flat
}

// Unravel converts a flat index into a subscript written to sub.
func (s Shape) Unravel(flat int, sub []int) {
	for i := len(s.extents) - 1; i >= 0; i-- {
		d := s.extents[i].Value
		if d == 0 {
			sub[i] = 0
			continue
		}
		sub[i] = flat % d
		flat /= d
	}
}

// String returns the shape as (2, n=3), marking dynamic extents with "n=".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range s.extents {
		if i > 0 {
			sb.WriteString(", ")
		}
		if !e.Static {
			sb.WriteString("n=")
		}
		fmt.Fprintf(&sb, "%d", e.Value)
	}
	sb.WriteByte(')')
	return sb.String()
}

func mustMatch(op string, a, b Shape) {
	if !a.Equal(b) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a, b))
	}
}
