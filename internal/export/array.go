package export

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/born-ml/texpr/internal/index"
	"github.com/born-ml/texpr/internal/tensor"
)

// Array is a dense numeric buffer in a host layout.
type Array struct {
	Class   Class
	Complex bool
	Dims    []int
	Real    []byte
	Imag    []byte // nil unless Complex
}

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.Dims) }

// NumElements returns the product of Dims.
func (a *Array) NumElements() int { return index.Of(a.Dims...).Product() }

// Float64s decodes the real buffer.
func (a *Array) Float64s() []float64 { return decode(a.Class, a.Real) }

// Imag64s decodes the imaginary buffer, or returns nil for real arrays.
func (a *Array) Imag64s() []float64 {
	if !a.Complex {
		return nil
	}
	return decode(a.Class, a.Imag)
}

// Materialize writes every element of e into a new Array, placing each
// subscript at layout's offset. A nil layout means ColumnMajor.
// Expressions with nonzero iteration only visit their nonzeros.
func Materialize[T tensor.DType](e tensor.Expr[T], layout Layout) *Array {
	if layout == nil {
		layout = ColumnMajor
	}
	class, cplx := ClassOf(tensor.DataTypeOf[T]())
	shape := e.Shape()
	dims := shape.Dims()
	n := shape.NumElements()
	size := class.Size()

	a := &Array{Class: class, Complex: cplx, Dims: dims, Real: make([]byte, n*size)}
	if cplx {
		a.Imag = make([]byte, n*size)
	}
	put := func(sub []int, v T) {
		off := layout.Offset(dims, sub) * size
		putElem(a.Real[off:], a.Imag, off, v)
	}

	sub := make([]int, len(dims))
	if seq, ok := tensor.NonZerosOf(e); ok {
		for i, v := range seq {
			shape.Unravel(i, sub)
			put(sub, v)
		}
		return a
	}
	for i := 0; i < n; i++ {
		put(sub, tensor.ReadSubscript(e, sub))
		index.Next(dims, sub)
	}
	return a
}

// MaterializeMask writes a Logical array holding 1 where e is nonzero.
func MaterializeMask[T tensor.DType](e tensor.Expr[T], layout Layout) *Array {
	if layout == nil {
		layout = ColumnMajor
	}
	shape := e.Shape()
	dims := shape.Dims()
	a := &Array{Class: Logical, Dims: dims, Real: make([]byte, shape.NumElements())}
	sub := make([]int, len(dims))
	var zero T
	tensor.Walk(e, func(i int, v T) bool {
		if v != zero {
			shape.Unravel(i, sub)
			a.Real[layout.Offset(dims, sub)] = 1
		}
		return true
	})
	return a
}

// ToTensor reads a back into a tensor with element type T. The array must
// hold exactly that element type.
func ToTensor[T tensor.DType](a *Array, layout Layout, dense bool) (*tensor.Tensor[T], error) {
	if layout == nil {
		layout = ColumnMajor
	}
	class, cplx := ClassOf(tensor.DataTypeOf[T]())
	if a.Class != class || a.Complex != cplx {
		return nil, fmt.Errorf("%w: array is %s, want %s", ErrClassMismatch, describe(a.Class, a.Complex), describe(class, cplx))
	}
	shape, err := tensor.NewShape(dynamic(a.Dims)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	n := shape.NumElements()
	size := class.Size()
	if len(a.Real) != n*size || (cplx && len(a.Imag) != n*size) {
		return nil, fmt.Errorf("%w: buffer size does not match dims %v", ErrCorrupt, a.Dims)
	}

	t := tensor.New[T](shape, dense)
	sub := make([]int, len(a.Dims))
	for i := 0; i < n; i++ {
		off := layout.Offset(a.Dims, sub) * size
		t.SetIndex(i, getElem[T](a.Real[off:], a.Imag, off))
		index.Next(a.Dims, sub)
	}
	return t, nil
}

func describe(c Class, cplx bool) string {
	if cplx {
		return "complex " + c.String()
	}
	return c.String()
}

func dynamic(dims []int) []tensor.Extent {
	out := make([]tensor.Extent, len(dims))
	for i, d := range dims {
		out[i] = tensor.Dyn(d)
	}
	return out
}

//nolint:gocyclo,cyclop // One case per supported element type.
func putElem[T tensor.DType](b, im []byte, off int, v T) {
	le := binary.LittleEndian
	switch x := any(v).(type) {
	case float32:
		le.PutUint32(b, math.Float32bits(x))
	case float64:
		le.PutUint64(b, math.Float64bits(x))
	case int8:
		b[0] = byte(x)
	case int16:
		le.PutUint16(b, uint16(x))
	case int32:
		le.PutUint32(b, uint32(x))
	case int64:
		le.PutUint64(b, uint64(x))
	case int:
		le.PutUint64(b, uint64(x))
	case uint8:
		b[0] = x
	case uint16:
		le.PutUint16(b, x)
	case uint32:
		le.PutUint32(b, x)
	case uint64:
		le.PutUint64(b, x)
	case complex64:
		le.PutUint32(b, math.Float32bits(real(x)))
		le.PutUint32(im[off:], math.Float32bits(imag(x)))
	case complex128:
		le.PutUint64(b, math.Float64bits(real(x)))
		le.PutUint64(im[off:], math.Float64bits(imag(x)))
	}
}

//nolint:gocyclo,cyclop // One case per supported element type.
func getElem[T tensor.DType](b, im []byte, off int) T {
	le := binary.LittleEndian
	var v any
	var zero T
	switch any(zero).(type) {
	case float32:
		v = math.Float32frombits(le.Uint32(b))
	case float64:
		v = math.Float64frombits(le.Uint64(b))
	case int8:
		v = int8(b[0])
	case int16:
		v = int16(le.Uint16(b))
	case int32:
		v = int32(le.Uint32(b))
	case int64:
		v = int64(le.Uint64(b))
	case int:
		v = int(le.Uint64(b))
	case uint8:
		v = b[0]
	case uint16:
		v = le.Uint16(b)
	case uint32:
		v = le.Uint32(b)
	case uint64:
		v = le.Uint64(b)
	case complex64:
		v = complex(math.Float32frombits(le.Uint32(b)), math.Float32frombits(le.Uint32(im[off:])))
	case complex128:
		v = complex(math.Float64frombits(le.Uint64(b)), math.Float64frombits(le.Uint64(im[off:])))
	}
	return v.(T)
}

func decode(c Class, b []byte) []float64 {
	le := binary.LittleEndian
	size := c.Size()
	out := make([]float64, len(b)/size)
	for i := range out {
		p := b[i*size:]
		switch c {
		case Logical, Uint8:
			out[i] = float64(p[0])
		case Int8:
			out[i] = float64(int8(p[0]))
		case Int16:
			out[i] = float64(int16(le.Uint16(p)))
		case Uint16:
			out[i] = float64(le.Uint16(p))
		case Int32:
			out[i] = float64(int32(le.Uint32(p)))
		case Uint32:
			out[i] = float64(le.Uint32(p))
		case Single:
			out[i] = float64(math.Float32frombits(le.Uint32(p)))
		case Int64:
			out[i] = float64(int64(le.Uint64(p)))
		case Uint64:
			out[i] = float64(le.Uint64(p))
		default:
			out[i] = math.Float64frombits(le.Uint64(p))
		}
	}
	return out
}
