// Package tensor provides shapes, storage providers, concrete tensors and the
// read protocols shared by every lazy tensor expression.
package tensor

import "reflect"

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Real is the subset of DType with a total order.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the floating-point subset of DType.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Int
	Int8
	Int16
	Uint16
	Uint32
	Uint64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64, Int, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// IsComplex reports whether the data type holds complex values.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the runtime DataType of T.
//
//nolint:gocyclo,cyclop // One case per supported element type.
func DataTypeOf[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}

// One returns the multiplicative identity of T.
func One[T DType]() T {
	return T(1)
}

// FromInt converts an int to T. Complex types receive a zero imaginary part.
func FromInt[T DType](i int) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = float64(i)
	case *float32:
		*p = float32(i)
	case *int:
		*p = i
	case *int64:
		*p = int64(i)
	case *complex128:
		*p = complex(float64(i), 0)
	default:
		rv := reflect.ValueOf(&v).Elem()
		switch rv.Kind() {
		case reflect.Complex64, reflect.Complex128:
			rv.SetComplex(complex(float64(i), 0))
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(i))
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			rv.SetUint(uint64(i)) //nolint:gosec // G115: caller passes in-range values.
		default:
			rv.SetInt(int64(i))
		}
	}
	return v
}
