package ops

import (
	"fmt"
	"math"
	"reflect"

	"github.com/born-ml/texpr/internal/category"
	"github.com/born-ml/texpr/internal/dispatch"
)

// numClass orders numeric kinds by promotion rank.
type numClass int

const (
	notNumeric numClass = iota
	signed
	unsigned
	floating
	cplx
)

func classify(v reflect.Value) numClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return floating
	case reflect.Complex64, reflect.Complex128:
		return cplx
	default:
		return notNumeric
	}
}

func asInt64(v reflect.Value) int64 {
	if classify(v) == unsigned {
		return int64(v.Uint()) //nolint:gosec // Wrapping matches Go conversion rules.
	}
	return v.Int()
}

func asFloat64(v reflect.Value) float64 {
	switch classify(v) {
	case signed:
		return float64(v.Int())
	case unsigned:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func asComplex128(v reflect.Value) complex128 {
	if classify(v) == cplx {
		return v.Complex()
	}
	return complex(asFloat64(v), 0)
}

func arith[N int64 | uint64 | float64 | complex128](op dispatch.Op, a, b N) (N, error) {
	switch op {
	case dispatch.Add:
		return a + b, nil
	case dispatch.Sub:
		return a - b, nil
	case dispatch.Mul:
		return a * b, nil
	case dispatch.Div:
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %v on scalars", dispatch.ErrOperand, op)
	}
}

// scalarBinary returns arithmetic on Go numbers. Operands of the same type
// produce that type; mixed operands promote to int64, uint64, float64 or
// complex128, whichever is the widest class involved. Mixing signed and
// unsigned integers yields int64.
func scalarBinary(op dispatch.Op) dispatch.BinaryFunc {
	return func(a, b any) (any, error) {
		x, y := reflect.ValueOf(a), reflect.ValueOf(b)
		cx, cy := classify(x), classify(y)
		if cx == notNumeric || cy == notNumeric {
			return nil, fmt.Errorf("%w: %T %v %T", dispatch.ErrOperand, a, op, b)
		}
		class := max(cx, cy)
		if class == unsigned && cx != cy {
			class = signed
		}
		if op == dispatch.Div && class <= unsigned && y.IsZero() {
			return nil, fmt.Errorf("%w: integer division by zero", dispatch.ErrOperand)
		}

		var (
			r   any
			err error
		)
		switch class {
		case signed:
			r, err = arith(op, asInt64(x), asInt64(y))
		case unsigned:
			r, err = arith(op, x.Uint(), y.Uint())
		case floating:
			r, err = arith(op, asFloat64(x), asFloat64(y))
		default:
			r, err = arith(op, asComplex128(x), asComplex128(y))
		}
		if err != nil {
			return nil, err
		}
		if x.Type() == y.Type() {
			return reflect.ValueOf(r).Convert(x.Type()).Interface(), nil
		}
		return r, nil
	}
}

// scalarNeg negates a Go number, keeping its type.
func scalarNeg(a any) (any, error) {
	x := reflect.ValueOf(a)
	if classify(x) == notNumeric {
		return nil, fmt.Errorf("%w: %v %T", dispatch.ErrOperand, dispatch.Neg, a)
	}
	return scalarBinary(dispatch.Sub)(reflect.Zero(x.Type()).Interface(), a)
}

// convertScalar converts a Go number to T. Real values convert to complex
// element types; complex values never convert to real ones. Integer element
// types accept only values they represent exactly.
func convertScalar[T any](v any) (T, error) {
	var zero T
	target := reflect.TypeFor[T]()
	x := reflect.ValueOf(v)
	cx := classify(x)
	if cx == notNumeric {
		return zero, fmt.Errorf("%w: cannot use %T as %v", dispatch.ErrOperand, v, target)
	}
	targetComplex := target.Kind() == reflect.Complex64 || target.Kind() == reflect.Complex128
	switch {
	case targetComplex:
		return reflect.ValueOf(asComplex128(x)).Convert(target).Interface().(T), nil
	case cx == cplx:
		return zero, fmt.Errorf("%w: cannot use complex %v as %v", dispatch.ErrOperand, v, target)
	case category.For[T]() == category.Integral && !representable(x, target):
		return zero, fmt.Errorf("%w: %v is not representable as %v", dispatch.ErrOperand, v, target)
	default:
		return x.Convert(target).Interface().(T), nil
	}
}

// representable reports whether the real number x converts to the integer
// type target without losing its value.
func representable(x reflect.Value, target reflect.Type) bool {
	out := reflect.New(target).Elem()
	targetSigned := classify(out) == signed
	switch classify(x) {
	case floating:
		f := x.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return false
		}
		if targetSigned {
			return f >= math.MinInt64 && f < math.MaxInt64 && !out.OverflowInt(int64(f))
		}
		return f >= 0 && f < math.MaxUint64 && !out.OverflowUint(uint64(f))
	case signed:
		i := x.Int()
		if targetSigned {
			return !out.OverflowInt(i)
		}
		return i >= 0 && !out.OverflowUint(uint64(i))
	default:
		u := x.Uint()
		if targetSigned {
			return u <= math.MaxInt64 && !out.OverflowInt(int64(u))
		}
		return !out.OverflowUint(u)
	}
}
