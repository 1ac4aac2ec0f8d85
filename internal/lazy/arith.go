package lazy

import "github.com/born-ml/texpr/internal/tensor"

// Add returns a + b element-wise.
func Add[T tensor.DType](a, b tensor.Expr[T]) *Binary[T] {
	return NewBinary("add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b element-wise.
func Sub[T tensor.DType](a, b tensor.Expr[T]) *Binary[T] {
	return NewBinary("sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b element-wise (Hadamard product). Nonzero iteration of
// one operand is used only while the other holds finite values, since
// 0*Inf and 0*NaN are NaN.
func Mul[T tensor.DType](a, b tensor.Expr[T]) *Binary[T] {
	m := NewBinary("mul", a, b, func(x, y T) T { return x * y })
	m.zeroAbsorbing = true
	return m
}

// Div returns a / b element-wise.
func Div[T tensor.DType](a, b tensor.Expr[T]) *Binary[T] {
	return NewBinary("div", a, b, func(x, y T) T { return x / y })
}

// Neg returns -e element-wise.
func Neg[T tensor.DType](e tensor.Expr[T]) *Unary[T] {
	return NewUnary("neg", e, func(x T) T { return -x }, true)
}

// AddScalar returns e + s.
func AddScalar[T tensor.DType](e tensor.Expr[T], s T) *Unary[T] {
	return NewUnary("add-scalar", e, func(x T) T { return x + s }, s == 0)
}

// SubScalar returns e - s.
func SubScalar[T tensor.DType](e tensor.Expr[T], s T) *Unary[T] {
	return NewUnary("sub-scalar", e, func(x T) T { return x - s }, s == 0)
}

// ScalarSub returns s - e.
func ScalarSub[T tensor.DType](s T, e tensor.Expr[T]) *Unary[T] {
	return NewUnary("scalar-sub", e, func(x T) T { return s - x }, s == 0)
}

// MulScalar returns e * s.
func MulScalar[T tensor.DType](e tensor.Expr[T], s T) *Unary[T] {
	return NewUnary("mul-scalar", e, func(x T) T { return x * s }, finite(s))
}

// DivScalar returns e / s.
func DivScalar[T tensor.DType](e tensor.Expr[T], s T) *Unary[T] {
	return NewUnary("div-scalar", e, func(x T) T { return x / s }, s != 0 && finite(s))
}

// Abs returns |e| element-wise.
func Abs[T tensor.Real](e tensor.Expr[T]) *Unary[T] {
	return NewUnary("abs", e, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	}, true)
}

// finite reports whether v is neither NaN nor infinite: exactly for those
// values v-v is not zero.
func finite[T tensor.DType](v T) bool {
	w := v
	return v-w == 0
}

// integral reports whether T is an integer type.
func integral[T tensor.DType]() bool {
	return tensor.One[T]()/2 == 0
}

// allFinite reports whether every element of e is known to be finite
// without reading it element by element.
func allFinite[T tensor.DType](e tensor.Expr[T]) bool {
	if integral[T]() {
		return true
	}
	switch x := e.(type) {
	case *Constant[T]:
		return finite(x.value)
	case *Sequence[T], *Identity[T], *Grid[T]:
		return true
	case *tensor.Tensor[T]:
		seq, ok := x.NonZeros()
		if !ok {
			return false
		}
		for _, v := range seq {
			if !finite(v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
