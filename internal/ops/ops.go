package ops

import (
	"github.com/born-ml/texpr/internal/cexpr"
	"github.com/born-ml/texpr/internal/dispatch"
	"github.com/born-ml/texpr/internal/eval"
)

// Add returns a + b as resolved by dispatch.Default.
func Add(a, b any) (any, error) { return dispatch.Default.Apply(dispatch.Add, a, b) }

// Sub returns a - b as resolved by dispatch.Default.
func Sub(a, b any) (any, error) { return dispatch.Default.Apply(dispatch.Sub, a, b) }

// Mul returns the element-wise product a * b as resolved by dispatch.Default.
func Mul(a, b any) (any, error) { return dispatch.Default.Apply(dispatch.Mul, a, b) }

// Div returns a / b as resolved by dispatch.Default.
func Div(a, b any) (any, error) { return dispatch.Default.Apply(dispatch.Div, a, b) }

// MatMul returns the matrix product of a and b as resolved by dispatch.Default.
func MatMul(a, b any) (any, error) { return dispatch.Default.Apply(dispatch.MatMul, a, b) }

// Neg returns -a as resolved by dispatch.Default.
func Neg(a any) (any, error) { return dispatch.Default.ApplyUnary(dispatch.Neg, a) }

// Permute returns a permuted view of a tensor expression. A symbolic
// operand defers the call.
func Permute(a any, axes ...int) (any, error) {
	axes = append([]int(nil), axes...)
	return cexpr.SmartInvokeNamed("permute", func(args ...any) (any, error) {
		k, err := kernelOf(args[0])
		if err != nil {
			return nil, err
		}
		return k.permute(args[0], axes)
	}, a)
}

// Sum returns the sum of all elements of a tensor expression. A symbolic
// operand defers the call.
func Sum(a any) (any, error) {
	return cexpr.SmartInvokeNamed("sum", func(args ...any) (any, error) {
		k, err := kernelOf(args[0])
		if err != nil {
			return nil, err
		}
		return k.sum(args[0])
	}, a)
}

// Eval materializes a tensor expression. A symbolic operand defers the
// call.
func Eval(a any, dense bool, opts ...eval.Option) (any, error) {
	return cexpr.SmartInvokeNamed("eval", func(args ...any) (any, error) {
		k, err := kernelOf(args[0])
		if err != nil {
			return nil, err
		}
		return k.eval(args[0], dense, opts)
	}, a)
}
