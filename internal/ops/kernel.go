package ops

import (
	"fmt"

	"github.com/born-ml/texpr/internal/dispatch"
	"github.com/born-ml/texpr/internal/eval"
	"github.com/born-ml/texpr/internal/lazy"
	"github.com/born-ml/texpr/internal/tensor"
)

// kernel holds the tensor operations instantiated for one element type.
type kernel struct {
	binary  func(op dispatch.Op, a, b any) (any, error)
	neg     func(a any) (any, error)
	permute func(a any, axes []int) (any, error)
	sum     func(a any) (any, error)
	eval    func(a any, dense bool, opts []eval.Option) (any, error)
}

var kernels = map[tensor.DataType]kernel{
	tensor.Float32:    kernelFor[float32](),
	tensor.Float64:    kernelFor[float64](),
	tensor.Int32:      kernelFor[int32](),
	tensor.Int64:      kernelFor[int64](),
	tensor.Uint8:      kernelFor[uint8](),
	tensor.Int:        kernelFor[int](),
	tensor.Int8:       kernelFor[int8](),
	tensor.Int16:      kernelFor[int16](),
	tensor.Uint16:     kernelFor[uint16](),
	tensor.Uint32:     kernelFor[uint32](),
	tensor.Uint64:     kernelFor[uint64](),
	tensor.Complex64:  kernelFor[complex64](),
	tensor.Complex128: kernelFor[complex128](),
}

// elemType returns the element type of a tensor expression.
//
//nolint:gocyclo,cyclop // One case per supported element type.
func elemType(v any) (tensor.DataType, bool) {
	switch v.(type) {
	case tensor.Expr[float32]:
		return tensor.Float32, true
	case tensor.Expr[float64]:
		return tensor.Float64, true
	case tensor.Expr[int32]:
		return tensor.Int32, true
	case tensor.Expr[int64]:
		return tensor.Int64, true
	case tensor.Expr[uint8]:
		return tensor.Uint8, true
	case tensor.Expr[int]:
		return tensor.Int, true
	case tensor.Expr[int8]:
		return tensor.Int8, true
	case tensor.Expr[int16]:
		return tensor.Int16, true
	case tensor.Expr[uint16]:
		return tensor.Uint16, true
	case tensor.Expr[uint32]:
		return tensor.Uint32, true
	case tensor.Expr[uint64]:
		return tensor.Uint64, true
	case tensor.Expr[complex64]:
		return tensor.Complex64, true
	case tensor.Expr[complex128]:
		return tensor.Complex128, true
	default:
		return 0, false
	}
}

func kernelOf(v any) (kernel, error) {
	dt, ok := elemType(v)
	if !ok {
		return kernel{}, fmt.Errorf("%w: %T is not a tensor expression", dispatch.ErrOperand, v)
	}
	return kernels[dt], nil
}

func kernelFor[T tensor.DType]() kernel {
	return kernel{
		binary:  binaryOf[T],
		neg:     negOf[T],
		permute: permuteOf[T],
		sum:     sumOf[T],
		eval:    evalOf[T],
	}
}

// operand returns v as an expression over T, lifting numbers to rank-0
// constants.
func operand[T tensor.DType](v any) (tensor.Expr[T], error) {
	if e, ok := v.(tensor.Expr[T]); ok {
		return e, nil
	}
	if dt, ok := elemType(v); ok {
		return nil, fmt.Errorf("%w: element type %v, want %v", dispatch.ErrOperand, dt, tensor.DataTypeOf[T]())
	}
	s, err := convertScalar[T](v)
	if err != nil {
		return nil, err
	}
	return lazy.Scalar(s), nil
}

func binaryOf[T tensor.DType](op dispatch.Op, a, b any) (any, error) {
	x, err := operand[T](a)
	if err != nil {
		return nil, err
	}
	y, err := operand[T](b)
	if err != nil {
		return nil, err
	}
	switch op {
	case dispatch.Add:
		return lazy.Add(x, y), nil
	case dispatch.Sub:
		return lazy.Sub(x, y), nil
	case dispatch.Mul:
		return lazy.Mul(x, y), nil
	case dispatch.Div:
		return lazy.Div(x, y), nil
	case dispatch.MatMul:
		if x.Shape().Rank() == 0 || y.Shape().Rank() == 0 {
			return nil, fmt.Errorf("%w: matmul with a scalar operand", dispatch.ErrOperand)
		}
		return lazy.MatMul(x, y), nil
	default:
		return nil, fmt.Errorf("%w: %v on tensors", dispatch.ErrOperand, op)
	}
}

func negOf[T tensor.DType](a any) (any, error) {
	x, err := operand[T](a)
	if err != nil {
		return nil, err
	}
	return lazy.Neg(x), nil
}

func permuteOf[T tensor.DType](a any, axes []int) (any, error) {
	x, err := operand[T](a)
	if err != nil {
		return nil, err
	}
	return lazy.Permute(x, axes...), nil
}

func sumOf[T tensor.DType](a any) (any, error) {
	x, err := operand[T](a)
	if err != nil {
		return nil, err
	}
	return lazy.Sum(x), nil
}

func evalOf[T tensor.DType](a any, dense bool, opts []eval.Option) (any, error) {
	x, err := operand[T](a)
	if err != nil {
		return nil, err
	}
	return eval.Eval(x, dense, opts...), nil
}
