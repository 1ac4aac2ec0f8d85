package ops

import (
	"github.com/born-ml/texpr/internal/cexpr"
	"github.com/born-ml/texpr/internal/dispatch"
	"github.com/born-ml/texpr/internal/tensor"
)

// Operand kinds of the built-in overloads.
const (
	Tensor = dispatch.Kind(tensor.ObjectKind)
	CExpr  = dispatch.Kind(cexpr.ObjectKind)
)

var (
	binaryOps = []dispatch.Op{dispatch.Add, dispatch.Sub, dispatch.Mul, dispatch.Div, dispatch.MatMul}
	scalars   = []dispatch.Kind{dispatch.Integral, dispatch.Floating, dispatch.Other}
)

func init() {
	Register(dispatch.Default)
}

// Register installs the built-in overloads into r.
func Register(r *dispatch.Registry) {
	for _, op := range binaryOps {
		if op != dispatch.MatMul {
			for _, l := range scalars {
				for _, k := range scalars {
					r.Register(op, l, k, scalarBinary(op))
				}
			}
		}

		r.Register(op, Tensor, Tensor, tensorLeft(op))
		r.Register(op, Tensor, dispatch.Any, tensorLeft(op))
		r.Register(op, dispatch.Any, Tensor, tensorRight(op))

		r.Register(op, CExpr, dispatch.Any, symbolic(op))
		r.Register(op, dispatch.Any, CExpr, symbolic(op))
		r.Register(op, Tensor, CExpr, symbolic(op))
		r.Register(op, CExpr, Tensor, symbolic(op))
	}

	for _, k := range scalars {
		r.RegisterUnary(dispatch.Neg, k, scalarNeg)
	}
	r.RegisterUnary(dispatch.Neg, Tensor, func(a any) (any, error) {
		k, err := kernelOf(a)
		if err != nil {
			return nil, err
		}
		return k.neg(a)
	})
	r.RegisterUnary(dispatch.Neg, CExpr, func(a any) (any, error) {
		return cexpr.NewUnary(dispatch.Neg, a), nil
	})
}

// tensorLeft instantiates op for the element type of the left operand.
func tensorLeft(op dispatch.Op) dispatch.BinaryFunc {
	return func(a, b any) (any, error) {
		k, err := kernelOf(a)
		if err != nil {
			return nil, err
		}
		return k.binary(op, a, b)
	}
}

// tensorRight instantiates op for the element type of the right operand.
func tensorRight(op dispatch.Op) dispatch.BinaryFunc {
	return func(a, b any) (any, error) {
		k, err := kernelOf(b)
		if err != nil {
			return nil, err
		}
		return k.binary(op, a, b)
	}
}

func symbolic(op dispatch.Op) dispatch.BinaryFunc {
	return func(a, b any) (any, error) {
		return cexpr.NewBinary(op, a, b), nil
	}
}
