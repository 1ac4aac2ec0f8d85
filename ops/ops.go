// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops applies operators to dynamically typed operands.
//
// Operands may be Go numbers, tensor expressions or symbolic nodes from
// cexpr. The implementation is chosen by operator and operand kinds from a
// registry; Register adds overloads for new kinds without touching the
// built-in ones. When exactly one operand is a tensor, a number on the
// other side is lifted to a rank-0 constant of the tensor's element type.
// Integer element types reject numbers they cannot hold exactly, such as
// 2.5 or 256 for a uint8 tensor, with ErrOperand.
package ops

import (
	"github.com/born-ml/texpr/internal/category"
	"github.com/born-ml/texpr/internal/dispatch"
	"github.com/born-ml/texpr/internal/eval"
	"github.com/born-ml/texpr/internal/ops"
)

// Kind names a class of operands.
type Kind = dispatch.Kind

// Built-in kinds.
var (
	Any       = dispatch.Any
	Integral  = dispatch.Integral
	Floating  = dispatch.Floating
	Container = dispatch.Container
	Tuple     = dispatch.Tuple
	Other     = dispatch.Other
	Tensor    = ops.Tensor
	CExpr     = ops.CExpr
)

// Op identifies an operator.
type Op = dispatch.Op

// BinaryFunc implements a binary operator.
type BinaryFunc = dispatch.BinaryFunc

// UnaryFunc implements a unary operator.
type UnaryFunc = dispatch.UnaryFunc

// Errors.
var (
	ErrUnresolved = dispatch.ErrUnresolved
	ErrOperand    = dispatch.ErrOperand
)

// KindOf classifies v.
func KindOf(v any) Kind { return dispatch.KindOf(v) }

// ContainerOf names the standard container shape of a Container-kind value:
// "array" ([N]T), "slice", "deque" (*list.List) or "array-pointer" (*[N]T).
// Other values yield "none".
func ContainerOf(v any) string { return category.ContainerOf(v).String() }

// Register adds an overload of op for (left, right). Either kind may be Any.
// Exact registrations win over one-sided wildcards, and left-exact
// registrations over right-exact ones.
func Register(op Op, left, right Kind, fn BinaryFunc) {
	dispatch.Default.Register(op, left, right, fn)
}

// RegisterUnary adds an overload of a unary op for kind.
func RegisterUnary(op Op, kind Kind, fn UnaryFunc) {
	dispatch.Default.RegisterUnary(op, kind, fn)
}

// Unregister removes the overload of op registered for exactly (left, right).
func Unregister(op Op, left, right Kind) bool {
	return dispatch.Default.Unregister(op, left, right)
}

// UnregisterUnary removes the unary overload of op registered for kind.
func UnregisterUnary(op Op, kind Kind) bool {
	return dispatch.Default.UnregisterUnary(op, kind)
}

// Add returns a + b.
func Add(a, b any) (any, error) { return ops.Add(a, b) }

// Sub returns a - b.
func Sub(a, b any) (any, error) { return ops.Sub(a, b) }

// Mul returns the element-wise product a * b.
func Mul(a, b any) (any, error) { return ops.Mul(a, b) }

// Div returns a / b.
func Div(a, b any) (any, error) { return ops.Div(a, b) }

// MatMul returns the matrix product of a and b.
func MatMul(a, b any) (any, error) { return ops.MatMul(a, b) }

// Neg returns -a.
func Neg(a any) (any, error) { return ops.Neg(a) }

// Permute returns a permuted view of a tensor expression.
func Permute(a any, axes ...int) (any, error) { return ops.Permute(a, axes...) }

// Sum returns the sum of a tensor expression's elements.
func Sum(a any) (any, error) { return ops.Sum(a) }

// Eval materializes a tensor expression.
func Eval(a any, dense bool, opts ...eval.Option) (any, error) { return ops.Eval(a, dense, opts...) }
