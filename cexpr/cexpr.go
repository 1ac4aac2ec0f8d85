// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cexpr builds symbolic formulas from numbered placeholders.
//
// A formula is built once and invoked many times:
//
//	// f(a, b) = (A + a) - 2*(A - b)
//	left, _ := ops.Add(A, cexpr.P0)
//	inner, _ := ops.Sub(A, cexpr.P1)
//	right, _ := ops.Mul(2, inner)
//	f, _ := ops.Sub(left, right)
//
//	v, err := f.(cexpr.Node).Invoke(1, 2) // lazy tensor (A + 1) - 2*(A - 2)
//
// Operators inside a formula are applied through the ops registry when
// the formula is invoked. This package imports ops, so the built-in
// overloads are always available.
package cexpr

import (
	"github.com/born-ml/texpr/internal/cexpr"
	"github.com/born-ml/texpr/internal/dispatch"

	_ "github.com/born-ml/texpr/internal/ops" // built-in overloads
)

// Node is a symbolic expression.
type Node = cexpr.Node

// Node variants.
type (
	Placeholder = cexpr.Placeholder
	Constant    = cexpr.Constant
	Unary       = cexpr.Unary
	Binary      = cexpr.Binary
	Wrapper     = cexpr.Wrapper
)

// Func is a function SmartInvoke can defer.
type Func = cexpr.Func

// Op identifies an operator.
type Op = dispatch.Op

// Operators.
const (
	Add    Op = dispatch.Add
	Sub    Op = dispatch.Sub
	Mul    Op = dispatch.Mul
	Div    Op = dispatch.Div
	Neg    Op = dispatch.Neg
	MatMul Op = dispatch.MatMul
)

// Predefined placeholders for the first four arguments.
var (
	P0 = cexpr.P0
	P1 = cexpr.P1
	P2 = cexpr.P2
	P3 = cexpr.P3
)

// ErrOutOfRange is returned when a placeholder has no matching argument.
var ErrOutOfRange = cexpr.ErrOutOfRange

// Arg returns the placeholder for argument i.
func Arg(i int) Placeholder { return cexpr.Arg(i) }

// Const wraps v as a constant node.
func Const(v any) Constant { return cexpr.Const(v) }

// Lift returns nodes unchanged and wraps other values as constants.
func Lift(v any) Node { return cexpr.Lift(v) }

// IsExpr reports whether v is a Node.
func IsExpr(v any) bool { return cexpr.IsExpr(v) }

// NewUnary returns op applied to x.
func NewUnary(op Op, x any) Unary { return cexpr.NewUnary(op, x) }

// NewBinary returns left op right.
func NewBinary(op Op, left, right any) Binary { return cexpr.NewBinary(op, left, right) }

// SmartInvoke calls fn now when no argument is a Node and defers the call
// otherwise.
func SmartInvoke(fn Func, args ...any) (any, error) { return cexpr.SmartInvoke(fn, args...) }
