// Package cexpr builds symbolic formulas from numbered placeholders and
// replays them with concrete arguments.
//
// A formula is a tree of Nodes. Building it performs no arithmetic:
//
//	f := cexpr.NewBinary(dispatch.Sub, cexpr.P0, cexpr.Const(1)) // _0 - 1
//	v, err := f.Invoke(10)                                     // 9
//
// Invoking substitutes placeholder i with the i-th argument, evaluates
// children with the same arguments, and applies each operator through
// dispatch.Default. Operators registered there for tensors make a formula
// over tensor arguments produce lazy tensor expressions.
package cexpr

import (
	"fmt"
	"strings"

	"github.com/born-ml/texpr/internal/category"
	"github.com/born-ml/texpr/internal/dispatch"
)

// ObjectKind is the dispatch kind of every Node.
const ObjectKind = "cexpr"

// Node is a symbolic expression.
type Node interface {
	// Invoke evaluates the expression against args.
	Invoke(args ...any) (any, error)
	String() string
	ObjectKind() string
}

// Func is a function that SmartInvoke can defer.
type Func func(args ...any) (any, error)

type node struct{}

func (node) ObjectKind() string { return ObjectKind }

// Placeholder stands for the argument at Index.
type Placeholder struct {
	node
	Index int
}

// Predefined placeholders.
var (
	P0 = Arg(0)
	P1 = Arg(1)
	P2 = Arg(2)
	P3 = Arg(3)
)

// Arg returns the placeholder for argument i. Panics if i is negative.
func Arg(i int) Placeholder {
	if i < 0 {
		panic(fmt.Sprintf("cexpr: negative placeholder index %d", i))
	}
	return Placeholder{Index: i}
}

// Invoke returns args[p.Index], or an error wrapping ErrOutOfRange.
func (p Placeholder) Invoke(args ...any) (any, error) {
	if p.Index >= len(args) {
		return nil, fmt.Errorf("%w: placeholder %s with %d arguments", ErrOutOfRange, p, len(args))
	}
	return args[p.Index], nil
}

func (p Placeholder) String() string { return fmt.Sprintf("_%d", p.Index) }

// Constant ignores the arguments and returns Value.
type Constant struct {
	node
	Value any
}

// Const wraps v as a Constant.
func Const(v any) Constant {
	return Constant{Value: v}
}

// Invoke returns the constant value.
func (c Constant) Invoke(...any) (any, error) { return c.Value, nil }

func (c Constant) String() string {
	switch v := c.Value.(type) {
	case fmt.Stringer:
		return v.String()
	case category.Kinded:
		return "<" + v.ObjectKind() + ">"
	default:
		return fmt.Sprint(v)
	}
}

// Lift returns v unchanged if it is a Node and wraps it as a Constant
// otherwise.
func Lift(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	return Const(v)
}

// IsExpr reports whether v is a Node.
func IsExpr(v any) bool {
	_, ok := v.(Node)
	return ok
}

// Unary applies Op to its operand.
type Unary struct {
	node
	Op dispatch.Op
	X  Node
}

// NewUnary returns op applied to x. Plain values are lifted.
func NewUnary(op dispatch.Op, x any) Unary {
	return Unary{Op: op, X: Lift(x)}
}

// Invoke evaluates the operand and applies Op.
func (u Unary) Invoke(args ...any) (any, error) {
	x, err := u.X.Invoke(args...)
	if err != nil {
		return nil, err
	}
	return dispatch.Default.ApplyUnary(u.Op, x)
}

func (u Unary) String() string { return fmt.Sprintf("%v(%s)", u.Op, u.X) }

// Binary applies Op to its two operands.
type Binary struct {
	node
	Op          dispatch.Op
	Left, Right Node
}

// NewBinary returns left op right. Plain values are lifted.
func NewBinary(op dispatch.Op, left, right any) Binary {
	return Binary{Op: op, Left: Lift(left), Right: Lift(right)}
}

// Invoke evaluates both operands and applies Op.
func (b Binary) Invoke(args ...any) (any, error) {
	l, err := b.Left.Invoke(args...)
	if err != nil {
		return nil, err
	}
	r, err := b.Right.Invoke(args...)
	if err != nil {
		return nil, err
	}
	return dispatch.Default.Apply(b.Op, l, r)
}

func (b Binary) String() string {
	if b.Op == dispatch.MatMul {
		return fmt.Sprintf("matmul(%s, %s)", b.Left, b.Right)
	}
	return fmt.Sprintf("(%s %v %s)", b.Left, b.Op, b.Right)
}

// Wrapper is a deferred call of Fn whose arguments are expressions.
type Wrapper struct {
	node
	Name string
	Fn   Func
	Args []Node
}

// Invoke evaluates every captured argument against args and calls Fn
// with the results.
func (w Wrapper) Invoke(args ...any) (any, error) {
	resolved := make([]any, len(w.Args))
	for i, a := range w.Args {
		v, err := a.Invoke(args...)
		if err != nil {
			return nil, err
		}
		resolved[i] = v
	}
	v, err := w.Fn(resolved...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Name, err)
	}
	return v, nil
}

func (w Wrapper) String() string {
	parts := make([]string, len(w.Args))
	for i, a := range w.Args {
		parts[i] = a.String()
	}
	return w.Name + "(" + strings.Join(parts, ", ") + ")"
}

// SmartInvoke calls fn(args...) immediately when no argument is a Node.
// Otherwise it returns a Wrapper that makes the call when invoked.
func SmartInvoke(fn Func, args ...any) (any, error) {
	return SmartInvokeNamed("call", fn, args...)
}

// SmartInvokeNamed is SmartInvoke with a name used when printing and in
// errors of the deferred call.
func SmartInvokeNamed(name string, fn Func, args ...any) (any, error) {
	deferred := false
	for _, a := range args {
		if IsExpr(a) {
			deferred = true
			break
		}
	}
	if !deferred {
		return fn(args...)
	}
	lifted := make([]Node, len(args))
	for i, a := range args {
		lifted[i] = Lift(a)
	}
	return Wrapper{Name: name, Fn: fn, Args: lifted}, nil
}
