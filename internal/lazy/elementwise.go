package lazy

import (
	"fmt"
	"iter"

	"github.com/born-ml/texpr/internal/tensor"
)

// Unary applies fn to every element of its input.
type Unary[T tensor.DType] struct {
	object
	name          string
	in            tensor.Expr[T]
	fn            func(T) T
	preservesZero bool
}

// NewUnary creates an element-wise unary descriptor. preservesZero declares
// fn(0) == 0, which lets nonzero iteration pass through.
func NewUnary[T tensor.DType](name string, in tensor.Expr[T], fn func(T) T, preservesZero bool) *Unary[T] {
	return &Unary[T]{name: name, in: in, fn: fn, preservesZero: preservesZero}
}

// Name returns the operator name.
func (u *Unary[T]) Name() string { return u.name }

// Shape returns the input's shape.
func (u *Unary[T]) Shape() tensor.Shape { return u.in.Shape() }

// Access mirrors the input.
func (u *Unary[T]) Access() tensor.Access { return meet(u.in) }

// At reads the element at sub.
func (u *Unary[T]) At(sub ...int) T { return tensor.ReadSubscript[T](u, sub) }

// AtIndex returns fn(in[i]).
func (u *Unary[T]) AtIndex(i int) T { return u.fn(tensor.ReadIndex(u.in, i)) }

// AtSubscript returns fn(in[sub]).
func (u *Unary[T]) AtSubscript(sub []int) T { return u.fn(tensor.ReadSubscript(u.in, sub)) }

// NonZeros forwards the input's nonzero iteration when fn preserves zero.
func (u *Unary[T]) NonZeros() (iter.Seq2[int, T], bool) {
	if !u.preservesZero {
		return nil, false
	}
	seq, ok := tensor.NonZerosOf(u.in)
	if !ok {
		return nil, false
	}
	return func(yield func(int, T) bool) {
		var zero T
		for i, v := range seq {
			r := u.fn(v)
			if r == zero {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}, true
}

// Binary combines two inputs element by element. Either input may be rank 0,
// in which case its single value is paired with every element of the other.
type Binary[T tensor.DType] struct {
	object
	name          string
	a, b          tensor.Expr[T]
	fn            func(T, T) T
	shape         tensor.Shape
	zeroAbsorbing bool
}

// NewBinary creates an element-wise binary descriptor.
// Panics if the shapes differ and neither operand is rank 0.
func NewBinary[T tensor.DType](name string, a, b tensor.Expr[T], fn func(T, T) T) *Binary[T] {
	return &Binary[T]{name: name, a: a, b: b, fn: fn, shape: broadcastShape(name, a.Shape(), b.Shape())}
}

func broadcastShape(name string, a, b tensor.Shape) tensor.Shape {
	switch {
	case a.Rank() == 0:
		return b
	case b.Rank() == 0:
		return a
	case a.Equal(b):
		return a
	default:
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", name, a, b))
	}
}

// Name returns the operator name.
func (e *Binary[T]) Name() string { return e.name }

// Shape returns the result shape.
func (e *Binary[T]) Shape() tensor.Shape { return e.shape }

// Access is the intersection of the operands' protocols.
func (e *Binary[T]) Access() tensor.Access { return meet(e.a, e.b) }

// At reads the element at sub.
func (e *Binary[T]) At(sub ...int) T { return tensor.ReadSubscript[T](e, sub) }

// AtIndex returns fn(a[i], b[i]).
func (e *Binary[T]) AtIndex(i int) T {
	return e.fn(readIndex(e.a, i), readIndex(e.b, i))
}

// AtSubscript returns fn(a[sub], b[sub]).
func (e *Binary[T]) AtSubscript(sub []int) T {
	return e.fn(readSubscript(e.a, sub), readSubscript(e.b, sub))
}

// NonZeros is available for products: where one operand is zero and the
// other finite, a*b is zero, so iterating the first operand's nonzeros is
// enough.
func (e *Binary[T]) NonZeros() (iter.Seq2[int, T], bool) {
	if !e.zeroAbsorbing {
		return nil, false
	}
	if seq, ok := nonZerosOfOperand(e.a); ok && allFinite(e.b) {
		return e.filter(seq), true
	}
	if seq, ok := nonZerosOfOperand(e.b); ok && allFinite(e.a) {
		return e.filter(seq), true
	}
	return nil, false
}

func nonZerosOfOperand[T tensor.DType](in tensor.Expr[T]) (iter.Seq2[int, T], bool) {
	if in.Shape().Rank() == 0 {
		return nil, false
	}
	return tensor.NonZerosOf(in)
}

func (e *Binary[T]) filter(seq iter.Seq2[int, T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var zero T
		for i := range seq {
			v := e.AtIndex(i)
			if v == zero {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

func readIndex[T tensor.DType](in tensor.Expr[T], i int) T {
	if in.Shape().Rank() == 0 {
		return tensor.ReadIndex(in, 0)
	}
	return tensor.ReadIndex(in, i)
}

func readSubscript[T tensor.DType](in tensor.Expr[T], sub []int) T {
	if in.Shape().Rank() == 0 {
		return tensor.ReadIndex(in, 0)
	}
	return tensor.ReadSubscript(in, sub)
}

// Map applies an n-ary function across inputs of equal shape.
type Map[T tensor.DType] struct {
	object
	name   string
	fn     func(args []T) T
	inputs []tensor.Expr[T]
	shape  tensor.Shape
}

// NewMap creates an n-ary element-wise descriptor. fn must not retain args.
// Panics if no inputs are given or the non-scalar shapes differ.
func NewMap[T tensor.DType](name string, fn func(args []T) T, inputs ...tensor.Expr[T]) *Map[T] {
	if len(inputs) == 0 {
		panic(name + ": at least one input required")
	}
	shape := inputs[0].Shape()
	for _, in := range inputs[1:] {
		shape = broadcastShape(name, shape, in.Shape())
	}
	return &Map[T]{name: name, fn: fn, inputs: append([]tensor.Expr[T](nil), inputs...), shape: shape}
}

// Shape returns the result shape.
func (m *Map[T]) Shape() tensor.Shape { return m.shape }

// Access is the intersection of the inputs' protocols.
func (m *Map[T]) Access() tensor.Access { return meet(m.inputs...) }

// At reads the element at sub.
func (m *Map[T]) At(sub ...int) T { return tensor.ReadSubscript[T](m, sub) }

// AtIndex applies fn to every input's element at i.
func (m *Map[T]) AtIndex(i int) T {
	args := make([]T, len(m.inputs))
	for k, in := range m.inputs {
		args[k] = readIndex(in, i)
	}
	return m.fn(args)
}

// AtSubscript applies fn to every input's element at sub.
func (m *Map[T]) AtSubscript(sub []int) T {
	args := make([]T, len(m.inputs))
	for k, in := range m.inputs {
		args[k] = readSubscript(in, sub)
	}
	return m.fn(args)
}
