// Package lazy provides zero-storage tensor descriptors.
//
// Every descriptor answers "what is the element at this index or subscript"
// by computing it from its inputs on demand. Nothing is materialized until
// the descriptor is passed to eval. Descriptors are read-only and safe for
// concurrent reads as long as their inputs are not mutated.
//
// Inputs are held by reference: a descriptor built over a *tensor.Tensor
// observes later writes to that tensor. Use Own to capture a private copy.
//
// Precondition violations (operand shape mismatch, repeated permutation
// axes, incompatible matrix dimensions) panic.
package lazy

import "github.com/born-ml/texpr/internal/tensor"

// object gives descriptors the dispatch kind of a tensor.
type object struct{}

// ObjectKind identifies lazy descriptors as tensors for operator dispatch.
func (object) ObjectKind() string { return tensor.ObjectKind }

// Own returns an expression that no longer aliases caller-owned storage:
// concrete tensors are deep-copied, other expressions are returned as is.
func Own[T tensor.DType](e tensor.Expr[T]) tensor.Expr[T] {
	if t, ok := e.(*tensor.Tensor[T]); ok {
		return t.Clone()
	}
	return e
}

// meet returns the protocols supported by every input, falling back to
// subscript reads when they share none.
func meet[T tensor.DType](inputs ...tensor.Expr[T]) tensor.Access {
	access := tensor.ByBoth
	for _, in := range inputs {
		if in.Shape().Rank() == 0 {
			continue // scalars are read by index 0 regardless
		}
		access &= in.Access()
	}
	if access == 0 {
		return tensor.BySubscript
	}
	return access
}
