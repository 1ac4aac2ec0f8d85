package dispatch

import (
	"fmt"
	"slices"
	"sync"
)

// BinaryFunc implements a binary operator.
type BinaryFunc func(left, right any) (any, error)

// UnaryFunc implements a unary operator.
type UnaryFunc func(operand any) (any, error)

type binaryKey struct {
	op          Op
	left, right Kind
}

type unaryKey struct {
	op   Op
	kind Kind
}

// Registry maps (operator, operand kinds) to implementations.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	binary map[binaryKey]BinaryFunc
	unary  map[unaryKey]UnaryFunc
}

// Default is the process-wide registry populated by the ops package.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		binary: make(map[binaryKey]BinaryFunc),
		unary:  make(map[unaryKey]UnaryFunc),
	}
}

// Register adds or replaces the implementation of op for (left, right).
// Either kind may be Any.
func (r *Registry) Register(op Op, left, right Kind, fn BinaryFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binary[binaryKey{op, left, right}] = fn
}

// RegisterUnary adds or replaces the implementation of op for kind.
func (r *Registry) RegisterUnary(op Op, kind Kind, fn UnaryFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unary[unaryKey{op, kind}] = fn
}

// Unregister removes the implementation of op registered for exactly
// (left, right) and reports whether one existed.
func (r *Registry) Unregister(op Op, left, right Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := binaryKey{op, left, right}
	_, ok := r.binary[k]
	delete(r.binary, k)
	return ok
}

// UnregisterUnary removes the implementation of op registered for exactly
// kind and reports whether one existed.
func (r *Registry) UnregisterUnary(op Op, kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := unaryKey{op, kind}
	_, ok := r.unary[k]
	delete(r.unary, k)
	return ok
}

// Resolve returns the most specific implementation of op for the given
// operand kinds.
func (r *Registry) Resolve(op Op, left, right Kind) (BinaryFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, k := range [...]binaryKey{
		{op, left, right},
		{op, left, Any},
		{op, Any, right},
		{op, Any, Any},
	} {
		if fn, ok := r.binary[k]; ok {
			return fn, true
		}
	}
	return nil, false
}

// ResolveUnary returns the implementation of op for kind, falling back to
// an Any registration.
func (r *Registry) ResolveUnary(op Op, kind Kind) (UnaryFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.unary[unaryKey{op, kind}]; ok {
		return fn, true
	}
	fn, ok := r.unary[unaryKey{op, Any}]
	return fn, ok
}

// Apply resolves op for the kinds of left and right and calls it.
func (r *Registry) Apply(op Op, left, right any) (any, error) {
	lk, rk := KindOf(left), KindOf(right)
	fn, ok := r.Resolve(op, lk, rk)
	if !ok {
		return nil, fmt.Errorf("%w: %s %v %s", ErrUnresolved, lk, op, rk)
	}
	return fn(left, right)
}

// ApplyUnary resolves op for the kind of operand and calls it.
func (r *Registry) ApplyUnary(op Op, operand any) (any, error) {
	k := KindOf(operand)
	fn, ok := r.ResolveUnary(op, k)
	if !ok {
		return nil, fmt.Errorf("%w: %v %s", ErrUnresolved, op, k)
	}
	return fn(operand)
}

// Signatures lists the registered binary signatures of op as
// "left op right", sorted.
func (r *Registry) Signatures(op Op) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for k := range r.binary {
		if k.op == op {
			out = append(out, fmt.Sprintf("%s %v %s", k.left, op, k.right))
		}
	}
	slices.Sort(out)
	return out
}
