// Package category classifies arbitrary Go values into the disjoint categories
// used to select operator behavior.
package category

import (
	"container/list"
	"reflect"
)

// Tag is the category of a value.
type Tag int

// Category tags. Every value maps to exactly one of them.
const (
	Other Tag = iota
	Object
	Integral
	FloatingPoint
	StdContainer
	TupleLike
)

// String returns a human-readable category name.
func (t Tag) String() string {
	switch t {
	case Object:
		return "object"
	case Integral:
		return "integral"
	case FloatingPoint:
		return "floating"
	case StdContainer:
		return "container"
	case TupleLike:
		return "tuple"
	default:
		return "other"
	}
}

// Container distinguishes the standard container shapes grouped under StdContainer.
type Container int

// Container sub-tags.
const (
	NotContainer Container = iota
	Array                  // [N]T
	Slice                  // []T
	Deque                  // *list.List
	ArrayPointer           // *[N]T
)

// String returns a human-readable container name.
func (c Container) String() string {
	switch c {
	case Array:
		return "array"
	case Slice:
		return "slice"
	case Deque:
		return "deque"
	case ArrayPointer:
		return "array-pointer"
	default:
		return "none"
	}
}

// Kinded is implemented by library values that take part in operator
// dispatch (tensors, lazy descriptors, const-expressions). Such values are
// tagged Object, which wins over any structural match.
type Kinded interface {
	ObjectKind() string
}

// Tuple is implemented by tuple-like values.
type Tuple interface {
	Len() int
	Elem(i int) any
}

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair creates a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Len returns 2.
func (p Pair[A, B]) Len() int { return 2 }

// Elem returns the i-th element. Panics if i is not 0 or 1.
func (p Pair[A, B]) Elem(i int) any {
	switch i {
	case 0:
		return p.First
	case 1:
		return p.Second
	default:
		panic("pair index out of range")
	}
}

var (
	kindedType = reflect.TypeFor[Kinded]()
	tupleType  = reflect.TypeFor[Tuple]()
	dequeType  = reflect.TypeFor[*list.List]()
)

// Of returns the category of v. A nil interface is Other.
func Of(v any) Tag {
	if v == nil {
		return Other
	}
	if _, ok := v.(Kinded); ok {
		return Object
	}
	return ofType(reflect.TypeOf(v))
}

// For returns the category of the static type T.
func For[T any]() Tag {
	return ofType(reflect.TypeFor[T]())
}

// ContainerOf returns the container sub-tag of v, or NotContainer.
func ContainerOf(v any) Container {
	if v == nil {
		return NotContainer
	}
	if _, ok := v.(Kinded); ok {
		return NotContainer
	}
	return containerOf(reflect.TypeOf(v))
}

func ofType(t reflect.Type) Tag {
	if t.Implements(kindedType) {
		return Object
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integral
	case reflect.Float32, reflect.Float64:
		return FloatingPoint
	}
	if containerOf(t) != NotContainer {
		return StdContainer
	}
	if t.Implements(tupleType) {
		return TupleLike
	}
	return Other
}

func containerOf(t reflect.Type) Container {
	switch {
	case t == dequeType:
		return Deque
	case t.Kind() == reflect.Array:
		return Array
	case t.Kind() == reflect.Slice:
		return Slice
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Array:
		return ArrayPointer
	default:
		return NotContainer
	}
}
