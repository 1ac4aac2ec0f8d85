// Package dispatch maps an operator and the kinds of its operands to an
// implementation.
//
// Operands are classified by KindOf: values implementing category.Kinded
// report their own kind (tensors report "tensor", symbolic expressions
// "cexpr"), everything else is named after its category tag ("integral",
// "floating", "container", "tuple", "other").
//
// Resolution picks the most specific registration:
//
//	(op, left, right) > (op, left, Any) > (op, Any, right) > (op, Any, Any)
//
// New operand kinds are supported by registering more entries; existing
// entries never need to change.
package dispatch
