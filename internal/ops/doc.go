// Package ops registers the built-in operator overloads with
// dispatch.Default and exposes dynamically typed entry points over them.
//
// Registered overloads:
//
//	scalar  op scalar   arithmetic on Go numbers
//	tensor  op tensor   lazy element-wise (or matmul) expression
//	tensor  op *        scalar lifted to a rank-0 constant
//	*       op tensor   scalar lifted to a rank-0 constant
//	cexpr   op *        deferred symbolic node
//	*       op cexpr    deferred symbolic node
//	tensor  op cexpr    deferred symbolic node
//	cexpr   op tensor   deferred symbolic node
//
// Importing the package for its side effect is enough to make cexpr
// formulas evaluate:
//
//	import _ "github.com/born-ml/texpr/internal/ops"
package ops
