package dispatch

import "github.com/born-ml/texpr/internal/category"

// Kind names a class of operands for dispatch.
type Kind string

// Any matches every kind.
const Any Kind = "*"

// Kinds derived from category tags.
var (
	Integral  = Kind(category.Integral.String())
	Floating  = Kind(category.FloatingPoint.String())
	Container = Kind(category.StdContainer.String())
	Tuple     = Kind(category.TupleLike.String())
	Other     = Kind(category.Other.String())
)

// KindOf classifies v for dispatch.
func KindOf(v any) Kind {
	if o, ok := v.(category.Kinded); ok {
		return Kind(o.ObjectKind())
	}
	return Kind(category.Of(v).String())
}
