package tensor

import (
	"fmt"
	"strings"
)

// Sprint renders an expression's values as nested brackets, one row per
// line for rank >= 2. Rank-0 expressions render as the bare value.
//
// Example:
//
//	[[1 0]
//	 [0 1]]
func Sprint[T DType](e Expr[T]) string {
	s := e.Shape()
	if s.Rank() == 0 {
		return fmt.Sprint(ReadIndex(e, 0))
	}
	dims := s.Dims()
	var sb strings.Builder
	sub := make([]int, len(dims))
	writeLevel(&sb, e, dims, sub, 0)
	return sb.String()
}

func writeLevel[T DType](sb *strings.Builder, e Expr[T], dims, sub []int, axis int) {
	sb.WriteByte('[')
	for i := 0; i < dims[axis]; i++ {
		sub[axis] = i
		if i > 0 {
			if axis == len(dims)-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('\n')
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		if axis == len(dims)-1 {
			fmt.Fprint(sb, ReadSubscript(e, sub))
			continue
		}
		writeLevel(sb, e, dims, sub, axis+1)
	}
	sb.WriteByte(']')
}
