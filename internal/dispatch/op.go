package dispatch

import "fmt"

// Op identifies an overloadable operator.
type Op int

// Operators.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Neg
	MatMul
)

var opNames = [...]string{
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Neg:    "neg",
	MatMul: "matmul",
}

// String returns the operator symbol.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}
