package dispatch

import "errors"

var (
	// ErrUnresolved is returned when no implementation is registered for
	// an operator and operand kinds.
	ErrUnresolved = errors.New("dispatch: no implementation registered")

	// ErrOperand is returned by implementations that cannot accept the
	// concrete operand values they were resolved for.
	ErrOperand = errors.New("dispatch: unsupported operand")
)
