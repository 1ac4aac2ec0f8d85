package cexpr

import "errors"

// ErrOutOfRange is returned when a placeholder refers to an argument
// position that was not supplied.
var ErrOutOfRange = errors.New("cexpr: placeholder out of range")
