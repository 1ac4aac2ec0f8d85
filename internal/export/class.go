package export

import (
	"fmt"

	"github.com/born-ml/texpr/internal/tensor"
)

// Class is the element classification of an Array.
type Class int

// Element classes.
const (
	Logical Class = iota
	Double
	Single
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var classNames = [...]string{
	Logical: "logical",
	Double:  "double",
	Single:  "single",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// ParseClass returns the Class named s.
func ParseClass(s string) (Class, error) {
	for c, name := range classNames {
		if name == s {
			return Class(c), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown class %q", ErrCorrupt, s)
}

// Size returns the byte size of one real component.
func (c Class) Size() int {
	switch c {
	case Logical, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Single, Int32, Uint32:
		return 4
	default:
		return 8
	}
}

// ClassOf returns the class of a tensor element type and whether it is
// complex. Int maps to Int64.
func ClassOf(dt tensor.DataType) (Class, bool) {
	switch dt {
	case tensor.Float32:
		return Single, false
	case tensor.Float64:
		return Double, false
	case tensor.Int8:
		return Int8, false
	case tensor.Int16:
		return Int16, false
	case tensor.Int32:
		return Int32, false
	case tensor.Int64, tensor.Int:
		return Int64, false
	case tensor.Uint8:
		return Uint8, false
	case tensor.Uint16:
		return Uint16, false
	case tensor.Uint32:
		return Uint32, false
	case tensor.Uint64:
		return Uint64, false
	case tensor.Complex64:
		return Single, true
	case tensor.Complex128:
		return Double, true
	default:
		panic(fmt.Sprintf("export: unsupported data type %v", dt))
	}
}
