package export

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: data may be corrupted")
	ErrCorrupt            = errors.New("corrupt container")
	ErrClassMismatch      = errors.New("element class mismatch")
)
