package mdarray

import "errors"

// Common errors
var (
	ErrShapeOverflow   = errors.New("element count overflows int")
	ErrLengthMismatch  = errors.New("data length does not match shape")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
)
