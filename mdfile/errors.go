package mdfile

import "errors"

// Common errors
var (
	ErrNotContainer  = errors.New("not an array container")
	ErrCorrupt       = errors.New("corrupt container")
	ErrRankMismatch  = errors.New("rank mismatch")
	ErrDTypeMismatch = errors.New("element type mismatch")
	ErrChecksum      = errors.New("checksum mismatch")
	ErrUnsupported   = errors.New("unsupported feature")
)
