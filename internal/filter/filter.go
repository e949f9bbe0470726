package filter

import (
	"errors"
	"fmt"
)

// ID identifies a filter in a container header.
type ID uint16

// Filter identifiers.
const (
	IDDeflate    ID = 1
	IDShuffle    ID = 2
	IDFletcher32 ID = 3
	IDLZ4        ID = 32004
	IDZstd       ID = 32015
)

var (
	// ErrUnknownFilter is returned for a filter ID with no implementation.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrChecksum is returned when a checksum filter detects corruption.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrLimit is returned when decoding would produce more bytes than the
	// caller allowed.
	ErrLimit = errors.New("decoded size exceeds limit")
)

// Filter is the interface implemented by all filters.
type Filter interface {
	// ID returns the filter identifier.
	ID() ID

	// Encode transforms raw data to its encoded form.
	Encode(input []byte) ([]byte, error)

	// Decode transforms encoded data back to raw form. It fails with
	// ErrLimit rather than produce more than limit bytes.
	Decode(input []byte, limit int) ([]byte, error)
}

// Info describes one filter of a pipeline as stored in a container header.
type Info struct {
	ID       ID       `cbor:"id" json:"id" yaml:"id"`
	Params   []uint32 `cbor:"params,omitempty" json:"params,omitempty" yaml:"params,omitempty"`
	Optional bool     `cbor:"optional,omitempty" json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Registry maps filter IDs to filter constructors.
var Registry = map[ID]func([]uint32) Filter{
	IDDeflate:    func(p []uint32) Filter { return NewDeflate(p) },
	IDShuffle:    func(p []uint32) Filter { return NewShuffle(p) },
	IDFletcher32: func(p []uint32) Filter { return NewFletcher32(p) },
	IDLZ4:        func(p []uint32) Filter { return NewLZ4(p) },
	IDZstd:       func(p []uint32) Filter { return NewZstd(p) },
}

var names = map[ID]string{
	IDDeflate:    "deflate",
	IDShuffle:    "shuffle",
	IDFletcher32: "fletcher32",
	IDLZ4:        "lz4",
	IDZstd:       "zstd",
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("filter(%d)", uint16(id))
}

// New creates a filter from an Info. An optional filter with no
// implementation yields a nil Filter and no error.
func New(info Info) (Filter, error) {
	constructor, ok := Registry[info.ID]
	if !ok {
		if info.Optional {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: ID %d", ErrUnknownFilter, info.ID)
	}
	return constructor(info.Params), nil
}
