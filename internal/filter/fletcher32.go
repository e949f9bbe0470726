package filter

import (
	"encoding/binary"
	"fmt"

	binpkg "github.com/robert-malhotra/go-multiarray/internal/binary"
)

// Fletcher32Filter implements the Fletcher-32 checksum filter.
// The checksum is stored little-endian as the last 4 bytes of the data.
type Fletcher32Filter struct{}

// NewFletcher32 creates a new Fletcher-32 filter.
func NewFletcher32(params []uint32) *Fletcher32Filter {
	return &Fletcher32Filter{}
}

func (f *Fletcher32Filter) ID() ID {
	return IDFletcher32
}

// Encode appends the checksum of input.
func (f *Fletcher32Filter) Encode(input []byte) ([]byte, error) {
	output := make([]byte, len(input), len(input)+4)
	copy(output, input)
	return binary.LittleEndian.AppendUint32(output, binpkg.Fletcher32(input)), nil
}

// Decode verifies the checksum and returns the data without it. The output
// is shorter than the input, so limit is not consulted.
func (f *Fletcher32Filter) Decode(input []byte, limit int) ([]byte, error) {
	if len(input) < 4 {
		return nil, fmt.Errorf("fletcher32: input too short for checksum")
	}

	data := input[:len(input)-4]
	stored := binary.LittleEndian.Uint32(input[len(input)-4:])

	if computed := binpkg.Fletcher32(data); stored != computed {
		return nil, fmt.Errorf("fletcher32: %w (stored=0x%08x, computed=0x%08x)",
			ErrChecksum, stored, computed)
	}

	return data, nil
}
