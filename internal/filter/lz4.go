package filter

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// lz4HeaderSize is the size of the uncompressed-length prefix.
const lz4HeaderSize = 8

// LZ4 implements LZ4 block compression.
//
// The encoded form is the uncompressed length as a little-endian uint64
// followed by one LZ4 block. When the block would not be smaller than the
// input, the input is stored raw and the decoder recognizes it by length.
type LZ4 struct{}

// NewLZ4 creates a new LZ4 filter. It takes no parameters.
func NewLZ4(params []uint32) *LZ4 {
	return &LZ4{}
}

func (f *LZ4) ID() ID {
	return IDLZ4
}

func (f *LZ4) Encode(input []byte) ([]byte, error) {
	output := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(input)))
	binary.LittleEndian.PutUint64(output, uint64(len(input)))
	if len(input) == 0 {
		return output[:lz4HeaderSize], nil
	}

	written, err := lz4.CompressBlock(input, output[lz4HeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 for incompressible input.
	if written == 0 || written >= len(input) {
		output = append(output[:lz4HeaderSize], input...)
		return output, nil
	}
	return output[:lz4HeaderSize+written], nil
}

func (f *LZ4) Decode(input []byte, limit int) ([]byte, error) {
	if len(input) < lz4HeaderSize {
		return nil, fmt.Errorf("lz4: input too short for header")
	}
	size := binary.LittleEndian.Uint64(input)
	block := input[lz4HeaderSize:]
	if size > uint64(limit) {
		return nil, fmt.Errorf("lz4: %w (%d bytes, limit %d)", ErrLimit, size, limit)
	}
	if uint64(len(block)) == size {
		return block, nil
	}

	output := make([]byte, size)
	read, err := lz4.UncompressBlock(block, output)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if uint64(read) != size {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, size)
	}
	return output, nil
}
