package filter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstd.Encoder is safe for concurrent use through EncodeAll.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("filter: zstd encoder initialization failed: " + err.Error())
	}
}

// zstdMinMemory is the smallest decoder memory cap handed to zstd.
const zstdMinMemory = 1 << 10

// Zstd implements Zstandard compression at the default level.
type Zstd struct{}

// NewZstd creates a new Zstd filter. It takes no parameters.
func NewZstd(params []uint32) *Zstd {
	return &Zstd{}
}

func (f *Zstd) ID() ID {
	return IDZstd
}

func (f *Zstd) Encode(input []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(input, nil), nil
}

// Decode streams the frame through a single-goroutine decoder whose memory
// cap follows limit, so a small frame cannot expand without bound.
func (f *Zstd) Decode(input []byte, limit int) ([]byte, error) {
	d, err := zstd.NewReader(bytes.NewReader(input),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(max(uint64(limit), zstdMinMemory)),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer d.Close()

	output, err := io.ReadAll(io.LimitReader(d, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(output) > limit {
		return nil, fmt.Errorf("zstd decompress: %w (%d bytes)", ErrLimit, limit)
	}
	return output, nil
}
