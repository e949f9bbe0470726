package filter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DefaultDeflateLevel is the compression level used when none is given.
const DefaultDeflateLevel = 6

// Deflate implements the DEFLATE filter (zlib framing).
type Deflate struct {
	level int
}

// NewDeflate creates a new DEFLATE filter.
// Params: [0] = compression level (0-9, or default if empty)
func NewDeflate(params []uint32) *Deflate {
	level := DefaultDeflateLevel
	if len(params) > 0 && params[0] <= 9 {
		level = int(params[0])
	}
	return &Deflate{level: level}
}

func (f *Deflate) ID() ID {
	return IDDeflate
}

func (f *Deflate) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, f.level)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(input); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Deflate) Decode(input []byte, limit int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer r.Close()

	output, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	if len(output) > limit {
		return nil, fmt.Errorf("zlib decompress: %w (%d bytes)", ErrLimit, limit)
	}

	return output, nil
}
