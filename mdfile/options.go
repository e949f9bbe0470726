package mdfile

import (
	"io"
	"log/slog"

	"github.com/robert-malhotra/go-multiarray/internal/filter"
)

// Option configures reading and writing.
type Option func(*options)

type compression uint8

const (
	compressNone compression = iota
	compressDeflate
	compressZstd
	compressLZ4
)

type options struct {
	shuffle      bool
	compression  compression
	deflateLevel int
	fletcher32   bool
	attributes   map[string]string
	logger       *slog.Logger
}

func defaultOptions() *options {
	return &options{
		deflateLevel: filter.DefaultDeflateLevel,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithShuffle enables the shuffle filter (improves compression).
func WithShuffle() Option {
	return func(o *options) {
		o.shuffle = true
	}
}

// WithDeflate compresses the payload with zlib at the given level (0-9).
// Out-of-range levels select the default level.
func WithDeflate(level int) Option {
	return func(o *options) {
		o.compression = compressDeflate
		o.deflateLevel = filter.DefaultDeflateLevel
		if level >= 0 && level <= 9 {
			o.deflateLevel = level
		}
	}
}

// WithZstd compresses the payload with Zstandard.
func WithZstd() Option {
	return func(o *options) {
		o.compression = compressZstd
	}
}

// WithLZ4 compresses the payload with LZ4.
func WithLZ4() Option {
	return func(o *options) {
		o.compression = compressLZ4
	}
}

// WithFletcher32 appends a Fletcher-32 checksum to the stored payload.
func WithFletcher32() Option {
	return func(o *options) {
		o.fletcher32 = true
	}
}

// WithAttribute records a string attribute in the header.
// Multiple WithAttribute options can be used to add multiple attributes.
func WithAttribute(name, value string) Option {
	return func(o *options) {
		if o.attributes == nil {
			o.attributes = make(map[string]string)
		}
		o.attributes[name] = value
	}
}

// WithLogger sets the logger for debug output. Logging is discarded by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// filters returns the pipeline for elements of elemSize bytes.
// At most one compression filter applies; the last one given wins.
func (o *options) filters(elemSize int) []filter.Info {
	var infos []filter.Info
	if o.shuffle && elemSize > 1 {
		infos = append(infos, filter.Info{ID: filter.IDShuffle, Params: []uint32{uint32(elemSize)}})
	}
	switch o.compression {
	case compressDeflate:
		infos = append(infos, filter.Info{ID: filter.IDDeflate, Params: []uint32{uint32(o.deflateLevel)}})
	case compressZstd:
		infos = append(infos, filter.Info{ID: filter.IDZstd})
	case compressLZ4:
		infos = append(infos, filter.Info{ID: filter.IDLZ4})
	}
	if o.fletcher32 {
		infos = append(infos, filter.Info{ID: filter.IDFletcher32})
	}
	return infos
}
