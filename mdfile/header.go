package mdfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/robert-malhotra/go-multiarray/internal/binary"
	"github.com/robert-malhotra/go-multiarray/internal/filter"
)

// Magic is the container signature.
const Magic = "MDA\x01"

// Version is the header version written by this package.
const Version = 1

const (
	prefixSize     = 8
	payloadAlign   = 8
	maxHeaderSize  = 1 << 20
	maxPayloadSize = 1<<31 - 1
)

// Header describes a stored array.
type Header struct {
	Version    int               `cbor:"version" json:"version" yaml:"version"`
	Rank       int               `cbor:"rank" json:"rank" yaml:"rank"`
	DType      string            `cbor:"dtype" json:"dtype" yaml:"dtype"`
	Shape      []uint64          `cbor:"shape" json:"shape" yaml:"shape"`
	Filters    []filter.Info     `cbor:"filters,omitempty" json:"filters,omitempty" yaml:"filters,omitempty"`
	FilterMask uint32            `cbor:"filter_mask,omitempty" json:"filter_mask,omitempty" yaml:"filter_mask,omitempty"`
	RawSize    uint64            `cbor:"raw_size" json:"raw_size" yaml:"raw_size"`
	StoredSize uint64            `cbor:"stored_size" json:"stored_size" yaml:"stored_size"`
	Digest     []byte            `cbor:"digest" json:"digest" yaml:"digest"`
	Attributes map[string]string `cbor:"attributes,omitempty" json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// NumElements returns the product of the shape.
func (h *Header) NumElements() uint64 {
	n := uint64(1)
	for _, d := range h.Shape {
		n *= d
	}
	return n
}

// encMode uses Core Deterministic Encoding: the same header always produces
// identical bytes.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("mdfile: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: 1 << 16,
		MaxMapPairs:      1 << 16,
	}.DecMode()
	if err != nil {
		panic("mdfile: CBOR decoder initialization failed: " + err.Error())
	}
}

// encodePrefix returns the magic, header length, header and padding that
// precede the payload.
func encodePrefix(h *Header) ([]byte, error) {
	hdr, err := encMode.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	if len(hdr) > maxHeaderSize {
		return nil, fmt.Errorf("%w: header of %d bytes", ErrUnsupported, len(hdr))
	}

	w := binary.NewWriter()
	w.Grow(prefixSize + len(hdr) + payloadAlign)
	w.WriteBytes([]byte(Magic))
	w.WriteUint32(uint32(len(hdr)))
	w.WriteBytes(hdr)
	w.WritePadding(payloadAlign)
	return w.Bytes(), nil
}

// readHeader reads everything up to the payload from r.
func readHeader(r io.Reader) (*Header, error) {
	var prefix [prefixSize]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, fmt.Errorf("%w: reading signature: %w", ErrNotContainer, err)
	}

	br := binary.NewReader(prefix[:])
	magic, _ := br.ReadBytes(len(Magic))
	if !bytes.Equal(magic, []byte(Magic)) {
		return nil, ErrNotContainer
	}
	size, _ := br.ReadUint32()
	if size > maxHeaderSize {
		return nil, fmt.Errorf("%w: header length %d", ErrCorrupt, size)
	}

	// header plus padding to the payload boundary
	total := int(size) + binary.Padding(prefixSize+int(size), payloadAlign)
	buf := make([]byte, total)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrCorrupt, err)
	}

	h := new(Header)
	if err := decMode.Unmarshal(buf[:size], h); err != nil {
		return nil, fmt.Errorf("%w: decoding header: %w", ErrCorrupt, err)
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Header) validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: header version %d", ErrUnsupported, h.Version)
	}
	if h.Rank < 0 || len(h.Shape) != h.Rank {
		return fmt.Errorf("%w: rank %d with %d extents", ErrCorrupt, h.Rank, len(h.Shape))
	}
	return nil
}

// ReadHeader reads and validates the header at the start of r. The payload
// is not read.
func ReadHeader(r io.Reader) (*Header, error) {
	return readHeader(r)
}
