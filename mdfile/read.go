package mdfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/robert-malhotra/go-multiarray/internal/binary"
	"github.com/robert-malhotra/go-multiarray/internal/dtype"
	"github.com/robert-malhotra/go-multiarray/internal/filter"
	"github.com/robert-malhotra/go-multiarray/mdarray"
	"github.com/robert-malhotra/go-multiarray/typenat"
)

// Read reads a container from r into a new buffer. The stored rank and
// element type must match N and T.
func Read[T dtype.Numeric, N typenat.Nat[A], A typenat.IxArray](r io.Reader, opts ...Option) (*mdarray.Buf[T, N, A], error) {
	o := applyOptions(opts)

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if rank := typenat.Value[N, A](); h.Rank != rank {
		return nil, fmt.Errorf("%w: stored rank %d, requested %d", ErrRankMismatch, h.Rank, rank)
	}
	dt := dtype.Of[T]()
	if h.DType != dt.String() {
		return nil, fmt.Errorf("%w: stored %s, requested %s", ErrDTypeMismatch, h.DType, dt)
	}

	var shape A
	for d, ext := range h.Shape {
		if uint64(uint(ext)) != ext {
			return nil, fmt.Errorf("%w: extent %d of dimension %d", ErrUnsupported, ext, d)
		}
		*typenat.RefUnchecked(&shape, d) = uint(ext)
	}
	n, err := mdarray.NumElements(shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if uint64(n) > h.RawSize/uint64(dt.Size()) || h.RawSize != uint64(n*dt.Size()) {
		return nil, fmt.Errorf("%w: raw size %d for %d %s elements", ErrCorrupt, h.RawSize, n, dt)
	}
	if h.RawSize > uint64(maxPayloadSize) {
		return nil, fmt.Errorf("%w: raw size %d", ErrUnsupported, h.RawSize)
	}

	stored, err := readPayload(r, h.StoredSize)
	if err != nil {
		return nil, err
	}

	pipeline, err := filter.NewPipeline(h.Filters)
	if err != nil {
		if errors.Is(err, filter.ErrUnknownFilter) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
		}
		return nil, err
	}
	raw, err := pipeline.Decode(stored, h.FilterMask, int(h.RawSize))
	if err != nil {
		if errors.Is(err, filter.ErrChecksum) {
			return nil, fmt.Errorf("%w: %w", ErrChecksum, err)
		}
		return nil, fmt.Errorf("%w: decoding payload: %w", ErrCorrupt, err)
	}
	if uint64(len(raw)) != h.RawSize {
		return nil, fmt.Errorf("%w: decoded %d bytes, header says %d", ErrCorrupt, len(raw), h.RawSize)
	}
	if digest := blake3.Sum256(raw); !bytes.Equal(digest[:], h.Digest) {
		return nil, fmt.Errorf("%w: payload digest", ErrChecksum)
	}

	data, err := dtype.Decode[T](binary.NewReader(raw), n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	o.logger.Debug("read array",
		"rank", h.Rank,
		"dtype", h.DType,
		"shape", h.Shape,
		"filters", pipeline.Len(),
		"stored_bytes", h.StoredSize,
	)
	return mdarray.FromSlice[T, N](data, shape)
}

func readPayload(r io.Reader, size uint64) ([]byte, error) {
	if size > uint64(maxPayloadSize) {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrUnsupported, size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading payload: %w", ErrCorrupt, err)
	}
	return buf, nil
}
