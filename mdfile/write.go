package mdfile

import (
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/robert-malhotra/go-multiarray/internal/binary"
	"github.com/robert-malhotra/go-multiarray/internal/dtype"
	"github.com/robert-malhotra/go-multiarray/internal/filter"
	"github.com/robert-malhotra/go-multiarray/mdarray"
	"github.com/robert-malhotra/go-multiarray/typenat"
)

// Write stores the elements of v, in row-major order, as a container on w.
func Write[T dtype.Numeric, N typenat.Nat[A], A typenat.IxArray](w io.Writer, v mdarray.View[T, N, A], opts ...Option) error {
	o := applyOptions(opts)
	dt := dtype.Of[T]()
	rank := typenat.Value[N, A]()

	shape := v.Shape()
	h := &Header{
		Version:    Version,
		Rank:       rank,
		DType:      dt.String(),
		Shape:      make([]uint64, rank),
		Attributes: o.attributes,
	}
	for d := range rank {
		h.Shape[d] = uint64(typenat.AtUnchecked(&shape, d))
	}

	raw := binary.NewWriter()
	dtype.Encode(raw, v.ToBuf().Data())
	digest := blake3.Sum256(raw.Bytes())

	pipeline, err := filter.NewPipeline(o.filters(dt.Size()))
	if err != nil {
		return err
	}
	stored, err := pipeline.Encode(raw.Bytes())
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	h.Filters = pipeline.Infos()
	h.RawSize = uint64(len(raw.Bytes()))
	h.StoredSize = uint64(len(stored))
	h.Digest = digest[:]

	prefix, err := encodePrefix(h)
	if err != nil {
		return err
	}
	if _, err := w.Write(prefix); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}

	o.logger.Debug("wrote array",
		"rank", rank,
		"dtype", h.DType,
		"shape", h.Shape,
		"filters", pipeline.Len(),
		"raw_bytes", h.RawSize,
		"stored_bytes", h.StoredSize,
	)
	return nil
}
