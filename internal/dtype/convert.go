package dtype

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-multiarray/internal/binary"
)

// Encode appends vals to w in their stored representation.
func Encode[T Numeric](w *binary.Writer, vals []T) {
	d := Of[T]()
	w.Grow(len(vals) * d.Size())

	for _, v := range vals {
		switch d {
		case Int8, Uint8:
			w.WriteUint8(uint8(v))
		case Int16, Uint16:
			w.WriteUint16(uint16(v))
		case Int32, Uint32:
			w.WriteUint32(uint32(v))
		case Int64, Uint64:
			w.WriteUint64(uint64(v))
		case Float32:
			w.WriteUint32(math.Float32bits(float32(v)))
		case Float64:
			w.WriteUint64(math.Float64bits(float64(v)))
		}
	}
}

// Decode reads n elements of type T from r.
func Decode[T Numeric](r *binary.Reader, n int) ([]T, error) {
	d := Of[T]()
	size := d.Size()
	if n < 0 || n > r.Remaining()/size {
		return nil, fmt.Errorf("decoding %d %s elements from %d bytes: %w", n, d, r.Remaining(), binary.ErrShortRead)
	}

	out := make([]T, n)
	for i := range out {
		bits, err := r.ReadUintN(size)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = fromBits[T](d, bits)
	}
	return out, nil
}

func fromBits[T Numeric](d DType, bits uint64) T {
	switch d {
	case Int8:
		return T(int8(bits))
	case Int16:
		return T(int16(bits))
	case Int32:
		return T(int32(bits))
	case Int64:
		return T(int64(bits))
	case Float32:
		return T(math.Float32frombits(uint32(bits)))
	case Float64:
		return T(math.Float64frombits(bits))
	default:
		return T(bits)
	}
}
