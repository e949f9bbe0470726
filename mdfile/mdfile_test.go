package mdfile

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-multiarray/internal/dtype"
	"github.com/robert-malhotra/go-multiarray/internal/filter"
	"github.com/robert-malhotra/go-multiarray/mdarray"
	"github.com/robert-malhotra/go-multiarray/typenat"
)

// ramp returns a 4x5x6 float32 buffer holding i/2 at flat index i.
func ramp(t *testing.T) *mdarray.Buf[float32, typenat.N3, [3]uint] {
	t.Helper()
	b, err := mdarray.New[float32, typenat.N3]([3]uint{4, 5, 6})
	require.NoError(t, err)
	for i := range b.Data() {
		b.Data()[i] = float32(i) / 2
	}
	return b
}

func encode[T dtype.Numeric, N typenat.Nat[A], A typenat.IxArray](t *testing.T, v mdarray.View[T, N, A], opts ...Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, v, opts...))
	return buf.Bytes()
}

func TestRoundTripFilters(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		filters []filter.ID
	}{
		{"none", nil, nil},
		{"shuffle", []Option{WithShuffle()}, []filter.ID{filter.IDShuffle}},
		{"deflate", []Option{WithDeflate(9)}, []filter.ID{filter.IDDeflate}},
		{"zstd", []Option{WithZstd()}, []filter.ID{filter.IDZstd}},
		{"lz4", []Option{WithLZ4()}, []filter.ID{filter.IDLZ4}},
		{"fletcher32", []Option{WithFletcher32()}, []filter.ID{filter.IDFletcher32}},
		{"shuffle+deflate+fletcher32", []Option{WithShuffle(), WithDeflate(6), WithFletcher32()},
			[]filter.ID{filter.IDShuffle, filter.IDDeflate, filter.IDFletcher32}},
		{"last compression wins", []Option{WithDeflate(1), WithLZ4()}, []filter.ID{filter.IDLZ4}},
	}

	want := ramp(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encode(t, want.View(), tt.opts...)

			h, err := ReadHeader(bytes.NewReader(data))
			require.NoError(t, err)
			var ids []filter.ID
			for _, info := range h.Filters {
				ids = append(ids, info.ID)
			}
			assert.Equal(t, tt.filters, ids)

			got, err := Read[float32, typenat.N3](bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, want.Shape(), got.Shape())
			assert.Equal(t, want.Data(), got.Data())
		})
	}
}

func TestHeader(t *testing.T) {
	data := encode(t, ramp(t).View(), WithShuffle(), WithAttribute("units", "kelvin"))

	h, err := ReadHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Version, h.Version)
	assert.Equal(t, 3, h.Rank)
	assert.Equal(t, "float32", h.DType)
	assert.Equal(t, []uint64{4, 5, 6}, h.Shape)
	assert.Equal(t, uint64(120), h.NumElements())
	assert.Equal(t, uint64(480), h.RawSize)
	assert.Len(t, h.Digest, 32)
	assert.Equal(t, map[string]string{"units": "kelvin"}, h.Attributes)
	require.Len(t, h.Filters, 1)
	assert.Equal(t, []uint32{4}, h.Filters[0].Params)

	assert.Equal(t, []byte(Magic), data[:4])
	payloadStart := uint64(len(data)) - h.StoredSize
	assert.Zero(t, payloadStart%payloadAlign)
}

func TestDeterministic(t *testing.T) {
	b := ramp(t)
	opts := []Option{WithShuffle(), WithZstd(), WithAttribute("b", "2"), WithAttribute("a", "1")}
	assert.Equal(t, encode(t, b.View(), opts...), encode(t, b.View(), opts...))
}

func TestShuffleSkippedForBytes(t *testing.T) {
	b, err := mdarray.FromSlice[uint8, typenat.N1]([]uint8{1, 2, 3}, [1]uint{3})
	require.NoError(t, err)

	h, err := ReadHeader(bytes.NewReader(encode(t, b.View(), WithShuffle())))
	require.NoError(t, err)
	assert.Empty(t, h.Filters)
}

func TestScalar(t *testing.T) {
	b, err := mdarray.FromSlice[int64, typenat.N0]([]int64{-7}, [0]uint{})
	require.NoError(t, err)

	got, err := Read[int64, typenat.N0](bytes.NewReader(encode(t, b.View())))
	require.NoError(t, err)
	assert.Equal(t, []int64{-7}, got.Data())
}

func TestEmpty(t *testing.T) {
	b, err := mdarray.New[int32, typenat.N2]([2]uint{3, 0})
	require.NoError(t, err)

	got, err := Read[int32, typenat.N2](bytes.NewReader(encode(t, b.View(), WithLZ4(), WithFletcher32())))
	require.NoError(t, err)
	assert.Equal(t, [2]uint{3, 0}, got.Shape())
	assert.Zero(t, got.Len())
}

func TestStridedView(t *testing.T) {
	b := ramp(t)
	v, err := b.View().Step([3]uint{2, 1, 3})
	require.NoError(t, err)
	v, err = v.Permute([3]uint{2, 0, 1})
	require.NoError(t, err)

	got, err := Read[float32, typenat.N3](bytes.NewReader(encode(t, v, WithDeflate(6))))
	require.NoError(t, err)
	assert.Equal(t, v.ToBuf().Data(), got.Data())
	assert.Equal(t, v.Shape(), got.Shape())
}

func TestNotContainer(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("MDA"), []byte("NOTANARRAY")} {
		_, err := ReadHeader(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrNotContainer)
	}
}

func TestRankMismatch(t *testing.T) {
	data := encode(t, ramp(t).View())
	_, err := Read[float32, typenat.N2](bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestDTypeMismatch(t *testing.T) {
	data := encode(t, ramp(t).View())
	_, err := Read[float64, typenat.N3](bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrDTypeMismatch)
}

func TestCorruptPayload(t *testing.T) {
	for _, opts := range [][]Option{nil, {WithFletcher32()}} {
		data := encode(t, ramp(t).View(), opts...)
		data[len(data)-5] ^= 0x40

		_, err := Read[float32, typenat.N3](bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrChecksum)
	}
}

func TestTruncated(t *testing.T) {
	data := encode(t, ramp(t).View())

	_, err := Read[float32, typenat.N3](bytes.NewReader(data[:len(data)-1]))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = ReadHeader(bytes.NewReader(data[:12]))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestUnknownFilter(t *testing.T) {
	h := &Header{
		Version:    Version,
		Rank:       1,
		DType:      "uint8",
		Shape:      []uint64{2},
		Filters:    []filter.Info{{ID: 999}},
		RawSize:    2,
		StoredSize: 2,
	}
	prefix, err := encodePrefix(h)
	require.NoError(t, err)

	_, err = Read[uint8, typenat.N1](bytes.NewReader(append(prefix, 1, 2)))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestPayloadExpandsPastRawSize(t *testing.T) {
	stored, err := filter.NewDeflate(nil).Encode(make([]byte, 1<<20))
	require.NoError(t, err)
	h := &Header{
		Version:    Version,
		Rank:       1,
		DType:      "uint8",
		Shape:      []uint64{2},
		Filters:    []filter.Info{{ID: filter.IDDeflate}},
		RawSize:    2,
		StoredSize: uint64(len(stored)),
	}
	prefix, err := encodePrefix(h)
	require.NoError(t, err)

	_, err = Read[uint8, typenat.N1](bytes.NewReader(append(prefix, stored...)))
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.ErrorIs(t, err, filter.ErrLimit)
}

func TestRawSizeTooLarge(t *testing.T) {
	h := &Header{
		Version: Version,
		Rank:    1,
		DType:   "uint8",
		Shape:   []uint64{1 << 32},
		RawSize: 1 << 32,
	}
	prefix, err := encodePrefix(h)
	require.NoError(t, err)

	_, err = Read[uint8, typenat.N1](bytes.NewReader(prefix))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestUnsupportedVersion(t *testing.T) {
	prefix, err := encodePrefix(&Header{Version: 9})
	require.NoError(t, err)

	_, err = ReadHeader(bytes.NewReader(prefix))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMalformedShape(t *testing.T) {
	prefix, err := encodePrefix(&Header{Version: Version, Rank: 2, Shape: []uint64{1}})
	require.NoError(t, err)

	_, err = ReadHeader(bytes.NewReader(prefix))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data := encode(t, ramp(t).View(), WithLogger(logger))
	_, err := Read[float32, typenat.N3](bytes.NewReader(data), WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "wrote array")
	assert.Contains(t, logs.String(), "read array")
	assert.Contains(t, logs.String(), "dtype=float32")
}
