package filter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/robert-malhotra/go-multiarray/internal/binary"
)

func sample(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 7)
	}
	return data
}

func TestDeflateRoundtrip(t *testing.T) {
	original := []byte("Hello, World! This is test data for compression testing.")

	f := NewDeflate(nil)
	compressed, err := f.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decompressed, err := f.Decode(compressed, len(original))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !bytes.Equal(decompressed, original) {
		t.Errorf("Decompressed data mismatch:\ngot:  %q\nwant: %q", decompressed, original)
	}
}

func TestDeflateLevel(t *testing.T) {
	data := sample(4096)
	encode := func(params []uint32) []byte {
		t.Helper()
		out, err := NewDeflate(params).Encode(data)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		return out
	}

	stored, best := encode([]uint32{0}), encode([]uint32{9})
	if len(stored) <= len(best) {
		t.Errorf("level 0 should not compress: %d bytes vs %d at level 9", len(stored), len(best))
	}
	if !bytes.Equal(encode([]uint32{42}), encode(nil)) {
		t.Error("out-of-range level should fall back to default")
	}
}

func TestDeflateLimit(t *testing.T) {
	f := NewDeflate(nil)
	encoded, err := f.Encode(make([]byte, 1<<20))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := f.Decode(encoded, 2); !errors.Is(err, ErrLimit) {
		t.Errorf("expected ErrLimit, got %v", err)
	}
	if out, err := f.Decode(encoded, 1<<20); err != nil || len(out) != 1<<20 {
		t.Errorf("decode at exact limit: %d bytes, %v", len(out), err)
	}
}

func TestDeflateCorrupt(t *testing.T) {
	if _, err := NewDeflate(nil).Decode([]byte{0x00, 0x01, 0x02}, 16); err == nil {
		t.Error("expected error for corrupt zlib stream")
	}
}

func TestShuffleUnshuffle(t *testing.T) {
	// Original: [A0 A1 A2 A3] [B0 B1 B2 B3] [C0 C1 C2 C3] [D0 D1 D2 D3]
	// Shuffled: [A0 B0 C0 D0] [A1 B1 C1 D1] [A2 B2 C2 D2] [A3 B3 C3 D3]
	original := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x11, 0x12, 0x13, 0x14,
		0x21, 0x22, 0x23, 0x24,
		0x31, 0x32, 0x33, 0x34,
	}
	shuffled := []byte{
		0x01, 0x11, 0x21, 0x31,
		0x02, 0x12, 0x22, 0x32,
		0x03, 0x13, 0x23, 0x33,
		0x04, 0x14, 0x24, 0x34,
	}

	f := NewShuffle([]uint32{4})
	encoded, err := f.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(encoded, shuffled) {
		t.Errorf("Shuffled data mismatch:\ngot:  %v\nwant: %v", encoded, shuffled)
	}

	unshuffled, err := f.Decode(shuffled, len(shuffled))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(unshuffled, original) {
		t.Errorf("Unshuffled data mismatch:\ngot:  %v\nwant: %v", unshuffled, original)
	}
}

func TestShuffleTrailingBytes(t *testing.T) {
	original := []byte{1, 2, 3, 4, 5}
	f := NewShuffle([]uint32{2})

	encoded, err := f.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if want := []byte{1, 3, 2, 4, 5}; !bytes.Equal(encoded, want) {
		t.Errorf("got %v, want %v", encoded, want)
	}

	decoded, err := f.Decode(encoded, len(encoded))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("got %v, want %v", decoded, original)
	}
}

func TestShuffleSingleByte(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	f := NewShuffle([]uint32{1})

	result, err := f.Decode(data, len(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(result, data) {
		t.Errorf("Single-byte shuffle should be identity")
	}
}

func TestFletcher32Valid(t *testing.T) {
	data := []byte("test data for checksum")
	checksum := binary.Fletcher32(data)

	f := NewFletcher32(nil)
	input, err := f.Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(input) != len(data)+4 {
		t.Fatalf("expected %d bytes, got %d", len(data)+4, len(input))
	}
	tail := input[len(data):]
	if tail[0] != byte(checksum) || tail[3] != byte(checksum>>24) {
		t.Errorf("checksum not stored little-endian: % x", tail)
	}

	output, err := f.Decode(input, len(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(output, data) {
		t.Errorf("Output mismatch:\ngot:  %v\nwant: %v", output, data)
	}
}

func TestFletcher32Invalid(t *testing.T) {
	data := []byte("test data for checksum")

	input := make([]byte, len(data)+4)
	copy(input, data)
	input[len(data)] = 0xDE
	input[len(data)+1] = 0xAD
	input[len(data)+2] = 0xBE
	input[len(data)+3] = 0xEF

	_, err := NewFletcher32(nil).Decode(input, len(input))
	if !errors.Is(err, ErrChecksum) {
		t.Errorf("expected ErrChecksum, got %v", err)
	}

	if _, err := NewFletcher32(nil).Decode([]byte{1, 2}, 16); err == nil {
		t.Error("expected error for short input")
	}
}

func TestLZ4Roundtrip(t *testing.T) {
	for _, original := range [][]byte{nil, {42}, sample(4096), []byte("abcdefgh")} {
		f := NewLZ4(nil)
		encoded, err := f.Encode(original)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := f.Decode(encoded, len(original))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, original) {
			t.Errorf("LZ4 round trip mismatch for %d bytes", len(original))
		}
	}
}

func TestLZ4Compresses(t *testing.T) {
	encoded, err := NewLZ4(nil).Encode(sample(4096))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) >= 4096 {
		t.Errorf("expected repetitive input to shrink, got %d bytes", len(encoded))
	}
}

func TestLZ4Limit(t *testing.T) {
	f := NewLZ4(nil)
	encoded, err := f.Encode(sample(4096))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := f.Decode(encoded, 4095); !errors.Is(err, ErrLimit) {
		t.Errorf("expected ErrLimit, got %v", err)
	}

	forged := []byte{0, 0, 0, 0, 0, 1, 0, 0, 0}
	if _, err := f.Decode(forged, 1<<20); !errors.Is(err, ErrLimit) {
		t.Errorf("expected ErrLimit for forged size prefix, got %v", err)
	}
}

func TestLZ4Short(t *testing.T) {
	if _, err := NewLZ4(nil).Decode([]byte{1, 2, 3}, 16); err == nil {
		t.Error("expected error for short input")
	}
}

func TestZstdRoundtrip(t *testing.T) {
	original := sample(10000)
	f := NewZstd(nil)
	encoded, err := f.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) >= len(original) {
		t.Errorf("expected repetitive input to shrink, got %d bytes", len(encoded))
	}
	decoded, err := f.Decode(encoded, len(original))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("zstd round trip mismatch")
	}

	if _, err := f.Decode([]byte("not zstd"), len(original)); err == nil {
		t.Error("expected error for corrupt zstd frame")
	}
}

func TestZstdLimit(t *testing.T) {
	f := NewZstd(nil)
	encoded, err := f.Encode(make([]byte, 1<<20))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := f.Decode(encoded, 2); err == nil {
		t.Error("expected error when frame expands past limit")
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		f    Filter
		id   ID
		name string
	}{
		{NewDeflate(nil), IDDeflate, "deflate"},
		{NewShuffle(nil), IDShuffle, "shuffle"},
		{NewFletcher32(nil), IDFletcher32, "fletcher32"},
		{NewLZ4(nil), IDLZ4, "lz4"},
		{NewZstd(nil), IDZstd, "zstd"},
	}
	for _, tt := range tests {
		if tt.f.ID() != tt.id {
			t.Errorf("expected ID %d, got %d", tt.id, tt.f.ID())
		}
		if tt.id.String() != tt.name {
			t.Errorf("expected name %q, got %q", tt.name, tt.id.String())
		}
	}
	if got := ID(999).String(); got != "filter(999)" {
		t.Errorf("unexpected name for unknown ID: %q", got)
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New(Info{ID: 999}); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}

	f, err := New(Info{ID: 999, Optional: true})
	if err != nil || f != nil {
		t.Errorf("optional unknown filter should be skipped, got %v, %v", f, err)
	}
}

func TestPipelineEmpty(t *testing.T) {
	p, err := NewPipeline(nil)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	if p.Len() != 0 {
		t.Errorf("expected empty pipeline, got %d filters", p.Len())
	}

	data := []byte("unchanged")
	result, err := p.Decode(data, 0, len(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(result, data) {
		t.Error("Empty pipeline should pass data through unchanged")
	}
}

func TestPipelineRoundtrip(t *testing.T) {
	pipelines := [][]Info{
		{{ID: IDShuffle, Params: []uint32{4}}, {ID: IDDeflate, Params: []uint32{6}}},
		{{ID: IDShuffle, Params: []uint32{8}}, {ID: IDZstd}, {ID: IDFletcher32}},
		{{ID: IDLZ4}, {ID: IDFletcher32}},
		{{ID: IDDeflate}, {ID: 999, Optional: true}},
	}
	original := sample(1000)

	for _, infos := range pipelines {
		p, err := NewPipeline(infos)
		if err != nil {
			t.Fatalf("NewPipeline failed: %v", err)
		}
		encoded, err := p.Encode(original)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := p.Decode(encoded, 0, len(original))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, original) {
			t.Errorf("round trip mismatch through %v", p.Infos())
		}
	}
}

func TestPipelineSkipsOptional(t *testing.T) {
	p, err := NewPipeline([]Info{{ID: IDDeflate}, {ID: 999, Optional: true}})
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("expected 1 filter, got %d", p.Len())
	}
	if infos := p.Infos(); len(infos) != 1 || infos[0].ID != IDDeflate {
		t.Errorf("unexpected infos: %v", infos)
	}
}

func TestPipelineLimit(t *testing.T) {
	p, err := NewPipeline([]Info{{ID: IDShuffle, Params: []uint32{4}}, {ID: IDLZ4}, {ID: IDFletcher32}})
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	original := sample(1000)
	encoded, err := p.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := p.Decode(encoded, 0, len(original)); err != nil {
		t.Fatalf("Decode at exact limit failed: %v", err)
	}
	if _, err := p.Decode(encoded, 0, len(original)-1); !errors.Is(err, ErrLimit) {
		t.Errorf("expected ErrLimit, got %v", err)
	}
}

func TestPipelineUnknown(t *testing.T) {
	if _, err := NewPipeline([]Info{{ID: 999}}); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestPipelineFilterMask(t *testing.T) {
	p, err := NewPipeline([]Info{{ID: IDShuffle, Params: []uint32{2}}})
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	data := []byte{1, 2, 3, 4}

	// bit 0 set = skip filter 0
	result, err := p.Decode(data, 0x01, len(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(result, data) {
		t.Error("Skipped filter should leave data unchanged")
	}
}

func TestPipelineChecksumError(t *testing.T) {
	p, err := NewPipeline([]Info{{ID: IDFletcher32}})
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	encoded, err := p.Encode([]byte("payload"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	encoded[0] ^= 0xFF

	if _, err := p.Decode(encoded, 0, len("payload")); !errors.Is(err, ErrChecksum) {
		t.Errorf("expected ErrChecksum, got %v", err)
	}
}
