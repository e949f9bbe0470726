// Package mdfile reads and writes n-dimensional arrays as self-describing
// binary containers.
//
// # Layout
//
//	offset  size  field
//	0       4     magic "MDA\x01"
//	4       4     header length H, little-endian uint32
//	8       H     header, CBOR (core deterministic encoding)
//	8+H     pad   zero bytes up to the next multiple of 8
//	...     S     payload, S = Header.StoredSize
//
// The header records the rank, element type, shape, filter pipeline and a
// BLAKE3 digest of the unfiltered payload. The unfiltered payload is the
// array's elements in row-major order, little-endian, without padding.
//
// # Usage
//
//	b, _ := mdarray.New[float32, typenat.N2]([2]uint{3, 4})
//	err := mdfile.Write(w, b.View(), mdfile.WithShuffle(), mdfile.WithZstd())
//
//	got, err := mdfile.Read[float32, typenat.N2](r)
//
// Read checks the stored rank and element type against the requested ones
// and fails with [ErrRankMismatch] or [ErrDTypeMismatch] rather than
// reinterpreting the data.
package mdfile
