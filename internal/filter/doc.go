// Package filter implements the byte-level filter pipeline applied to array
// payloads.
//
// Filters transform a payload on its way into a container and reverse the
// transformation on the way out. Encoding applies filters in pipeline order;
// decoding applies them in reverse order.
//
// # Supported Filters
//
//   - Deflate (ID 1): zlib compression via [Deflate], backed by
//     github.com/klauspost/compress/zlib.
//
//   - Shuffle (ID 2): byte shuffling via [Shuffle]. Groups byte 0 of every
//     element, then byte 1, and so on, so that compressors see runs of
//     similar bytes.
//
//   - Fletcher32 (ID 3): integrity check via [Fletcher32Filter]. Appends a
//     32-bit Fletcher checksum on encode and verifies it on decode.
//
//   - LZ4 (ID 32004): LZ4 block compression via [LZ4]. The block is prefixed
//     with the uncompressed size; incompressible input is stored raw.
//
//   - Zstd (ID 32015): Zstandard compression via [Zstd].
//
// Filter IDs follow the HDF5 registry so that a filter list reads the same
// way in both worlds.
//
// # Filter Pipeline
//
// The [Pipeline] type manages a sequence of filters:
//
//	p, err := filter.NewPipeline([]filter.Info{
//		{ID: filter.IDShuffle, Params: []uint32{4}},
//		{ID: filter.IDDeflate, Params: []uint32{6}},
//	})
//	encoded, err := p.Encode(raw)
//	decoded, err := p.Decode(encoded, 0, len(raw))
//
// # Filter Mask
//
// If bit i is set in the mask passed to [Pipeline.Decode], filter i is
// skipped. A writer that could not apply a filter records it in the mask.
//
// # Decode Limit
//
// Every decoder takes the largest output it may produce and fails with
// [ErrLimit] past it, so a short stored payload cannot expand without bound.
package filter
