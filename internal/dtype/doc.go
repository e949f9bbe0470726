// Package dtype maps Go element types to the element type tags stored in
// array containers, and converts element slices to and from raw bytes.
//
// # Type Mapping
//
//	Go type            | DType
//	-------------------|----------
//	int8, uint8        | Int8, Uint8
//	int16, uint16      | Int16, Uint16
//	int32, uint32      | Int32, Uint32
//	int64, int         | Int64
//	uint64, uint       | Uint64
//	float32, float64   | Float32, Float64
//
// Named types are mapped by their underlying kind, so a type declared as
// `type Celsius float32` is stored as Float32. int and uint are always
// stored as 64-bit values regardless of platform width.
//
// # Encoding
//
// Elements are stored little-endian, back to back, with no padding:
//
//	w := binary.NewWriter()
//	dtype.Encode(w, []float32{1, 2, 3})
//	vals, err := dtype.Decode[float32](binary.NewReader(w.Bytes()), 3)
//
// Floats are stored by their IEEE 754 bit pattern, so NaN payloads and
// negative zero survive a round trip.
package dtype
