package binary

import (
	"encoding/binary"
)

// Writer encodes little-endian fixed-width integers into a growing in-memory
// buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Grow ensures space for another n bytes without reallocation.
func (w *Writer) Grow(n int) {
	if n > cap(w.buf)-len(w.buf) {
		buf := make([]byte, len(w.buf), len(w.buf)+n)
		copy(buf, w.buf)
		w.buf = buf
	}
}

// Bytes returns the bytes written so far. The slice aliases the writer's
// buffer until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends data.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteUint64 writes an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WritePadding writes zero bytes to align to the given alignment.
func (w *Writer) WritePadding(alignment int) {
	w.WriteZeros(Padding(len(w.buf), alignment))
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// Padding returns the number of bytes needed to advance n to a multiple of
// alignment.
func Padding(n, alignment int) int {
	if alignment <= 1 {
		return 0
	}
	if remainder := n % alignment; remainder != 0 {
		return alignment - remainder
	}
	return 0
}
