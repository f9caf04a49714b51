package packet

import (
	"encoding/binary"
	"math"
	"sync"
	"unicode/utf16"
)

// Writer appends packet fields to a growable byte slice.
type Writer struct {
	b []byte
}

// writerPool reduces allocations by reusing Writers.
var writerPool = sync.Pool{
	New: func() any {
		return &Writer{b: make([]byte, 0, 256)}
	},
}

// Get returns an empty Writer from the pool.
func Get() *Writer {
	w := writerPool.Get().(*Writer)
	w.Reset()
	return w
}

// Put returns a Writer to the pool for reuse.
// IMPORTANT: Do not use the Writer (or Bytes()) after calling Put.
func (w *Writer) Put() {
	// oversized buffers are dropped instead of pinned in the pool
	if cap(w.b) > 64*1024 {
		return
	}
	writerPool.Put(w)
}

// NewWriter creates a new packet writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{b: make([]byte, 0, capacity)}
}

// WriteByte writes a single byte. Never fails; the error satisfies io.ByteWriter.
func (w *Writer) WriteByte(v byte) error {
	w.b = append(w.b, v)
	return nil
}

// WriteBool writes 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.b = append(w.b, 1)
		return
	}
	w.b = append(w.b, 0)
}

// WriteInt writes an int32 (4 bytes, LE).
func (w *Writer) WriteInt(v int32) {
	w.b = binary.LittleEndian.AppendUint32(w.b, uint32(v))
}

// WriteUint writes a uint32 (4 bytes, LE).
func (w *Writer) WriteUint(v uint32) {
	w.b = binary.LittleEndian.AppendUint32(w.b, v)
}

// WriteDouble writes a float64 (8 bytes, LE).
func (w *Writer) WriteDouble(v float64) {
	w.b = binary.LittleEndian.AppendUint64(w.b, math.Float64bits(v))
}

// WriteString writes a UTF-16LE null-terminated string.
func (w *Writer) WriteString(s string) {
	for _, r := range s {
		if r < 0x10000 {
			w.b = binary.LittleEndian.AppendUint16(w.b, uint16(r))
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		w.b = binary.LittleEndian.AppendUint16(w.b, uint16(hi))
		w.b = binary.LittleEndian.AppendUint16(w.b, uint16(lo))
	}
	w.b = append(w.b, 0, 0)
}

// Bytes returns the accumulated packet data.
func (w *Writer) Bytes() []byte {
	return w.b
}

// Len returns the current length of the packet.
func (w *Writer) Len() int {
	return len(w.b)
}

// Reset clears the buffer for reuse.
func (w *Writer) Reset() {
	w.b = w.b[:0]
}
