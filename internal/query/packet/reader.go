// Package packet encodes and decodes query packet bodies.
// All multi-byte values are little-endian; strings are UTF-16LE and
// null-terminated.
package packet

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"
)

// defaultStringCapacity — типичная длина editor ID keyword (characters).
const defaultStringCapacity = 24

// Reader provides methods for reading packet data.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new packet reader.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("ReadByte: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBool reads a byte and reports whether it is non-zero.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadInt reads an int32 (4 bytes, LE).
func (r *Reader) ReadInt() (int32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("ReadInt: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	val := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return val, nil
}

// ReadUint reads a uint32 (4 bytes, LE). Form IDs travel as uint32.
func (r *Reader) ReadUint() (uint32, error) {
	v, err := r.ReadInt()
	return uint32(v), err
}

// ReadDouble reads a float64 (8 bytes, LE).
func (r *Reader) ReadDouble() (float64, error) {
	if r.pos+8 > len(r.data) {
		return 0, fmt.Errorf("ReadDouble: not enough data (pos=%d, len=%d)", r.pos, len(r.data))
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// ReadString reads a UTF-16LE null-terminated string.
func (r *Reader) ReadString() (string, error) {
	units := make([]uint16, 0, defaultStringCapacity)

	for {
		if r.pos+2 > len(r.data) {
			return "", fmt.Errorf("ReadString: unexpected end of data (pos=%d, len=%d)", r.pos, len(r.data))
		}

		u := binary.LittleEndian.Uint16(r.data[r.pos:])
		r.pos += 2

		if u == 0 {
			break
		}
		units = append(units, u)
	}

	return string(utf16.Decode(units)), nil
}

// ReadCount reads an int32 element count and checks it against limit and
// the bytes left, given the minimum encoded size of one element.
func (r *Reader) ReadCount(limit, minElemSize int) (int, error) {
	n, err := r.ReadInt()
	if err != nil {
		return 0, err
	}
	if n < 0 || int(n) > limit {
		return 0, fmt.Errorf("ReadCount: count %d out of range [0, %d]", n, limit)
	}
	if int(n)*minElemSize > r.Remaining() {
		return 0, fmt.Errorf("ReadCount: count %d exceeds remaining %d bytes", n, r.Remaining())
	}
	return int(n), nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
