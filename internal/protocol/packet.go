// Package protocol frames query packets on a byte stream.
//
// Frame layout: uint16 LE total length (header included) followed by the
// payload. payload[0] is the opcode.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/udisondev/deathfx/internal/constants"
)

// ErrPacketTooLarge is returned when a frame does not fit the buffer or the
// 16-bit length header.
var ErrPacketTooLarge = errors.New("packet too large")

// WritePacket writes one frame to w.
// Precondition: payload lives at buf[constants.PacketHeaderSize : constants.PacketHeaderSize+payloadLen].
func WritePacket(w io.Writer, buf []byte, payloadLen int) error {
	totalLen := constants.PacketHeaderSize + payloadLen
	if totalLen > constants.MaxPacketSize {
		return fmt.Errorf("write packet of %d bytes: %w", totalLen, ErrPacketTooLarge)
	}
	if len(buf) < totalLen {
		return fmt.Errorf("write packet: buffer too small (need %d, have %d)", totalLen, len(buf))
	}

	binary.LittleEndian.PutUint16(buf[:constants.PacketHeaderSize], uint16(totalLen))

	if _, err := w.Write(buf[:totalLen]); err != nil {
		return fmt.Errorf("writing packet: %w", err)
	}
	return nil
}

// WritePayload frames payload through a scratch buffer and writes it to w.
func WritePayload(w io.Writer, scratch, payload []byte) error {
	need := constants.PacketHeaderSize + len(payload)
	if cap(scratch) < need {
		scratch = make([]byte, need)
	}
	scratch = scratch[:need]
	copy(scratch[constants.PacketHeaderSize:], payload)
	return WritePacket(w, scratch, len(payload))
}

// ReadPacket reads one packet from r into buf.
// Returns a subslice of buf with the payload (without the length header).
func ReadPacket(r io.Reader, buf []byte) ([]byte, error) {
	var header [constants.PacketHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading packet header: %w", err)
	}

	totalLen := int(binary.LittleEndian.Uint16(header[:]))
	if totalLen < constants.PacketHeaderSize {
		return nil, fmt.Errorf("invalid packet length: %d", totalLen)
	}

	payloadLen := totalLen - constants.PacketHeaderSize
	if payloadLen == 0 {
		return nil, fmt.Errorf("empty packet")
	}

	if payloadLen > len(buf) {
		return nil, fmt.Errorf("packet payload %d exceeds buffer size %d: %w", payloadLen, len(buf), ErrPacketTooLarge)
	}

	payload := buf[:payloadLen]
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("reading packet payload: %w", err)
	}

	return payload, nil
}
