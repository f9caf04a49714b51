package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/udisondev/deathfx/internal/constants"
)

func TestWriteReadPacket_RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0xAA, 0xBB, 0xCC}

	buf := make([]byte, 64)
	copy(buf[constants.PacketHeaderSize:], payload)

	var out bytes.Buffer
	if err := WritePacket(&out, buf, len(payload)); err != nil {
		t.Fatalf("WritePacket failed: %v", err)
	}

	if got := binary.LittleEndian.Uint16(out.Bytes()); got != uint16(len(payload)+constants.PacketHeaderSize) {
		t.Fatalf("length header = %d, want %d", got, len(payload)+constants.PacketHeaderSize)
	}

	readBuf := make([]byte, 64)
	got, err := ReadPacket(&out, readBuf)
	if err != nil {
		t.Fatalf("ReadPacket failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = %x, want %x", got, payload)
	}
}

func TestWritePayload_GrowsScratch(t *testing.T) {
	payload := bytes.Repeat([]byte{0x7F}, 100)

	var out bytes.Buffer
	if err := WritePayload(&out, make([]byte, 4), payload); err != nil {
		t.Fatalf("WritePayload failed: %v", err)
	}

	got, err := ReadPacket(&out, make([]byte, 128))
	if err != nil {
		t.Fatalf("ReadPacket failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("payload mismatch")
	}
}

func TestReadPacket_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		bufSize int
		wantErr error
	}{
		{name: "truncated header", data: []byte{0x05}, bufSize: 16, wantErr: io.ErrUnexpectedEOF},
		{name: "length below header", data: []byte{0x01, 0x00}, bufSize: 16},
		{name: "empty payload", data: []byte{0x02, 0x00}, bufSize: 16},
		{name: "too large for buffer", data: []byte{0x20, 0x00, 0x01}, bufSize: 4, wantErr: ErrPacketTooLarge},
		{name: "truncated payload", data: []byte{0x06, 0x00, 0x01}, bufSize: 16, wantErr: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPacket(bytes.NewReader(tt.data), make([]byte, tt.bufSize))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWritePacket_TooLarge(t *testing.T) {
	err := WritePacket(io.Discard, make([]byte, constants.MaxPacketSize+8), constants.MaxPacketSize)
	if !errors.Is(err, ErrPacketTooLarge) {
		t.Errorf("error = %v, want ErrPacketTooLarge", err)
	}

	err = WritePacket(io.Discard, make([]byte, 4), 10)
	if err == nil {
		t.Error("expected buffer too small error")
	}
}
