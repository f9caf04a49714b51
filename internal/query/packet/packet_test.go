package packet

import (
	"encoding/binary"
	"testing"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	w := Get()
	defer w.Put()

	_ = w.WriteByte(0x01)
	w.WriteBool(true)
	w.WriteInt(-42)
	w.WriteUint(0xFF00ABCD)
	w.WriteDouble(-12.5)
	w.WriteString("MagicDamageFire")
	w.WriteString("призрак 👻")

	r := NewReader(w.Bytes())

	if b, err := r.ReadByte(); err != nil || b != 0x01 {
		t.Fatalf("ReadByte = %v, %v; want 0x01", b, err)
	}
	if v, err := r.ReadBool(); err != nil || !v {
		t.Fatalf("ReadBool = %v, %v; want true", v, err)
	}
	if v, err := r.ReadInt(); err != nil || v != -42 {
		t.Fatalf("ReadInt = %v, %v; want -42", v, err)
	}
	if v, err := r.ReadUint(); err != nil || v != 0xFF00ABCD {
		t.Fatalf("ReadUint = %X, %v; want FF00ABCD", v, err)
	}
	if v, err := r.ReadDouble(); err != nil || v != -12.5 {
		t.Fatalf("ReadDouble = %v, %v; want -12.5", v, err)
	}
	if s, err := r.ReadString(); err != nil || s != "MagicDamageFire" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	if s, err := r.ReadString(); err != nil || s != "призрак 👻" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining bytes, got %d", r.Remaining())
	}
}

func TestReader_ShortData(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})

	if _, err := r.ReadInt(); err == nil {
		t.Error("ReadInt on 2 bytes should fail")
	}
	if _, err := r.ReadDouble(); err == nil {
		t.Error("ReadDouble on 2 bytes should fail")
	}
	if _, err := NewReader([]byte{'a', 0}).ReadString(); err == nil {
		t.Error("unterminated string should fail")
	}
	if _, err := NewReader(nil).ReadByte(); err == nil {
		t.Error("ReadByte on empty data should fail")
	}
}

func TestReader_ReadCount(t *testing.T) {
	data := make([]byte, 4+8)
	binary.LittleEndian.PutUint32(data, 2)

	n, err := NewReader(data).ReadCount(10, 4)
	if err != nil || n != 2 {
		t.Fatalf("ReadCount = %d, %v; want 2", n, err)
	}

	if _, err := NewReader(data).ReadCount(1, 4); err == nil {
		t.Error("count above limit should fail")
	}
	if _, err := NewReader(data).ReadCount(10, 8); err == nil {
		t.Error("count exceeding remaining bytes should fail")
	}

	binary.LittleEndian.PutUint32(data, 0xFFFFFFFF)
	if _, err := NewReader(data).ReadCount(10, 1); err == nil {
		t.Error("negative count should fail")
	}
}
