package token

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	d := []byte{
		0x12,                   // byte
		0xff, 0xff,             // int16 -1
		0xff, 0xff,             // uint16 65535
		0xff, 0xff, 0xff, 0xfb, // int32 -5
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a, // int64 42
		0x40, 0x60, 0x00, 0x00, // float32 3.5
		0xbf, 0xf4, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // float64 -1.25
		0x00, 0x02, 'h', 'i', // string "hi"
	}
	r := NewReader(bytes.NewReader(d))

	b, err := r.ReadByte()
	if err != nil || b != 0x12 {
		t.Fatalf("ReadByte: %v %#x", err, b)
	}
	i16, err := r.ReadInt16()
	if err != nil || i16 != -1 {
		t.Fatalf("ReadInt16: %v %d", err, i16)
	}
	u16, err := r.ReadUint16()
	if err != nil || u16 != 65535 {
		t.Fatalf("ReadUint16: %v %d", err, u16)
	}
	i32, err := r.ReadInt32()
	if err != nil || i32 != -5 {
		t.Fatalf("ReadInt32: %v %d", err, i32)
	}
	i64, err := r.ReadInt64()
	if err != nil || i64 != 42 {
		t.Fatalf("ReadInt64: %v %d", err, i64)
	}
	f32, err := r.ReadFloat32()
	if err != nil || f32 != 3.5 {
		t.Fatalf("ReadFloat32: %v %v", err, f32)
	}
	f64, err := r.ReadFloat64()
	if err != nil || f64 != -1.25 {
		t.Fatalf("ReadFloat64: %v %v", err, f64)
	}
	s, err := r.ReadString()
	if err != nil || s != "hi" {
		t.Fatalf("ReadString: %v %q", err, s)
	}
	if r.Offset() != int64(len(d)) {
		t.Fatalf("offset %d, consumed %d", r.Offset(), len(d))
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Fatalf("expected io.EOF at end, got %v", err)
	}
}

func TestReaderShortRead(t *testing.T) {
	reads := []struct {
		name string
		n    int // bytes the read needs
		read func(r *Reader) error
	}{
		{"int16", 2, func(r *Reader) error { _, err := r.ReadInt16(); return err }},
		{"uint16", 2, func(r *Reader) error { _, err := r.ReadUint16(); return err }},
		{"int32", 4, func(r *Reader) error { _, err := r.ReadInt32(); return err }},
		{"int64", 8, func(r *Reader) error { _, err := r.ReadInt64(); return err }},
		{"float32", 4, func(r *Reader) error { _, err := r.ReadFloat32(); return err }},
		{"float64", 8, func(r *Reader) error { _, err := r.ReadFloat64(); return err }},
		{"skip", 4, func(r *Reader) error { return r.Skip(4) }},
	}
	for _, rt := range reads {
		for n := 0; n < rt.n; n++ {
			r := NewReader(bytes.NewReader(make([]byte, n)))
			err := rt.read(r)
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("%s with %d bytes: got %v, want ErrUnexpectedEOF", rt.name, n, err)
			}
		}
	}
}

func TestReaderStringUnderrun(t *testing.T) {
	// Length prefix declares 5 bytes, only 2 follow.
	r := NewReader(bytes.NewReader([]byte{0x00, 0x05, 'a', 'b'}))
	_, err := r.ReadString()
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("got %v, want ErrUnexpectedEOF", err)
	}
}

func TestReaderUnreadByte(t *testing.T) {
	r := NewReader(strings.NewReader("xy"))
	b, err := r.ReadByte()
	if err != nil || b != 'x' {
		t.Fatalf("ReadByte: %v %q", err, b)
	}
	if err := r.UnreadByte(); err != nil {
		t.Fatalf("UnreadByte: %v", err)
	}
	if r.Offset() != 0 {
		t.Fatalf("offset after unread: %d", r.Offset())
	}
	b, err = r.ReadByte()
	if err != nil || b != 'x' {
		t.Fatalf("reread: %v %q", err, b)
	}
}
