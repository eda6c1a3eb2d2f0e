package token

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		payload []byte
		want    string
	}{
		{"null", TypeNull, nil, "null"},
		{"true", TypeBooleanTrue, nil, "true"},
		{"false", TypeBooleanFalse, nil, "false"},
		{"int", TypeInt, []byte{0x00, 0x00, 0x00, 0x05}, "5"},
		{"int negative", TypeInt, []byte{0xff, 0xff, 0xff, 0xfb}, "-5"},
		{"int hex", TypeIntHex, []byte{0x00, 0x00, 0x00, 0xff}, "ff"},
		// Negative hex values render in two's-complement form, as the
		// reference converter does.
		{"int hex negative", TypeIntHex, []byte{0xff, 0xff, 0xff, 0xff}, "ffffffff"},
		{"long", TypeLong, []byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, "1099511627776"},
		{"long hex", TypeLongHex, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "ffffffffffffffff"},
		{"string", TypeString, []byte{0x00, 0x02, 'h', 'i'}, "hi"},
		{"bytes hex", TypeBytesHex, []byte{0x00, 0x02, 0xde, 0xad}, "dead"},
		{"bytes base64", TypeBytesBase64, []byte{0x00, 0x02, 0xde, 0xad}, "3q0="},
		{"bytes base64 empty", TypeBytesBase64, []byte{0x00, 0x00}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.payload))
			in := &Interns{}
			got, err := DecodeValue(r, in, tt.typ)
			if err != nil {
				t.Fatalf("DecodeValue: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeValueInterned(t *testing.T) {
	in := &Interns{}
	in.Define("name")
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00}))
	got, err := DecodeValue(r, in, TypeStringInterned)
	if err != nil || got != "name" {
		t.Fatalf("got %q, %v", got, err)
	}
}

// Float text is the shortest round-trip form and implementation
// defined by the format; check numeric equivalence, not exact text.
func TestDecodeValueFloats(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x3f, 0xc0, 0x00, 0x00})) // float32 1.5
	got, err := DecodeValue(r, &Interns{}, TypeFloat)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	f, err := strconv.ParseFloat(got, 32)
	if err != nil || float32(f) != 1.5 {
		t.Fatalf("float round-trip: %q, %v", got, err)
	}

	r = NewReader(bytes.NewReader([]byte{0xbf, 0xf4, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})) // float64 -1.25
	got, err = DecodeValue(r, &Interns{}, TypeDouble)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	d, err := strconv.ParseFloat(got, 64)
	if err != nil || d != -1.25 {
		t.Fatalf("double round-trip: %q, %v", got, err)
	}
}

func TestDecodeValueUnsupported(t *testing.T) {
	for _, typ := range []Type{0, 14 << 4, 15 << 4} {
		r := NewReader(bytes.NewReader(nil))
		if _, err := DecodeValue(r, &Interns{}, typ); !errors.Is(err, ErrValueType) {
			t.Errorf("type %#x: got %v, want ErrValueType", byte(typ), err)
		}
	}
}

func TestDecodeValueUnderrun(t *testing.T) {
	for _, typ := range []Type{TypeInt, TypeLong, TypeFloat, TypeDouble, TypeString, TypeBytesHex, TypeBytesBase64} {
		r := NewReader(bytes.NewReader([]byte{0x01}))
		if _, err := DecodeValue(r, &Interns{}, typ); !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("type %s: got %v, want ErrUnexpectedEOF", typ, err)
		}
	}
}
