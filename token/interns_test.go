package token

import (
	"bytes"
	"errors"
	"testing"
)

func TestInternsDefineLookup(t *testing.T) {
	in := &Interns{}
	for i, v := range []string{"a", "b", "c"} {
		if got := in.Define(v); got != v {
			t.Fatalf("Define(%q) = %q", v, got)
		}
		if in.Len() != i+1 {
			t.Fatalf("Len after %d defines: %d", i+1, in.Len())
		}
	}
	for i, want := range []string{"a", "b", "c"} {
		got, err := in.Lookup(int16(i))
		if err != nil || got != want {
			t.Fatalf("Lookup(%d) = %q, %v", i, got, err)
		}
	}
	for _, ref := range []int16{-1, -2, 3, 100} {
		if _, err := in.Lookup(ref); !errors.Is(err, ErrInternReference) {
			t.Errorf("Lookup(%d): got %v, want ErrInternReference", ref, err)
		}
	}
}

func TestReadInterned(t *testing.T) {
	// Define "tag" inline, then reference it by index 0.
	d := []byte{
		0xff, 0xff, // ref -1: definition follows
		0x00, 0x03, 't', 'a', 'g',
		0x00, 0x00, // ref 0
	}
	r := NewReader(bytes.NewReader(d))
	in := &Interns{}

	v, err := r.ReadInterned(in)
	if err != nil || v != "tag" {
		t.Fatalf("define: %q, %v", v, err)
	}
	if in.Len() != 1 {
		t.Fatalf("Len after define: %d", in.Len())
	}
	v, err = r.ReadInterned(in)
	if err != nil || v != "tag" {
		t.Fatalf("resolve: %q, %v", v, err)
	}
	if in.Len() != 1 {
		t.Fatalf("resolve must not define, Len: %d", in.Len())
	}
}

func TestReadInternedForwardReference(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x02}))
	in := &Interns{}
	if _, err := r.ReadInterned(in); !errors.Is(err, ErrInternReference) {
		t.Fatalf("got %v, want ErrInternReference", err)
	}
}
