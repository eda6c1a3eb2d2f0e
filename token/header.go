package token

import (
	"bytes"
	"fmt"
)

// Magic is the fixed 4-byte preamble of an ABX document.
var Magic = []byte{'A', 'B', 'X', 0}

// ReadMagic consumes and validates the magic preamble.
func ReadMagic(r *Reader) error {
	d, err := r.readFull(len(Magic))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMagic, err)
	}
	if !bytes.Equal(d, Magic) {
		return fmt.Errorf("%w: %q", ErrMagic, d)
	}
	return nil
}

// SkipHeaderExtension consumes vendor extension records following the
// magic preamble until it peeks a byte whose low nibble is the
// start-of-document kind, which it leaves unconsumed. Extension
// payloads are sized by the high-nibble type; string payloads are
// consumed without interning. Unknown types skip a number of bytes
// equal to the tag's low nibble.
func SkipHeaderExtension(r *Reader) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHeaderExtension, err)
		}
		kind, typ := Split(b)
		if kind == KindStartDocument {
			return r.UnreadByte()
		}
		switch typ {
		case TypeNull:
			err = nil
		case TypeInt, TypeFloat:
			err = r.Skip(4)
		case TypeLong, TypeDouble:
			err = r.Skip(8)
		case TypeString, TypeStringInterned:
			_, err = r.ReadString()
		case TypeBytesHex, TypeBytesBase64:
			_, err = r.ReadBytes()
		default:
			if n := int(kind); n > 0 {
				err = r.Skip(n)
			}
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHeaderExtension, err)
		}
	}
}
