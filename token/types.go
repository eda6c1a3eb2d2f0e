package token

import "fmt"

// Kind is the structural kind of a token, held in the low nibble of
// the token byte.
type Kind byte

const (
	KindStartDocument Kind = 0
	KindEndDocument   Kind = 1
	KindStartTag      Kind = 2
	KindEndTag        Kind = 3
	KindText          Kind = 4
	KindAttribute     Kind = 15
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindStartDocument: "start-document",
		KindEndDocument:   "end-document",
		KindStartTag:      "start-tag",
		KindEndTag:        "end-tag",
		KindText:          "text",
		KindAttribute:     "attribute",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

// Type is the payload type of a token, held in the high nibble of the
// token byte.
type Type byte

const (
	TypeNull           Type = 1 << 4
	TypeString         Type = 2 << 4
	TypeStringInterned Type = 3 << 4
	TypeBytesHex       Type = 4 << 4
	TypeBytesBase64    Type = 5 << 4
	TypeInt            Type = 6 << 4
	TypeIntHex         Type = 7 << 4
	TypeLong           Type = 8 << 4
	TypeLongHex        Type = 9 << 4
	TypeFloat          Type = 10 << 4
	TypeDouble         Type = 11 << 4
	TypeBooleanTrue    Type = 12 << 4
	TypeBooleanFalse   Type = 13 << 4
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TypeNull:           "null",
		TypeString:         "string",
		TypeStringInterned: "interned-string",
		TypeBytesHex:       "bytes-hex",
		TypeBytesBase64:    "bytes-base64",
		TypeInt:            "int",
		TypeIntHex:         "int-hex",
		TypeLong:           "long",
		TypeLongHex:        "long-hex",
		TypeFloat:          "float",
		TypeDouble:         "double",
		TypeBooleanTrue:    "boolean-true",
		TypeBooleanFalse:   "boolean-false",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("type(0x%02x)", byte(t))
}

// Split separates a token byte into its kind and payload type.
func Split(b byte) (Kind, Type) {
	return Kind(b & 0x0f), Type(b & 0xf0)
}
