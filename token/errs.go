package token

import "errors"

var (
	// ErrUnexpectedEOF reports a field declaring more bytes than the
	// source has left. io.EOF is returned, unwrapped, only by ReadByte
	// at a token boundary.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	ErrMagic           = errors.New("invalid magic number")
	ErrInternReference = errors.New("invalid intern reference")
	ErrHeaderExtension = errors.New("malformed header extension")
	ErrValueType       = errors.New("unsupported value type")
)
