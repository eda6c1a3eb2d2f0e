package token

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader reads big-endian primitives from a forward-only byte source.
// Every read either succeeds and advances the cursor by exactly the
// consumed width or fails with ErrUnexpectedEOF. The only lookahead is
// a single byte: ReadByte followed by UnreadByte.
type Reader struct {
	br  *bufio.Reader
	off int64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// ReadByte reads one byte. At a token boundary it returns io.EOF
// unwrapped so callers can distinguish a clean end of stream from a
// truncated field.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	r.off++
	return b, nil
}

// UnreadByte puts back the byte last read with ReadByte.
func (r *Reader) UnreadByte() error {
	if err := r.br.UnreadByte(); err != nil {
		return err
	}
	r.off--
	return nil
}

func (r *Reader) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	m, err := io.ReadFull(r.br, buf)
	r.off += int64(m)
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, r.off)
	}
	return buf, nil
}

// Skip discards n bytes, failing with ErrUnexpectedEOF on underrun.
func (r *Reader) Skip(n int) error {
	m, err := r.br.Discard(n)
	r.off += int64(m)
	if err != nil {
		return fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, r.off)
	}
	return nil
}

// ReadInt16 reads the signed 16-bit form used for intern references,
// where -1 means "not yet interned, definition follows".
func (r *Reader) ReadInt16() (int16, error) {
	d, err := r.readFull(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(d)), nil
}

// ReadUint16 reads the unsigned 16-bit form used for run lengths.
func (r *Reader) ReadUint16() (uint16, error) {
	d, err := r.readFull(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	d, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(d)), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	d, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(d)), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	d, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(d)), nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	d, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(d)), nil
}

// ReadBytes reads a length-prefixed byte run: an unsigned 16-bit length
// followed by that many bytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	return r.readFull(int(n))
}

// ReadString reads a length-prefixed text run. The bytes pass through
// as text without character encoding validation.
func (r *Reader) ReadString() (string, error) {
	d, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// ReadInterned reads an intern reference and resolves it against in. A
// reference of -1 reads a following text run and defines it as the next
// table entry.
func (r *Reader) ReadInterned(in *Interns) (string, error) {
	ref, err := r.ReadInt16()
	if err != nil {
		return "", err
	}
	if ref == -1 {
		v, err := r.ReadString()
		if err != nil {
			return "", err
		}
		return in.Define(v), nil
	}
	return in.Lookup(ref)
}
