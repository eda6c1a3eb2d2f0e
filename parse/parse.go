package parse

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/abx-format/go-abx/debug"
	"github.com/abx-format/go-abx/ir"
	"github.com/abx-format/go-abx/token"
)

// Parse decodes an ABX document held in d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader decodes an ABX document from r in a single sequential
// pass.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	dec := &decoder{
		rd:        token.NewReader(r),
		multiRoot: pOpts.multiRoot,
	}
	return dec.run()
}

// docState is where the decoder is relative to the document markers.
type docState int

const (
	expectStart docState = iota
	inDocument
	closed
)

type decoder struct {
	rd      *token.Reader
	interns token.Interns

	// stack holds the open elements, innermost last. Its bottom-to-top
	// order is the ancestor chain from root to the innermost open
	// element. In multi-root mode the bottom entry is the synthetic
	// wrapper, which is never subject to tag matching.
	stack []*ir.Node
	base  int
	root  *ir.Node

	state     docState
	multiRoot bool
}

func (d *decoder) run() (*ir.Node, error) {
	if err := token.ReadMagic(d.rd); err != nil {
		return nil, err
	}
	if err := token.SkipHeaderExtension(d.rd); err != nil {
		return nil, err
	}
	if d.multiRoot {
		d.root = ir.New("root")
		d.stack = append(d.stack, d.root)
		d.base = 1
	}
	for d.state != closed {
		off := d.rd.Offset()
		b, err := d.rd.ReadByte()
		if err == io.EOF {
			// End of input between tokens is a clean terminal state.
			break
		}
		if err != nil {
			return nil, err
		}
		if err := d.step(b, off); err != nil {
			return nil, err
		}
	}
	if d.root == nil {
		return nil, ErrNoRoot
	}
	return d.root, nil
}

// atBase reports whether only the synthetic wrapper (or nothing, in
// single-root mode) remains open.
func (d *decoder) atBase() bool {
	return len(d.stack) == d.base
}

func (d *decoder) top() *ir.Node {
	return d.stack[len(d.stack)-1]
}

func (d *decoder) step(b byte, off int64) error {
	kind, typ := token.Split(b)
	if debug.Tokens() {
		fmt.Fprintf(os.Stderr, "abx: %6d %s %s depth=%d\n", off, kind, typ, len(d.stack))
	}
	switch kind {
	case token.KindStartDocument:
		if typ != token.TypeNull {
			return fmt.Errorf("%w: %s has %s payload at offset %d", ErrTokenType, kind, typ, off)
		}
		d.state = inDocument
		return nil

	case token.KindEndDocument:
		if typ != token.TypeNull {
			return fmt.Errorf("%w: %s has %s payload at offset %d", ErrTokenType, kind, typ, off)
		}
		if len(d.stack) > d.base {
			return fmt.Errorf("%w: %d open at offset %d", ErrUnclosedElements, len(d.stack)-d.base, off)
		}
		d.state = closed
		return nil

	case token.KindStartTag:
		if typ != token.TypeStringInterned {
			return fmt.Errorf("%w: %s has %s payload at offset %d", ErrTokenType, kind, typ, off)
		}
		name, err := d.readInterned()
		if err != nil {
			return err
		}
		el := ir.New(name)
		if len(d.stack) == 0 {
			if d.root != nil {
				return fmt.Errorf("%w: <%s> at offset %d", ErrMultipleRoots, name, off)
			}
			d.root = el
		} else {
			d.top().AppendChild(el)
		}
		d.stack = append(d.stack, el)
		return nil

	case token.KindEndTag:
		if typ != token.TypeStringInterned {
			return fmt.Errorf("%w: %s has %s payload at offset %d", ErrTokenType, kind, typ, off)
		}
		if d.atBase() {
			return fmt.Errorf("%w at offset %d", ErrUnexpectedEndTag, off)
		}
		name, err := d.readInterned()
		if err != nil {
			return err
		}
		if top := d.top(); top.Name != name {
			return fmt.Errorf("%w at offset %d: open <%s>, closing </%s>", ErrMismatchedEndTag, off, top.Name, name)
		}
		d.stack = d.stack[:len(d.stack)-1]
		return nil

	case token.KindText:
		v, err := d.rd.ReadString()
		if err != nil {
			return err
		}
		if allSpace(v) {
			return nil
		}
		if len(d.stack) == 0 {
			return fmt.Errorf("%w at offset %d", ErrTextOutside, off)
		}
		d.top().AppendText(v)
		return nil

	case token.KindAttribute:
		if d.atBase() {
			return fmt.Errorf("%w at offset %d", ErrAttributeOutside, off)
		}
		name, err := d.readInterned()
		if err != nil {
			return err
		}
		value, err := token.DecodeValue(d.rd, &d.interns, typ)
		if err != nil {
			return err
		}
		d.top().SetAttr(name, value)
		return nil

	default:
		return d.skip(kind, typ, off)
	}
}

// skip discards an unknown token kind on a best-effort basis: nothing
// for a null payload, otherwise the payload its type implies.
func (d *decoder) skip(kind token.Kind, typ token.Type, off int64) error {
	switch typ {
	case 0, token.TypeNull:
		return nil
	case token.TypeInt:
		_, err := d.rd.ReadInt32()
		return err
	case token.TypeString, token.TypeStringInterned:
		_, err := d.rd.ReadString()
		return err
	default:
		return fmt.Errorf("%w: %s with %s payload at offset %d", ErrTokenType, kind, typ, off)
	}
}

func (d *decoder) readInterned() (string, error) {
	before := d.interns.Len()
	v, err := d.rd.ReadInterned(&d.interns)
	if err != nil {
		return "", err
	}
	if debug.Interns() && d.interns.Len() > before {
		fmt.Fprintf(os.Stderr, "abx: intern %d = %q\n", before, v)
	}
	return v, nil
}

// allSpace reports whether v consists entirely of ASCII whitespace.
// Whitespace-only text tokens are discarded; this mirrors the C
// isspace set, not unicode.IsSpace.
func allSpace(v string) bool {
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			return false
		}
	}
	return true
}
