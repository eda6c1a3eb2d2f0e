package encode

import (
	"io"
	"strings"

	"github.com/abx-format/go-abx/ir"
)

// Declaration is the XML declaration emitted once before the root.
const Declaration = "<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>"

type EncState struct {
	depth, indent int
	declaration   bool
	escape        bool

	Color func(ColorAttr, string) string
}

// Encode writes node and its subtree as indented XML text: a
// declaration line before the root, one element per line, text inline
// after the opening tag, a self-closing form when an element has
// neither text nor children.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:      2,
		declaration: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.declaration {
		decl := Declaration
		if es.Color != nil {
			decl = es.Color(DeclColor, decl)
		}
		if err := writeString(w, decl+"\n"); err != nil {
			return err
		}
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	ind := strings.Repeat(" ", es.depth*es.indent)
	if err := writeString(w, ind+es.color(SepColor, "<")+es.color(TagColor, node.Name)); err != nil {
		return err
	}
	for _, a := range node.Attrs {
		v := a.Value
		if es.escape {
			v = escapeAttr(v)
		}
		s := " " + es.color(AttrNameColor, a.Name) +
			es.color(SepColor, "=\"") +
			es.color(AttrValueColor, v) +
			es.color(SepColor, "\"")
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if len(node.Children) == 0 && node.Text == "" {
		return writeString(w, es.color(SepColor, "/>")+"\n")
	}
	if err := writeString(w, es.color(SepColor, ">")); err != nil {
		return err
	}
	if node.Text != "" {
		v := node.Text
		if es.escape {
			v = escapeText(v)
		}
		if err := writeString(w, es.color(TextColor, v)); err != nil {
			return err
		}
	}
	if len(node.Children) > 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		for _, c := range node.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeString(w, ind); err != nil {
			return err
		}
	}
	closing := es.color(SepColor, "</") + es.color(TagColor, node.Name) + es.color(SepColor, ">")
	return writeString(w, closing+"\n")
}

func (es *EncState) color(a ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(a, v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

func escapeAttr(v string) string {
	return attrEscaper.Replace(v)
}

func escapeText(v string) string {
	return textEscaper.Replace(v)
}
