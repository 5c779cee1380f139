package snapshot

import (
	"bytes"
	"io"
	"strings"
)

// Node is a fragment of snapshot markup.
type Node interface {
	WriteTo(w io.Writer) (int64, error)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces the four characters that are unsafe in snapshot markup.
// Single quotes are left alone to keep output byte-identical with the
// snapshots already published.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// Attr is a single attribute on an element. Values are escaped on write
// unless Raw is set, which exists for storage paths served verbatim.
type Attr struct {
	Name  string
	Value string
	Raw   bool
}

type Elem struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

var _ Node = (*Elem)(nil)

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func (e *Elem) WriteTo(w io.Writer) (int64, error) {
	bb := new(bytes.Buffer)
	bb.WriteString("<")
	bb.WriteString(e.Name)
	for _, a := range e.Attrs {
		bb.WriteString(" ")
		bb.WriteString(a.Name)
		bb.WriteString(`="`)
		if a.Raw {
			bb.WriteString(a.Value)
		} else {
			bb.WriteString(Escape(a.Value))
		}
		bb.WriteString(`"`)
	}
	bb.WriteString(">")

	if !voidElements[e.Name] {
		for _, c := range e.Children {
			c.WriteTo(bb)
		}
		bb.WriteString("</")
		bb.WriteString(e.Name)
		bb.WriteString(">")
	}

	return bb.WriteTo(w)
}

type Text struct {
	Content string
}

var _ Node = (*Text)(nil)

func (t *Text) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, Escape(t.Content))
	return int64(n), err
}

// Raw is prerendered markup written without escaping.
type Raw string

var _ Node = (Raw)("")

func (r Raw) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(r))
	return int64(n), err
}

// Fragment renders its nodes in order with no wrapper of its own.
type Fragment []Node

var _ Node = (Fragment)(nil)

func (f Fragment) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, n := range f {
		c, err := n.WriteTo(w)
		total += c
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Markup renders a node to a string.
func Markup(n Node) string {
	bb := new(bytes.Buffer)
	n.WriteTo(bb)
	return bb.String()
}
