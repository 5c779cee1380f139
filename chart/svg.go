package chart

import (
	"bytes"
	"fmt"
	"strings"
)

// svgBuffer accumulates lines of SVG markup. The first write error is
// latched and later writes become no-ops, so drawing code can stay free of
// error plumbing.
type svgBuffer struct {
	buf    bytes.Buffer
	indent int
	err    error
}

func (b *svgBuffer) Println(s string) {
	if b.err != nil {
		return
	}
	if _, err := b.buf.WriteString(strings.Repeat("  ", b.indent)); err != nil {
		b.err = err
		return
	}
	if _, err := b.buf.WriteString(s); err != nil {
		b.err = err
		return
	}
	if _, err := b.buf.WriteString("\n"); err != nil {
		b.err = err
		return
	}
}

func (b *svgBuffer) Printf(format string, args ...any) {
	b.Println(fmt.Sprintf(format, args...))
}

func (b *svgBuffer) String() string {
	return b.buf.String()
}
