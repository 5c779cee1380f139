package snapshot

import (
	"strconv"
	"strings"

	"github.com/syednoorhussain2025/hopgen/flow"
	"github.com/syednoorhussain2025/hopgen/text"
)

// Default class names for the elements a caller can restyle. Everything else
// carries a fixed class.
const (
	DefaultSectionClass = "hop-section"
	DefaultTextClass    = "hop-text"
	DefaultImageClass   = "hop-img"

	// AsideClass replaces the generic section class on aside-figure
	// sections; the two tokens never appear together.
	AsideClass = "hop-aside"

	ArticleClass  = "hop-article"
	PublishedAttr = "data-hop-published"
	TextLockAttr  = "data-text-lock"
)

const (
	paraClass          = "hop-p"
	headingClass       = "hop-heading"
	calloutClass       = "hop-callout"
	figureClass        = "hop-figure"
	figureMissingClass = "hop-figure-missing"
	captionClass       = "hop-caption"
	quoteClass         = "hop-quote"
	carouselClass      = "hop-carousel"
	stripClass         = "hop-strip"
	stripItemClass     = "hop-strip-item"
	gapClass           = "hop-gap"
	emptyClass         = "hop-empty"
)

const sectionGapPx = 64

// ClassFunc chooses the class attribute for a rendered element. It receives
// the block that produced the element and the layout's breakpoint so a page
// layer can route design-system classes per breakpoint.
type ClassFunc func(b flow.Block, bp flow.Breakpoint) string

// Input carries everything one render needs. The class funcs are optional;
// nil falls back to the fixed defaults.
type Input struct {
	Layout     *flow.Layout
	MasterText string
	Images     flow.ImageSet

	SectionClass ClassFunc
	TextClass    ClassFunc
	ImageClass   ClassFunc
}

// Render serialises one layout of a published article into a static HTML
// snapshot. It is pure: the same input always yields the same markup, no
// input is mutated, and malformed blocks degrade to placeholders rather
// than failing.
//
// The flow is consumed in a single pass. Blocks accumulate into the open
// section until the instance key changes, at which point the section is
// flushed; a key that reappears later opens a fresh section rather than
// merging with the earlier one.
func Render(in Input) string {
	root := &Elem{
		Name: "div",
		Attrs: []Attr{
			{Name: "class", Value: ArticleClass},
			{Name: PublishedAttr, Value: "1"},
		},
	}

	var cur *section
	flush := func() {
		if cur == nil {
			return
		}
		if len(root.Children) > 0 {
			root.Children = append(root.Children, gapNode())
		}
		root.Children = append(root.Children, cur.element(in))
		cur = nil
	}

	if in.Layout != nil {
		for _, b := range in.Layout.Flow {
			if cur == nil || b.SectionInstanceKey != cur.key {
				flush()
				cur = &section{key: b.SectionInstanceKey, typ: b.SectionTypeID, first: b}
			}
			cur.add(in, b)
		}
	}
	flush()

	return Markup(root)
}

// section accumulates the blocks of one section instance. The first block
// fixes the instance's type and supplies the identity the class funcs see.
type section struct {
	key   string
	typ   string
	first flow.Block

	children []Node   // generic flow children
	figure   Node     // aside-figure: the pinned figure
	texts    []Node   // aside-figure: text fragments, emitted after the figure
	quote    []string // quotation: flattened text fragments
	items    []Node   // carousel: strip items
}

func (s *section) add(in Input, b flow.Block) {
	switch b.Type {
	case flow.BlockText:
		content := text.SliceRunes(in.MasterText, b.StartChar, b.EndChar)
		if s.typ == flow.SectionQuotation {
			s.addQuote(content)
			return
		}
		s.place(textNode(in, b, content, s.typ))

	case flow.BlockImage:
		fig := figureNode(in, b)
		switch s.typ {
		case flow.SectionAsideFigure:
			// First figure wins; later images demote to ordinary children.
			if s.figure == nil {
				s.figure = fig
			} else {
				s.children = append(s.children, fig)
			}
		case flow.SectionCarousel:
			s.items = append(s.items, &Elem{
				Name:     "div",
				Attrs:    []Attr{{Name: "class", Value: stripItemClass}},
				Children: []Node{fig},
			})
		default:
			s.children = append(s.children, fig)
		}

	case flow.BlockHeading:
		if s.typ == flow.SectionQuotation {
			s.addQuote(b.Content)
			return
		}
		s.place(&Elem{
			Name:     "h3",
			Attrs:    []Attr{{Name: "class", Value: headingClass}},
			Children: []Node{&Text{Content: b.Content}},
		})

	case flow.BlockCallout:
		if s.typ == flow.SectionQuotation {
			s.addQuote(b.Content)
			return
		}
		s.place(&Elem{
			Name:     "div",
			Attrs:    []Attr{{Name: "class", Value: calloutClass}},
			Children: []Node{&Text{Content: b.Content}},
		})

	default:
		// Unknown block types from newer layout producers render as an
		// empty placeholder instead of failing the snapshot.
		s.place(&Elem{Name: "div", Attrs: []Attr{{Name: "class", Value: emptyClass}}})
	}
}

// place routes a non-image child into the accumulator for the section type.
func (s *section) place(n Node) {
	if s.typ == flow.SectionAsideFigure {
		s.texts = append(s.texts, n)
		return
	}
	s.children = append(s.children, n)
}

func (s *section) addQuote(content string) {
	content = text.RemoveRedundantWhitespace(content)
	if content == "" {
		return
	}
	s.quote = append(s.quote, content)
}

// element renders the accumulated section into its wrapper.
func (s *section) element(in Input) Node {
	sec := &Elem{
		Name:  "section",
		Attrs: []Attr{{Name: "class", Value: in.sectionClass(s.first)}},
	}

	switch s.typ {
	case flow.SectionAsideFigure:
		// The figure leads regardless of where it sat in the flow.
		if s.figure != nil {
			sec.Children = append(sec.Children, s.figure)
		}
		sec.Children = append(sec.Children, s.texts...)
		sec.Children = append(sec.Children, s.children...)

	case flow.SectionQuotation:
		// Quote text wins over any stray children; children render only
		// when no quote-bearing block contributed text.
		if len(s.quote) > 0 {
			sec.Children = append(sec.Children, &Elem{
				Name:     "div",
				Attrs:    []Attr{{Name: "class", Value: quoteClass}},
				Children: []Node{&Text{Content: strings.Join(s.quote, " ")}},
			})
		} else {
			sec.Children = append(sec.Children, s.children...)
		}

	case flow.SectionCarousel:
		if len(s.items) > 0 {
			sec.Children = append(sec.Children, &Elem{
				Name:     "div",
				Attrs:    []Attr{{Name: "class", Value: stripClass}},
				Children: s.items,
			})
		}
		sec.Children = append(sec.Children, s.children...)

	default:
		sec.Children = s.children
	}

	return sec
}

func textNode(in Input, b flow.Block, content string, sectionType string) Node {
	// Aside-figure text is sized by its image, so the height lock recorded
	// by the layout producer is ignored there.
	lock := b.MinHeightPx > 0 && sectionType != flow.SectionAsideFigure

	style := "user-select:text"
	if lock {
		style += ";min-height:" + strconv.FormatFloat(b.MinHeightPx, 'f', -1, 64) + "px"
	}

	attrs := []Attr{
		{Name: "class", Value: in.textClass(b)},
		{Name: "style", Value: style},
	}
	if lock {
		attrs = append(attrs, Attr{Name: TextLockAttr, Value: "image"})
	}

	div := &Elem{Name: "div", Attrs: attrs}
	for _, p := range text.SplitParagraphs(content) {
		div.Children = append(div.Children, &Elem{
			Name:     "p",
			Attrs:    []Attr{{Name: "class", Value: paraClass}},
			Children: []Node{&Text{Content: p}},
		})
	}
	return div
}

func figureNode(in Input, b flow.Block) Node {
	img, ok := in.Images.Resolve(b.SectionInstanceKey, b.ImageSlotID)
	if !ok {
		// The slot id stays visible so a half-resolved article can be
		// diagnosed from its rendered page.
		return &Elem{
			Name:     "figure",
			Attrs:    []Attr{{Name: "class", Value: figureMissingClass}},
			Children: []Node{&Text{Content: b.ImageSlotID}},
		}
	}

	fig := &Elem{
		Name:  "figure",
		Attrs: []Attr{{Name: "class", Value: figureClass}},
		Children: []Node{
			&Elem{
				Name: "img",
				Attrs: []Attr{
					{Name: "class", Value: in.imageClass(b)},
					{Name: "src", Value: img.StoragePath, Raw: true},
					{Name: "alt", Value: img.Alt},
					{Name: "loading", Value: "lazy"},
					{Name: "decoding", Value: "async"},
					{Name: "draggable", Value: "false"},
				},
			},
		},
	}
	if img.Caption != "" {
		fig.Children = append(fig.Children, &Elem{
			Name:     "figcaption",
			Attrs:    []Attr{{Name: "class", Value: captionClass}},
			Children: []Node{&Text{Content: img.Caption}},
		})
	}
	return fig
}

func gapNode() Node {
	return &Elem{
		Name: "div",
		Attrs: []Attr{
			{Name: "class", Value: gapClass},
			{Name: "style", Value: "height:" + strconv.Itoa(sectionGapPx) + "px"},
		},
	}
}

func (in Input) breakpoint() flow.Breakpoint {
	if in.Layout == nil {
		return ""
	}
	return in.Layout.Breakpoint
}

func (in Input) sectionClass(b flow.Block) string {
	cls := DefaultSectionClass
	if b.SectionTypeID == flow.SectionCarousel {
		cls += " " + carouselClass
	}
	if in.SectionClass != nil {
		cls = in.SectionClass(b, in.breakpoint())
	}
	if b.SectionTypeID == flow.SectionAsideFigure {
		return asideClassOf(cls)
	}
	return cls
}

// asideClassOf strips the generic section token from a class list and
// ensures the aside token appears exactly once.
func asideClassOf(cls string) string {
	toks := strings.Fields(cls)
	out := toks[:0]
	for _, tok := range toks {
		if tok == DefaultSectionClass || tok == AsideClass {
			continue
		}
		out = append(out, tok)
	}
	out = append(out, AsideClass)
	return strings.Join(out, " ")
}

func (in Input) textClass(b flow.Block) string {
	if in.TextClass != nil {
		return in.TextClass(b, in.breakpoint())
	}
	return DefaultTextClass
}

func (in Input) imageClass(b flow.Block) string {
	if in.ImageClass != nil {
		return in.ImageClass(b, in.breakpoint())
	}
	return DefaultImageClass
}
