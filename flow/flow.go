package flow

// Breakpoint identifies the responsive variant a layout was measured for.
type Breakpoint string

const (
	BreakpointDesktop Breakpoint = "desktop"
	BreakpointMobile  Breakpoint = "mobile"
)

// Section type identifiers recognised by the snapshot renderer. Any other
// value renders as a generic section.
const (
	SectionDefault     = "default"
	SectionAsideFigure = "aside-figure"
	SectionQuotation   = "quotation"
	SectionCarousel    = "carousel"
)

type BlockType string

const (
	BlockText    BlockType = "text"
	BlockImage   BlockType = "image"
	BlockHeading BlockType = "heading"
	BlockCallout BlockType = "callout"
)

// Layout is one responsive variant of an article's flow, as measured by the
// in-browser layout producer.
type Layout struct {
	Breakpoint Breakpoint `json:"breakpoint"`
	Flow       []Block    `json:"flow"`
}

// Block is a single entry in the flow, discriminated by Type. Blocks sharing
// a SectionInstanceKey are contiguous in the flow and render as one section.
type Block struct {
	ID                 string    `json:"blockId"`
	Type               BlockType `json:"type"`
	SectionTypeID      string    `json:"sectionTypeId"`
	SectionInstanceKey string    `json:"sectionInstanceKey"`

	// Text blocks reference a half-open character range of the master text.
	StartChar int `json:"startChar,omitempty"`
	EndChar   int `json:"endChar,omitempty"`

	// MinHeightPx pins the rendered height of a text block whose measured
	// height was constrained by an adjacent image.
	MinHeightPx float64 `json:"minHeightPx,omitempty"`

	// Image blocks name the slot an uploaded image was resolved into.
	ImageSlotID string `json:"imageSlotId,omitempty"`

	// Heading and callout blocks carry their text inline.
	Content string `json:"content,omitempty"`
}

// ImageRef is a resolved image. It is a passive value supplied by the image
// resolution step and looked up by slot key at render time.
type ImageRef struct {
	StoragePath string `json:"storagePath"`
	Alt         string `json:"alt,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

// ImageSet maps slot keys to resolved images. Keys are composite
// ("sectionInstanceKey:imageSlotId") or bare slot ids written by older
// layout producers. An entry with an empty StoragePath counts as unresolved.
type ImageSet map[string]ImageRef

// SlotKey returns the composite key for a slot within a section instance.
func SlotKey(sectionKey, slotID string) string {
	return sectionKey + ":" + slotID
}

// Resolve looks up the image for a slot, trying the composite key first and
// falling back to the bare slot id.
func (s ImageSet) Resolve(sectionKey, slotID string) (ImageRef, bool) {
	if img, ok := s[SlotKey(sectionKey, slotID)]; ok && img.StoragePath != "" {
		return img, true
	}
	if img, ok := s[slotID]; ok && img.StoragePath != "" {
		return img, true
	}
	return ImageRef{}, false
}
