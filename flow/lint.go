package flow

import (
	"fmt"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Finding is a single lint diagnostic. Findings report conditions the
// renderer tolerates silently so the layout producer can fix them upstream.
type Finding struct {
	Code    string
	BlockID string
	Detail  string
}

func (f Finding) String() string {
	if f.BlockID == "" {
		return f.Code + ": " + f.Detail
	}
	return f.Code + ": block " + f.BlockID + ": " + f.Detail
}

// Lint inspects a layout against the master text and image set it will be
// rendered with. It never fails: every finding corresponds to a degraded
// rendering the renderer performs without error.
func Lint(l *Layout, masterText string, images ImageSet) []Finding {
	var fs []Finding
	if l == nil {
		return fs
	}

	textLen := utf8.RuneCountInString(masterText)

	closed := make(map[string]bool)
	current := ""
	currentType := ""
	bareSlots := make(map[string]string)

	for _, b := range l.Flow {
		if b.SectionInstanceKey != current {
			if current != "" {
				closed[current] = true
			}
			if closed[b.SectionInstanceKey] {
				fs = append(fs, Finding{
					Code:    "section-split",
					BlockID: b.ID,
					Detail:  fmt.Sprintf("section %q restarts after other sections and will render as a separate section", b.SectionInstanceKey),
				})
			}
			current = b.SectionInstanceKey
			currentType = b.SectionTypeID
		} else if b.SectionTypeID != currentType {
			fs = append(fs, Finding{
				Code:    "section-type-mixed",
				BlockID: b.ID,
				Detail:  fmt.Sprintf("section %q mixes type %q with %q; the first block's type wins", current, b.SectionTypeID, currentType),
			})
		}

		switch b.Type {
		case BlockText:
			if b.StartChar < 0 || b.EndChar > textLen || b.StartChar > b.EndChar {
				fs = append(fs, Finding{
					Code:    "text-range",
					BlockID: b.ID,
					Detail:  fmt.Sprintf("range [%d,%d) is outside the master text of %d characters and will be clamped", b.StartChar, b.EndChar, textLen),
				})
			}
			if b.MinHeightPx < 0 {
				fs = append(fs, Finding{
					Code:    "min-height",
					BlockID: b.ID,
					Detail:  fmt.Sprintf("negative min height %v is ignored", b.MinHeightPx),
				})
			}
		case BlockImage:
			composite := SlotKey(b.SectionInstanceKey, b.ImageSlotID)
			if img, ok := images[composite]; ok && img.StoragePath != "" {
				break
			}
			if img, ok := images[b.ImageSlotID]; ok && img.StoragePath != "" {
				if prev, seen := bareSlots[b.ImageSlotID]; seen && prev != b.SectionInstanceKey {
					fs = append(fs, Finding{
						Code:    "slot-shared",
						BlockID: b.ID,
						Detail:  fmt.Sprintf("bare slot %q already used by section %q; both sections render the same image", b.ImageSlotID, prev),
					})
				} else {
					bareSlots[b.ImageSlotID] = b.SectionInstanceKey
					fs = append(fs, Finding{
						Code:    "slot-fallback",
						BlockID: b.ID,
						Detail:  fmt.Sprintf("slot %q resolves only by its bare id; renaming it to %q avoids cross-section reuse", b.ImageSlotID, composite),
					})
				}
				break
			}
			detail := fmt.Sprintf("slot %q has no resolved image and will render as a placeholder", b.ImageSlotID)
			if sug := nearestSlot(composite, b.ImageSlotID, images); sug != "" {
				detail += fmt.Sprintf(", the closest known slot is %q", sug)
			}
			fs = append(fs, Finding{
				Code:    "slot-missing",
				BlockID: b.ID,
				Detail:  detail,
			})
		case BlockHeading, BlockCallout:
		default:
			fs = append(fs, Finding{
				Code:    "block-type",
				BlockID: b.ID,
				Detail:  fmt.Sprintf("unknown block type %q renders as an empty placeholder", b.Type),
			})
		}
	}

	if current != "" {
		closed[current] = true
	}

	return fs
}

// nearestSlot finds the known slot key most similar to an unresolved one,
// matching either the composite or the bare form.
func nearestSlot(composite, bare string, images ImageSet) string {
	keys := maps.Keys(images)
	slices.Sort(keys)

	oc := metrics.NewOverlapCoefficient()
	best := ""
	bestScore := 0.0
	for _, k := range keys {
		score := strutil.Similarity(composite, k, oc)
		if s := strutil.Similarity(bare, k, oc); s > score {
			score = s
		}
		if score > bestScore {
			best = k
			bestScore = score
		}
	}
	if bestScore >= 0.7 {
		return best
	}
	return ""
}
