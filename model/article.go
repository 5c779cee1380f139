package model

import (
	"time"

	"github.com/syednoorhussain2025/hopgen/flow"
)

// Article is the published content for a place. It carries the master text
// and the measured layouts the snapshot renderer slices it with.
type Article struct {
	ID         string
	Slug       string
	Title      string
	PlaceID    string        // the place this article covers
	MasterText string        // the single text buffer all layouts slice into
	Layouts    []flow.Layout // one measured layout per breakpoint
	Images     flow.ImageSet // resolved images keyed by slot
	Published  time.Time     // zero while the article is a draft
}

// LayoutFor returns the layout measured for the given breakpoint.
func (a *Article) LayoutFor(bp flow.Breakpoint) (*flow.Layout, bool) {
	if a == nil {
		return nil, false
	}
	for i := range a.Layouts {
		if a.Layouts[i].Breakpoint == bp {
			return &a.Layouts[i], true
		}
	}
	return nil, false
}

func (a *Article) IsPublished() bool {
	return a != nil && !a.Published.IsZero()
}
