package collection

import (
	"fmt"
	"sort"

	"github.com/syednoorhussain2025/hopgen/model"
)

// Collection is an ordered set of photos curated for one place.
type Collection struct {
	ID      string
	Slug    string
	Title   string
	PlaceID string
	Photos  []Entry
}

// Entry is one photo's membership of a collection.
type Entry struct {
	Photo    model.Photo
	Position int
	Cover    bool
}

// Normalize sorts entries by position and renumbers them from zero. The
// sort is stable, so entries that arrived sharing a position keep their
// relative order.
func (c *Collection) Normalize() {
	sort.SliceStable(c.Photos, func(i, j int) bool {
		return c.Photos[i].Position < c.Photos[j].Position
	})
	for i := range c.Photos {
		c.Photos[i].Position = i
	}
}

// Move places the named photo at newIndex, shifting its neighbours while
// keeping their relative order. Indexes outside the collection are clamped.
func (c *Collection) Move(photoID string, newIndex int) error {
	from := c.index(photoID)
	if from == -1 {
		return fmt.Errorf("collection %s has no photo %s", c.ID, photoID)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(c.Photos)-1 {
		newIndex = len(c.Photos) - 1
	}

	e := c.Photos[from]
	c.Photos = append(c.Photos[:from], c.Photos[from+1:]...)
	c.Photos = append(c.Photos[:newIndex], append([]Entry{e}, c.Photos[newIndex:]...)...)
	for i := range c.Photos {
		c.Photos[i].Position = i
	}
	return nil
}

// SetCover marks the named photo as the collection's cover, clearing any
// previous cover so at most one entry carries the flag.
func (c *Collection) SetCover(photoID string) error {
	if c.index(photoID) == -1 {
		return fmt.Errorf("collection %s has no photo %s", c.ID, photoID)
	}
	for i := range c.Photos {
		c.Photos[i].Cover = c.Photos[i].Photo.ID == photoID
	}
	return nil
}

// Cover returns the cover photo, falling back to the first photo when none
// is marked.
func (c *Collection) Cover() (model.Photo, bool) {
	for _, e := range c.Photos {
		if e.Cover {
			return e.Photo, true
		}
	}
	if len(c.Photos) > 0 {
		return c.Photos[0].Photo, true
	}
	return model.Photo{}, false
}

func (c *Collection) index(photoID string) int {
	for i := range c.Photos {
		if c.Photos[i].Photo.ID == photoID {
			return i
		}
	}
	return -1
}
