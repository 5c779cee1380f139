package itinerary

import (
	"sort"
)

// Stop is one planned visit within a trip.
type Stop struct {
	PlaceID string `json:"placeId"`
	Day     int    `json:"day"`     // 1-based day the stop is planned for
	Order   int    `json:"order"`   // position hint within the day
	Minutes int    `json:"minutes"` // planned time at the site
	Note    string `json:"note,omitempty"`
}

// Day is one finalized day of a trip.
type Day struct {
	Number  int
	Stops   []Stop
	Minutes int // total planned minutes across the day's stops
}

// Trip is the immutable view a finalized itinerary renders from.
type Trip struct {
	ID    string
	Slug  string
	Title string
	Days  []Day
}

// Minutes is the total planned time across all days.
func (t *Trip) Minutes() int {
	total := 0
	for _, d := range t.Days {
		total += d.Minutes
	}
	return total
}

// StopCount is the number of stops across all days.
func (t *Trip) StopCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Stops)
	}
	return n
}

// Visits reports whether the trip stops at the given place.
func (t *Trip) Visits(placeID string) bool {
	for _, d := range t.Days {
		for _, s := range d.Stops {
			if s.PlaceID == placeID {
				return true
			}
		}
	}
	return false
}

// Builder accumulates the stops of a trip. Every insertion re-sorts, so the
// builder's view is always the one Finalize will produce.
type Builder struct {
	id    string
	title string
	stops []Stop
}

func NewBuilder(id, title string) *Builder {
	return &Builder{id: id, title: title}
}

// Add inserts a stop and restores day and order sorting. The sort is stable
// so stops sharing a day and order keep their insertion order.
func (b *Builder) Add(s Stop) {
	b.stops = append(b.stops, s)
	sort.SliceStable(b.stops, func(i, j int) bool {
		if b.stops[i].Day != b.stops[j].Day {
			return b.stops[i].Day < b.stops[j].Day
		}
		return b.stops[i].Order < b.stops[j].Order
	})
}

// Stops returns the current stops in day order.
func (b *Builder) Stops() []Stop {
	out := make([]Stop, len(b.stops))
	copy(out, b.stops)
	return out
}

// Finalize buckets the stops into exactly the given number of days. Stops
// planned for a day outside the range are clamped into it, and days without
// stops stay in the trip so the rendered plan shows them empty.
func (b *Builder) Finalize(days int) *Trip {
	if days < 1 {
		days = 1
	}

	t := &Trip{
		ID:    b.id,
		Title: b.title,
		Days:  make([]Day, days),
	}
	for i := range t.Days {
		t.Days[i].Number = i + 1
	}

	for _, s := range b.stops {
		day := s.Day
		if day < 1 {
			day = 1
		}
		if day > days {
			day = days
		}
		d := &t.Days[day-1]
		d.Stops = append(d.Stops, s)
		d.Minutes += s.Minutes
	}

	return t
}
