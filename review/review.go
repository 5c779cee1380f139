package review

import (
	"sort"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Review is one visitor's review of a place. Body holds the limited rich
// text the review editor produces and must be sanitized before it enters
// any render path.
type Review struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"placeId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

var policy = bluemonday.UGCPolicy()

// SanitizeBody strips unsafe markup from a user-supplied review body,
// keeping the basic formatting the editor produces.
func SanitizeBody(s string) string {
	return policy.Sanitize(s)
}

// SanitizeAll sanitizes every review body in place.
func SanitizeAll(rs []Review) {
	for i := range rs {
		rs[i].Body = SanitizeBody(rs[i].Body)
	}
}

// Summary aggregates the ratings of a set of reviews.
type Summary struct {
	Count     int
	Average   float64
	Histogram [5]int // counts for ratings 1 through 5
}

// Summarize buckets ratings into a 1-5 histogram. Out-of-range ratings are
// clamped into the scale rather than dropped.
func Summarize(rs []Review) Summary {
	var s Summary
	if len(rs) == 0 {
		return s
	}

	total := 0
	for _, r := range rs {
		rating := r.Rating
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		s.Histogram[rating-1]++
		total += rating
		s.Count++
	}
	s.Average = float64(total) / float64(s.Count)
	return s
}

// SortNewestFirst orders reviews newest first, breaking ties by id so the
// order is stable across runs.
func SortNewestFirst(rs []Review) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.After(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

// ForPlace returns the reviews for one place, newest first.
func ForPlace(rs []Review, placeID string) []Review {
	var out []Review
	for _, r := range rs {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	SortNewestFirst(out)
	return out
}
