// Package bundle loads authored content from a directory of JSON files and
// assembles it into the in-memory model the site is generated from.
package bundle

import (
	"fmt"
	"sort"

	"github.com/syednoorhussain2025/hopgen/collection"
	"github.com/syednoorhussain2025/hopgen/itinerary"
	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/review"
)

// Bundle is the loaded content set. Maps are keyed by canonical id.
type Bundle struct {
	Places      map[string]*model.Place
	Articles    map[string]*model.Article
	Collections map[string]*collection.Collection
	Trips       map[string]*itinerary.Trip
	Reviews     []review.Review
}

func New() *Bundle {
	return &Bundle{
		Places:      make(map[string]*model.Place),
		Articles:    make(map[string]*model.Article),
		Collections: make(map[string]*collection.Collection),
		Trips:       make(map[string]*itinerary.Trip),
	}
}

func (b *Bundle) Place(id string) (*model.Place, bool) {
	p, ok := b.Places[id]
	return p, ok
}

// SortedPlaces returns the places ordered by name.
func (b *Bundle) SortedPlaces() []*model.Place {
	ps := make([]*model.Place, 0, len(b.Places))
	for _, p := range b.Places {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Name != ps[j].Name {
			return ps[i].Name < ps[j].Name
		}
		return ps[i].ID < ps[j].ID
	})
	return ps
}

// FeaturedPlaces returns the places marked as featured, ordered by name.
func (b *Bundle) FeaturedPlaces() []*model.Place {
	var ps []*model.Place
	for _, p := range b.SortedPlaces() {
		if p.Featured {
			ps = append(ps, p)
		}
	}
	return ps
}

// SortedArticles returns the articles ordered by title.
func (b *Bundle) SortedArticles() []*model.Article {
	as := make([]*model.Article, 0, len(b.Articles))
	for _, a := range b.Articles {
		as = append(as, a)
	}
	sort.Slice(as, func(i, j int) bool {
		if as[i].Title != as[j].Title {
			return as[i].Title < as[j].Title
		}
		return as[i].Slug < as[j].Slug
	})
	return as
}

// ArticleForPlace returns the first article describing the place, in title
// order.
func (b *Bundle) ArticleForPlace(placeID string) (*model.Article, bool) {
	for _, a := range b.SortedArticles() {
		if a.PlaceID == placeID {
			return a, true
		}
	}
	return nil, false
}

// SortedTrips returns the itineraries ordered by title.
func (b *Bundle) SortedTrips() []*itinerary.Trip {
	ts := make([]*itinerary.Trip, 0, len(b.Trips))
	for _, t := range b.Trips {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Title != ts[j].Title {
			return ts[i].Title < ts[j].Title
		}
		return ts[i].ID < ts[j].ID
	})
	return ts
}

// CollectionsForPlace returns the photo collections for the place, ordered
// by title.
func (b *Bundle) CollectionsForPlace(placeID string) []*collection.Collection {
	var cs []*collection.Collection
	for _, c := range b.Collections {
		if c.PlaceID == placeID {
			cs = append(cs, c)
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Title != cs[j].Title {
			return cs[i].Title < cs[j].Title
		}
		return cs[i].ID < cs[j].ID
	})
	return cs
}

// ReviewsForPlace returns the reviews for the place, newest first.
func (b *Bundle) ReviewsForPlace(placeID string) []review.Review {
	return review.ForPlace(b.Reviews, placeID)
}

// Problem describes a defect found while validating the bundle.
type Problem struct {
	Code   string // kind of problem
	Ref    string // slug or id of the record at fault
	Detail string
}

func (p Problem) String() string {
	return p.Code + " " + p.Ref + ": " + p.Detail
}

// Validate cross-checks the references between records. It reports articles,
// collections, reviews and itinerary stops that name a place the bundle does
// not contain, duplicate slugs, and articles with no layouts.
func (b *Bundle) Validate() []Problem {
	var probs []Problem

	placeSlugs := make(map[string]string) // slug to id of first holder
	for _, p := range b.Places {
		if holder, seen := placeSlugs[p.Slug]; seen {
			probs = append(probs, Problem{
				Code:   "slug-duplicate",
				Ref:    p.ID,
				Detail: fmt.Sprintf("place slug %q already used by %s", p.Slug, holder),
			})
			continue
		}
		placeSlugs[p.Slug] = p.ID
	}

	articleSlugs := make(map[string]string)
	for _, a := range b.Articles {
		if holder, seen := articleSlugs[a.Slug]; seen {
			probs = append(probs, Problem{
				Code:   "slug-duplicate",
				Ref:    a.ID,
				Detail: fmt.Sprintf("article slug %q already used by %s", a.Slug, holder),
			})
		} else {
			articleSlugs[a.Slug] = a.ID
		}

		if _, ok := b.Places[a.PlaceID]; !ok {
			probs = append(probs, Problem{
				Code:   "place-unresolved",
				Ref:    a.Slug,
				Detail: fmt.Sprintf("article names unknown place %q", a.PlaceID),
			})
		}
		if len(a.Layouts) == 0 {
			probs = append(probs, Problem{
				Code:   "layout-missing",
				Ref:    a.Slug,
				Detail: "article has no layouts",
			})
		}
	}

	for _, c := range b.Collections {
		if _, ok := b.Places[c.PlaceID]; !ok {
			probs = append(probs, Problem{
				Code:   "place-unresolved",
				Ref:    c.Slug,
				Detail: fmt.Sprintf("collection names unknown place %q", c.PlaceID),
			})
		}
	}

	for _, r := range b.Reviews {
		if _, ok := b.Places[r.PlaceID]; !ok {
			probs = append(probs, Problem{
				Code:   "place-unresolved",
				Ref:    r.ID,
				Detail: fmt.Sprintf("review names unknown place %q", r.PlaceID),
			})
		}
	}

	for _, t := range b.Trips {
		for _, d := range t.Days {
			for _, s := range d.Stops {
				if _, ok := b.Places[s.PlaceID]; !ok {
					probs = append(probs, Problem{
						Code:   "place-unresolved",
						Ref:    t.Slug,
						Detail: fmt.Sprintf("day %d stop names unknown place %q", d.Number, s.PlaceID),
					})
				}
			}
		}
	}

	sort.Slice(probs, func(i, j int) bool {
		if probs[i].Code != probs[j].Code {
			return probs[i].Code < probs[j].Code
		}
		if probs[i].Ref != probs[j].Ref {
			return probs[i].Ref < probs[j].Ref
		}
		return probs[i].Detail < probs[j].Detail
	})

	return probs
}
