package site

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syednoorhussain2025/hopgen/collection"
	"github.com/syednoorhussain2025/hopgen/gallery"
	"github.com/syednoorhussain2025/hopgen/itinerary"
	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/review"
	"github.com/syednoorhussain2025/hopgen/snapshot"
	"github.com/syednoorhussain2025/hopgen/text"
)

const (
	masonryWidth   = 960.0
	masonryColumns = 3
	masonryGap     = 12.0
)

func (s *Site) RenderPlacePage(p *model.Place) snapshot.Node {
	var main []snapshot.Node

	header := elc("header", "hop-place-header")
	h1 := el("h1", txt(p.Name))
	if p.LocalName != "" {
		h1.Children = append(h1.Children, txt(" "))
		h1.Children = append(h1.Children, &snapshot.Elem{
			Name: "span",
			Attrs: []snapshot.Attr{
				{Name: "class", Value: "hop-local-name"},
				{Name: "lang", Value: "ur"},
				{Name: "dir", Value: "rtl"},
			},
			Children: []snapshot.Node{txt(p.LocalName)},
		})
	}
	header.Children = append(header.Children, h1)

	if len(p.Categories) > 0 {
		tags := elc("ul", "hop-tags")
		for _, c := range p.Categories {
			tags.Children = append(tags.Children, elc("li", "hop-tag", txt(c)))
		}
		header.Children = append(header.Children, tags)
	}

	header.Children = append(header.Children, elc("p", "hop-place-intro", txt(placeIntro(p))))
	main = append(main, header)

	if p.Summary != "" {
		main = append(main, elc("p", "hop-place-summary", txt(p.Summary)))
	}

	if a, ok := s.Bundle.ArticleForPlace(p.ID); ok && s.includeArticle(a) {
		main = append(main, elc("p", "hop-place-article",
			link(fmt.Sprintf(s.ArticlePagePattern, a.Slug), "Read the article: "+a.Title),
		))
	}

	if p.Location != nil {
		main = append(main, elc("p", "hop-place-location",
			txt(fmt.Sprintf("%.4f, %.4f", p.Location.Latitude, p.Location.Longitude)),
		))
	}

	if n := s.tripMentions(p); n != nil {
		main = append(main, n)
	}

	main = append(main, s.galleryNodes(p)...)
	main = append(main, s.reviewNodes(p)...)

	return s.htmlPage(p.Name, main...)
}

// placeIntro phrases the founding of the place as prose.
func placeIntro(p *model.Place) string {
	para := &text.Para{}
	para.StartSentence(p.Name)
	if p.Founded != nil && !p.Founded.IsUnknown() {
		para.Continue("was founded", p.Founded.When())
		if qual := p.Founded.Basis.Qualifier(); qual != "" {
			para.AppendClause("a", qual, "dating")
		}
		if era, ok := p.Era(); ok {
			para.AppendClause("in the", era.Name, "era")
		}
		if yrs, ok := p.Founded.YearsSince(); ok && yrs > 0 {
			para.AppendClause(fmt.Sprintf("%d years ago", yrs))
		}
	} else {
		para.Continue("has no recorded founding date")
	}
	para.FinishSentence()

	if p.Region != "" {
		para.StartSentence("It stands in", p.Region)
		para.FinishSentence()
	}

	return para.Text()
}

// tripMentions links to the itineraries that stop at the place, or nil
// when no trip visits it.
func (s *Site) tripMentions(p *model.Place) snapshot.Node {
	var mentions []*itinerary.Trip
	for _, t := range s.Bundle.SortedTrips() {
		if t.Visits(p.ID) {
			mentions = append(mentions, t)
		}
	}
	if len(mentions) == 0 {
		return nil
	}

	kids := []snapshot.Node{txt("Included in the ")}
	for i, t := range mentions {
		if i > 0 {
			if i == len(mentions)-1 {
				kids = append(kids, txt(" and "))
			} else {
				kids = append(kids, txt(", "))
			}
		}
		kids = append(kids, link(fmt.Sprintf(s.TripPagePattern, t.Slug), t.Title))
	}
	word := " itinerary."
	if len(mentions) > 1 {
		word = " itineraries."
	}
	kids = append(kids, txt(word))

	return elc("p", "hop-place-trips", kids...)
}

// galleryNodes lays out each photo collection of the place as a fixed
// masonry grid. Positions are baked into the page so it needs no script.
func (s *Site) galleryNodes(p *model.Place) []snapshot.Node {
	var nodes []snapshot.Node

	for _, c := range s.Bundle.CollectionsForPlace(p.ID) {
		if len(c.Photos) == 0 {
			continue
		}

		items := make([]gallery.Item, 0, len(c.Photos))
		for _, e := range c.Photos {
			items = append(items, gallery.Item{
				ID:     e.Photo.ID,
				Width:  e.Photo.Width,
				Height: e.Photo.Height,
			})
		}
		grid := gallery.Masonry(items, masonryWidth, masonryColumns, masonryGap)

		boxes := make(map[string]gallery.Box, len(grid.Boxes))
		for _, b := range grid.Boxes {
			boxes[b.ID] = b
		}

		sec := elc("section", "hop-gallery", el("h2", txt(c.Title)))
		wall := &snapshot.Elem{
			Name: "div",
			Attrs: []snapshot.Attr{
				{Name: "class", Value: "hop-masonry"},
				{Name: "style", Value: "position:relative;height:" + px(grid.Height)},
			},
		}
		for _, e := range c.Photos {
			b, ok := boxes[e.Photo.ID]
			if !ok {
				continue
			}
			wall.Children = append(wall.Children, masonryItem(e, b))
		}
		sec.Children = append(sec.Children, wall)
		nodes = append(nodes, sec)
	}

	return nodes
}

func masonryItem(e collection.Entry, b gallery.Box) snapshot.Node {
	cls := "hop-masonry-item"
	if e.Cover {
		cls += " hop-masonry-cover"
	}

	fig := &snapshot.Elem{
		Name: "figure",
		Attrs: []snapshot.Attr{
			{Name: "class", Value: cls},
			{Name: "style", Value: "position:absolute;left:" + px(b.X) + ";top:" + px(b.Y) +
				";width:" + px(b.Width) + ";height:" + px(b.Height)},
		},
		Children: []snapshot.Node{
			&snapshot.Elem{
				Name: "img",
				Attrs: []snapshot.Attr{
					{Name: "class", Value: "hop-masonry-img"},
					{Name: "src", Value: e.Photo.StoragePath, Raw: true},
					{Name: "alt", Value: e.Photo.Alt},
					{Name: "loading", Value: "lazy"},
				},
			},
		},
	}
	if e.Photo.Caption != "" {
		fig.Children = append(fig.Children, elc("figcaption", "hop-caption", txt(e.Photo.Caption)))
	}
	return fig
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// reviewNodes renders the review summary and the individual reviews, newest
// first. Review bodies were sanitised when the bundle was loaded so they are
// embedded as markup.
func (s *Site) reviewNodes(p *model.Place) []snapshot.Node {
	rs := s.Bundle.ReviewsForPlace(p.ID)
	if len(rs) == 0 {
		return nil
	}

	sum := review.Summarize(rs)
	sec := elc("section", "hop-reviews",
		el("h2", txt("Visitor reviews")),
		elc("p", "hop-review-summary",
			txt(fmt.Sprintf("Rated %.1f across %s.", sum.Average, text.CardinalWithUnit(sum.Count, "review", "reviews"))),
		),
	)

	for _, r := range rs {
		art := elc("article", "hop-review",
			elc("header", "hop-review-header",
				elc("span", "hop-review-author", txt(r.Author)),
				elc("span", "hop-review-rating", txt(strings.Repeat("★", r.Rating))),
				&snapshot.Elem{
					Name: "time",
					Attrs: []snapshot.Attr{
						{Name: "datetime", Value: r.CreatedAt.Format("2006-01-02")},
					},
					Children: []snapshot.Node{txt(r.CreatedAt.Format("2 January 2006"))},
				},
			),
			elc("div", "hop-review-body", snapshot.Raw(r.Body)),
		)
		sec.Children = append(sec.Children, art)
	}

	return []snapshot.Node{sec}
}
