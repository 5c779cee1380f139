package site

import (
	"fmt"
	"path"
	"sort"

	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/snapshot"
	"github.com/syednoorhussain2025/hopgen/text"
)

const (
	homeFeaturedMax = 6
	homeArticlesMax = 5
)

// WriteHomePage writes the front page: featured places with their cover
// photos and the most recently published articles.
func (s *Site) WriteHomePage(root string) error {
	main := []snapshot.Node{
		elc("section", "hop-hero",
			el("h1", txt(s.Name)),
			elc("p", "hop-hero-intro", txt(s.homeIntro())),
		),
	}

	featured := s.Bundle.FeaturedPlaces()
	if len(featured) == 0 {
		featured = s.Bundle.SortedPlaces()
	}
	if len(featured) > homeFeaturedMax {
		featured = featured[:homeFeaturedMax]
	}
	if len(featured) > 0 {
		grid := elc("div", "hop-featured-grid")
		for _, p := range featured {
			grid.Children = append(grid.Children, s.featuredCard(p))
		}
		main = append(main, elc("section", "hop-featured",
			el("h2", txt("Featured places")),
			grid,
		))
	}

	if latest := s.latestArticles(homeArticlesMax); len(latest) > 0 {
		ul := elc("ul", "hop-article-list")
		for _, a := range latest {
			li := el("li", link(fmt.Sprintf(s.ArticlePagePattern, a.Slug), a.Title))
			if p, ok := s.Bundle.Place(a.PlaceID); ok {
				li.Children = append(li.Children, txt(", "+p.Name))
			}
			ul.Children = append(ul.Children, li)
		}
		main = append(main, elc("section", "hop-latest",
			el("h2", txt("Latest articles")),
			ul,
		))
	}

	d := s.htmlPage("", main...)
	return s.writeDoc(d, root, "index.html")
}

func (s *Site) homeIntro() string {
	places := s.Bundle.SortedPlaces()
	regions := make(map[string]bool)
	for _, p := range places {
		if p.Region != "" {
			regions[p.Region] = true
		}
	}

	para := &text.Para{}
	para.StartSentence("A guide to the forts, tombs, mosques and ancient cities of Pakistan")
	para.FinishSentence()
	if len(places) > 0 {
		para.StartSentence("It currently covers", text.CardinalWithUnit(len(places), "place", "places"))
		if len(regions) > 0 {
			para.Continue("across", text.CardinalWithUnit(len(regions), "region", "regions"))
		}
		para.FinishSentence()
	}
	return para.Text()
}

func (s *Site) featuredCard(p *model.Place) snapshot.Node {
	card := elc("article", "hop-featured-card")

	if img, ok := s.coverImage(p); ok {
		card.Children = append(card.Children, img)
	}
	card.Children = append(card.Children, el("h3", link(fmt.Sprintf(s.PlacePagePattern, p.Slug), p.Name)))
	if p.Founded != nil {
		if w, ok := p.Founded.WhenYear(); ok {
			card.Children = append(card.Children, elc("p", "hop-card-facts", txt("Founded "+w)))
		}
	}

	return card
}

// coverImage returns the cover photo of the place's first collection.
func (s *Site) coverImage(p *model.Place) (snapshot.Node, bool) {
	for _, c := range s.Bundle.CollectionsForPlace(p.ID) {
		ph, ok := c.Cover()
		if !ok {
			continue
		}
		return &snapshot.Elem{
			Name: "img",
			Attrs: []snapshot.Attr{
				{Name: "class", Value: "hop-cover"},
				{Name: "src", Value: ph.StoragePath, Raw: true},
				{Name: "alt", Value: ph.Alt},
				{Name: "loading", Value: "lazy"},
			},
		}, true
	}
	return nil, false
}

// latestArticles returns the included articles, most recently published
// first. Drafts sort last since their publish time is zero.
func (s *Site) latestArticles(max int) []*model.Article {
	var as []*model.Article
	for _, a := range s.Bundle.SortedArticles() {
		if !s.includeArticle(a) {
			continue
		}
		as = append(as, a)
	}
	sort.SliceStable(as, func(i, j int) bool {
		return as[i].Published.After(as[j].Published)
	})
	if len(as) > max {
		as = as[:max]
	}
	return as
}

// WriteNotFoundPage writes the page served for unknown paths.
func (s *Site) WriteNotFoundPage(root string) error {
	d := s.htmlPage("Page not found",
		el("h1", txt("Page not found")),
		elc("p", "hop-notfound",
			txt("There is nothing at this address. Try the "),
			link(s.BaseURL, "front page"),
			txt(" or the "),
			link(path.Join(s.BaseURL, s.ListPlacesDir)+"/", "list of places"),
			txt("."),
		),
	)
	return s.writeDoc(d, root, s.NotFoundFileName)
}
