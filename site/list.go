package site

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/snapshot"
	"github.com/syednoorhussain2025/hopgen/text"
)

const cardSummaryRunes = 200

// WritePlaceListPages writes the place directory: one card per place,
// grouped by region, split across numbered pages when the directory
// outgrows a single page. Featured places carry a star after their name.
func (s *Site) WritePlaceListPages(root string) error {
	places := s.Bundle.SortedPlaces()

	var regions []string
	seen := make(map[string]bool)
	for _, p := range places {
		r := regionName(p)
		if !seen[r] {
			seen[r] = true
			regions = append(regions, r)
		}
	}
	sort.Strings(regions)

	priority := make(map[string]int, len(regions))
	for i, r := range regions {
		priority[r] = i
	}

	pn := NewPaginator()
	for _, p := range places {
		r := regionName(p)
		pn.AddEntryWithGroup(p.Name+"~"+p.ID, p.Name, s.placeCard(p), r, priority[r])
	}

	summary := "No places have been published yet."
	if len(places) > 0 {
		summary = fmt.Sprintf("%s across %s.",
			text.UpperFirst(text.CardinalWithUnit(len(places), "place", "places")),
			text.CardinalWithUnit(len(regions), "region", "regions"))
	}

	return pn.WritePages(s, root, s.ListPlacesDir, "Places", summary)
}

func regionName(p *model.Place) string {
	if p.Region == "" {
		return "Region unrecorded"
	}
	return p.Region
}

func (s *Site) placeCard(p *model.Place) snapshot.Node {
	name := p.Name
	if p.Featured {
		name += "★"
	}

	card := elc("article", "hop-place-card",
		el("h3", link(fmt.Sprintf(s.PlacePagePattern, p.Slug), name)),
	)

	var facts []string
	if p.Region != "" {
		facts = append(facts, p.Region)
	}
	if p.Founded != nil && !p.Founded.IsUnknown() {
		facts = append(facts, "founded "+p.Founded.When())
	}
	if len(p.Categories) > 0 {
		facts = append(facts, text.JoinList(p.Categories))
	}
	if len(facts) > 0 {
		card.Children = append(card.Children, elc("p", "hop-card-facts", txt(strings.Join(facts, ", "))))
	}

	if p.Summary != "" {
		summary := p.Summary
		if utf8.RuneCountInString(summary) > cardSummaryRunes {
			summary = text.SliceRunes(summary, 0, cardSummaryRunes) + "…"
		}
		card.Children = append(card.Children, elc("p", "hop-card-summary", txt(summary)))
	}

	return card
}
