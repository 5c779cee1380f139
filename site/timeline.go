package site

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/syednoorhussain2025/hopgen/chart"
	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/snapshot"
	"github.com/syednoorhussain2025/hopgen/text"
)

// WriteTimelinePages writes the era timeline: an SVG chart of the eras with
// a pin for every dated place, and an index listing the places of each era.
func (s *Site) WriteTimelinePages(root string) error {
	places := s.Bundle.SortedPlaces()

	svg := chart.EraTimeline(model.Eras, chart.PlaceMarkers(places), chart.DefaultTimelineOptions())
	if err := s.writeString(root, filepath.Join(s.TimelineDir, s.ChartFileName), svg); err != nil {
		return fmt.Errorf("write era chart: %w", err)
	}

	buckets := make(map[string][]*model.Place)
	var undated []*model.Place
	for _, p := range places {
		if e, ok := p.Era(); ok {
			buckets[e.Name] = append(buckets[e.Name], p)
		} else {
			undated = append(undated, p)
		}
	}

	main := []snapshot.Node{
		el("h1", txt("Timeline")),
		elc("figure", "hop-era-chart", snapshot.Raw(svg)),
	}

	for _, e := range model.Eras {
		ps := buckets[e.Name]
		if len(ps) == 0 {
			continue
		}

		sec := elc("section", "hop-era",
			el("h2",
				txt(e.Name),
				txt(" "),
				elc("span", "hop-era-span", txt(yearName(e.Start)+" to "+yearName(e.End))),
			),
		)
		ul := elc("ul", "hop-era-places")
		for _, p := range ps {
			li := el("li", link(fmt.Sprintf(s.PlacePagePattern, p.Slug), p.Name))
			if p.Founded != nil {
				if w, ok := p.Founded.WhenYear(); ok {
					li.Children = append(li.Children, txt(", founded "+w))
				}
			}
			ul.Children = append(ul.Children, li)
		}
		sec.Children = append(sec.Children, ul)
		main = append(main, sec)
	}

	if len(undated) > 0 {
		sec := elc("section", "hop-era",
			el("h2", txt("Undated")),
			elc("p", "hop-era-note",
				txt(text.UpperFirst(text.CardinalWithUnit(len(undated), "place has", "places have"))+" no founding year on record."),
			),
		)
		ul := elc("ul", "hop-era-places")
		for _, p := range undated {
			ul.Children = append(ul.Children, el("li", link(fmt.Sprintf(s.PlacePagePattern, p.Slug), p.Name)))
		}
		sec.Children = append(sec.Children, ul)
		main = append(main, sec)
	}

	d := s.htmlPage("Timeline", main...)
	return s.writeDoc(d, root, filepath.Join(s.TimelineDir, "index.html"))
}

func yearName(y int) string {
	if y < 0 {
		return strconv.Itoa(-y) + " BCE"
	}
	return strconv.Itoa(y)
}
