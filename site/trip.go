package site

import (
	"fmt"
	"strconv"

	"github.com/syednoorhussain2025/hopgen/itinerary"
	"github.com/syednoorhussain2025/hopgen/snapshot"
	"github.com/syednoorhussain2025/hopgen/text"
)

func (s *Site) RenderTripPage(t *itinerary.Trip) snapshot.Node {
	main := []snapshot.Node{
		elc("header", "hop-trip-header",
			el("h1", txt(t.Title)),
			elc("p", "hop-trip-intro", txt(tripIntro(t))),
		),
	}

	for _, d := range t.Days {
		h2 := el("h2", txt("Day "+strconv.Itoa(d.Number)))
		if d.Minutes > 0 {
			h2.Children = append(h2.Children, txt(" "))
			h2.Children = append(h2.Children, elc("span", "hop-day-minutes", txt(fmtMinutes(d.Minutes))))
		}

		sec := elc("section", "hop-trip-day", h2)
		if len(d.Stops) == 0 {
			sec.Children = append(sec.Children, elc("p", "hop-day-free", txt("No stops planned.")))
		} else {
			ol := elc("ol", "hop-stops")
			for _, st := range d.Stops {
				ol.Children = append(ol.Children, s.stopItem(st))
			}
			sec.Children = append(sec.Children, ol)
		}
		main = append(main, sec)
	}

	return s.htmlPage(t.Title, main...)
}

func tripIntro(t *itinerary.Trip) string {
	para := &text.Para{}
	para.StartSentence(t.Title, "covers", text.CardinalWithUnit(t.StopCount(), "stop", "stops"))
	para.Continue("over", text.CardinalWithUnit(len(t.Days), "day", "days"))
	if m := t.Minutes(); m > 0 {
		para.AppendClause("with", fmtMinutes(m), "at the sites")
	}
	para.FinishSentence()
	return para.Text()
}

func (s *Site) stopItem(st itinerary.Stop) snapshot.Node {
	li := elc("li", "hop-stop")

	if p, ok := s.Bundle.Place(st.PlaceID); ok {
		li.Children = append(li.Children, link(fmt.Sprintf(s.PlacePagePattern, p.Slug), p.Name))
	} else {
		li.Children = append(li.Children, elc("span", "hop-stop-unknown", txt(st.PlaceID)))
	}

	if st.Minutes > 0 {
		li.Children = append(li.Children, txt(" "))
		li.Children = append(li.Children, elc("span", "hop-stop-minutes", txt(fmtMinutes(st.Minutes))))
	}
	if st.Note != "" {
		li.Children = append(li.Children, elc("p", "hop-stop-note", txt(st.Note)))
	}

	return li
}

func fmtMinutes(m int) string {
	if m < 60 {
		return text.CardinalWithUnit(m, "minute", "minutes")
	}
	h, r := m/60, m%60
	if r == 0 {
		return text.CardinalWithUnit(h, "hour", "hours")
	}
	return text.CardinalWithUnit(h, "hour", "hours") + " " + text.CardinalWithUnit(r, "minute", "minutes")
}
