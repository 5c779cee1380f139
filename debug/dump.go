package debug

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/syednoorhussain2025/hopgen/itinerary"
	"github.com/syednoorhussain2025/hopgen/model"
)

func DumpPlace(p *model.Place, w io.Writer) error {
	fmt.Fprintln(w, "ID:", p.ID)
	fmt.Fprintln(w, "Slug:", p.Slug)
	fmt.Fprintln(w, "Name:", p.Name)
	fmt.Fprintln(w, "LocalName:", p.LocalName)
	fmt.Fprintln(w, "Region:", p.Region)
	fmt.Fprintln(w, "Categories:", strings.Join(p.Categories, ", "))
	fmt.Fprintln(w, "Founded:", ObjectTitle(p.Founded))
	if e, ok := p.Era(); ok {
		fmt.Fprintln(w, "Era:", e.Name)
	} else {
		fmt.Fprintln(w, "Era: none")
	}
	if p.Location == nil {
		fmt.Fprintln(w, "Location: none")
	} else {
		fmt.Fprintf(w, "Location: %.5f, %.5f\n", p.Location.Latitude, p.Location.Longitude)
	}
	fmt.Fprintln(w, "Featured:", p.Featured)
	fmt.Fprintln(w, "Unknown:", p.Unknown)
	fmt.Fprintln(w, "Summary:", p.Summary)

	return nil
}

func DumpArticle(a *model.Article, w io.Writer) error {
	fmt.Fprintln(w, "ID:", a.ID)
	fmt.Fprintln(w, "Slug:", a.Slug)
	fmt.Fprintln(w, "Title:", a.Title)
	fmt.Fprintln(w, "PlaceID:", a.PlaceID)
	if a.IsPublished() {
		fmt.Fprintln(w, "Published:", a.Published.Format("2006-01-02"))
	} else {
		fmt.Fprintln(w, "Published: draft")
	}
	fmt.Fprintln(w, "MasterText:", len(a.MasterText), "bytes")

	fmt.Fprintln(w)

	if len(a.Layouts) == 0 {
		fmt.Fprintln(w, "LAYOUTS: none")
	} else {
		fmt.Fprintln(w, "LAYOUTS:")
		for i := range a.Layouts {
			l := &a.Layouts[i]
			sections := make(map[string]bool)
			for _, b := range l.Flow {
				sections[b.SectionInstanceKey] = true
			}
			fmt.Fprintf(w, " - %s: %d blocks in %d sections\n", l.Breakpoint, len(l.Flow), len(sections))
		}
	}

	fmt.Fprintln(w)

	if len(a.Images) == 0 {
		fmt.Fprintln(w, "IMAGES: none")
	} else {
		fmt.Fprintln(w, "IMAGES:")
		slots := make([]string, 0, len(a.Images))
		for slot := range a.Images {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slot := range slots {
			fmt.Fprintf(w, " - %s: %s\n", slot, a.Images[slot].StoragePath)
		}
	}

	return nil
}

func DumpTrip(t *itinerary.Trip, w io.Writer) error {
	fmt.Fprintln(w, "ID:", t.ID)
	fmt.Fprintln(w, "Slug:", t.Slug)
	fmt.Fprintln(w, "Title:", t.Title)
	fmt.Fprintln(w, "Stops:", t.StopCount())
	fmt.Fprintln(w, "Minutes:", t.Minutes())

	fmt.Fprintln(w)

	if len(t.Days) == 0 {
		fmt.Fprintln(w, "DAYS: none")
	} else {
		fmt.Fprintln(w, "DAYS:")
		for _, d := range t.Days {
			fmt.Fprintf(w, "  Day %d (%d minutes):\n", d.Number, d.Minutes)
			if len(d.Stops) == 0 {
				fmt.Fprintln(w, "   - no stops")
				continue
			}
			for _, s := range d.Stops {
				fmt.Fprintf(w, "   - %s, %d minutes\n", s.PlaceID, s.Minutes)
			}
		}
	}

	return nil
}
