/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/
package chart

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/snapshot"
)

// Marker pins a labelled year onto the timeline, usually the founding year
// of a place.
type Marker struct {
	Year  int
	Label string
}

type TimelineOptions struct {
	Width      int // pixel width of the drawing
	From       int // first year shown, negative for BCE
	To         int // last year shown
	BandHeight int // height of the era band
}

// DefaultTimelineOptions returns options that show everything from the Indus
// Valley period onwards. The prehistoric era is clipped at the left edge.
func DefaultTimelineOptions() TimelineOptions {
	return TimelineOptions{
		Width:      1200,
		From:       -3500,
		To:         2030,
		BandHeight: 56,
	}
}

const (
	chartPadX  = 24.0
	chartPadY  = 18.0
	axisHeight = 28.0
	markerDrop = 10.0 // distance between a marker pin and the era band
)

// palette gives each era band a colour, cycling if there are ever more eras
// than colours.
var palette = []string{
	"#a67b5b", "#c09f6f", "#8a9a5b", "#6d8ba6",
	"#b0716d", "#7d6b91", "#c2a35c", "#708a81",
}

// EraTimeline draws the eras as coloured bands on a linear year scale with
// the markers pinned above the band. The result is a standalone SVG document
// that can equally be inlined into a page.
func EraTimeline(eras []model.Era, markers []Marker, o TimelineOptions) string {
	if o.Width <= 0 {
		o.Width = DefaultTimelineOptions().Width
	}
	if o.BandHeight <= 0 {
		o.BandHeight = DefaultTimelineOptions().BandHeight
	}
	if o.To <= o.From {
		o.To = o.From + 1
	}

	height := chartPadY*2 + markerDrop + float64(o.BandHeight) + axisHeight
	scale := (float64(o.Width) - chartPadX*2) / float64(o.To-o.From)
	x := func(year int) float64 {
		return chartPadX + float64(year-o.From)*scale
	}
	bandTop := chartPadY + markerDrop
	bandBottom := bandTop + float64(o.BandHeight)

	b := new(svgBuffer)
	b.Printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%.0f" viewBox="0 0 %d %.0f">`, o.Width, height, o.Width, height)
	b.indent++

	for i, era := range eras {
		if era.End < o.From || era.Start > o.To {
			continue
		}
		start, end := era.Start, era.End
		if start < o.From {
			start = o.From
		}
		if end > o.To {
			end = o.To
		}

		x0 := x(start)
		w := x(end) - x0
		title := fmt.Sprintf("%s, %s to %s", era.Name, yearLabel(era.Start), yearLabel(era.End))
		b.Printf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%d" fill="%s"><title>%s</title></rect>`,
			x0, bandTop, w, o.BandHeight, palette[i%len(palette)], snapshot.Escape(title))
		if w >= 70 {
			b.Printf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="13" fill="#ffffff" text-anchor="middle">%s</text>`,
				x0+w/2, bandTop+float64(o.BandHeight)/2+4, snapshot.Escape(era.Name))
		}
	}

	axisY := bandBottom + 6
	b.Printf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444444" stroke-width="1"/>`,
		chartPadX, axisY, float64(o.Width)-chartPadX, axisY)
	step := tickStep(o.To - o.From)
	for year := ceilTo(o.From, step); year <= o.To; year += step {
		tx := x(year)
		b.Printf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444444" stroke-width="1"/>`,
			tx, axisY, tx, axisY+5)
		b.Printf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#444444" text-anchor="middle">%s</text>`,
			tx, axisY+18, yearLabel(year))
	}

	sorted := make([]Marker, len(markers))
	copy(sorted, markers)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Label < sorted[j].Label
	})
	for _, m := range sorted {
		if m.Year < o.From || m.Year > o.To {
			continue
		}
		mx := x(m.Year)
		b.Printf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#222222" stroke-width="1"/>`,
			mx, chartPadY, mx, bandTop+6)
		b.Printf(`<circle cx="%.1f" cy="%.1f" r="3.5" fill="#222222"><title>%s</title></circle>`,
			mx, chartPadY, snapshot.Escape(m.Label+", "+yearLabel(m.Year)))
	}

	b.indent--
	b.Println(`</svg>`)

	return b.String()
}

func yearLabel(year int) string {
	if year < 0 {
		return strconv.Itoa(-year) + " BCE"
	}
	return strconv.Itoa(year)
}

// tickStep picks a round axis interval that keeps the labels readable over
// the span being drawn.
func tickStep(span int) int {
	switch {
	case span > 20000:
		return 5000
	case span > 4000:
		return 1000
	case span > 1500:
		return 500
	case span > 400:
		return 100
	default:
		return 50
	}
}

// ceilTo rounds year up to the next multiple of step.
func ceilTo(year, step int) int {
	r := year % step
	if r == 0 {
		return year
	}
	if year > 0 {
		return year + step - r
	}
	return year - r
}
