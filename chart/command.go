/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package chart

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/syednoorhussain2025/hopgen/bundle"
	"github.com/syednoorhussain2025/hopgen/logging"
	"github.com/syednoorhussain2025/hopgen/model"
)

var chartopts struct {
	contentDir     string
	outputFilename string
	fromYear       int
	toYear         int
	width          int
}

var Command = &cli.Command{
	Name:   "chart",
	Usage:  "Draw the era timeline with the founding year of every place pinned onto it.",
	Action: chartCmd,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "Directory holding the content bundle",
			Destination: &chartopts.contentDir,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output SVG filename, otherwise the chart is printed to stdout",
			Destination: &chartopts.outputFilename,
		},
		&cli.IntFlag{
			Name:        "from",
			Usage:       "First year to draw, negative for BCE",
			Value:       DefaultTimelineOptions().From,
			Destination: &chartopts.fromYear,
		},
		&cli.IntFlag{
			Name:        "to",
			Usage:       "Last year to draw",
			Value:       DefaultTimelineOptions().To,
			Destination: &chartopts.toYear,
		},
		&cli.IntFlag{
			Name:        "width",
			Usage:       "Width of the drawing in pixels",
			Value:       DefaultTimelineOptions().Width,
			Destination: &chartopts.width,
		},
	}, logging.Flags...),
}

func chartCmd(cc *cli.Context) error {
	logging.Setup()

	if chartopts.contentDir == "" {
		return fmt.Errorf("no content directory specified")
	}

	b, err := bundle.NewLoader(chartopts.contentDir).Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	s := EraTimeline(model.Eras, PlaceMarkers(b.SortedPlaces()), TimelineOptions{
		Width:      chartopts.width,
		From:       chartopts.fromYear,
		To:         chartopts.toYear,
		BandHeight: DefaultTimelineOptions().BandHeight,
	})

	if chartopts.outputFilename != "" {
		if err := os.WriteFile(chartopts.outputFilename, []byte(s), 0o666); err != nil {
			return fmt.Errorf("failed writing output file: %w", err)
		}
	} else {
		fmt.Println(s)
	}

	return nil
}

// PlaceMarkers builds a timeline marker for every place with a usable
// founding year.
func PlaceMarkers(places []*model.Place) []Marker {
	var ms []Marker
	for _, p := range places {
		if p.Founded == nil {
			continue
		}
		y, ok := p.Founded.Year()
		if !ok {
			continue
		}
		ms = append(ms, Marker{Year: y, Label: p.Name})
	}
	return ms
}
