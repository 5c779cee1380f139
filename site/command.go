package site

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/syednoorhussain2025/hopgen/bundle"
	"github.com/syednoorhussain2025/hopgen/debug"
	"github.com/syednoorhussain2025/hopgen/logging"
)

var Command = &cli.Command{
	Name:   "gen",
	Usage:  "Generate the website from a content bundle",
	Action: gen,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "Directory holding the content bundle",
			Destination: &genopts.contentDir,
		},
		&cli.StringFlag{
			Name:        "site",
			Aliases:     []string{"s"},
			Usage:       "Directory in which to write generated site",
			Destination: &genopts.rootDir,
		},
		&cli.StringFlag{
			Name:        "basepath",
			Aliases:     []string{"b"},
			Usage:       "Base URL path to use as a prefix to all links.",
			Value:       "/",
			Destination: &genopts.basePath,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Site name shown in the banner and page titles.",
			Value:       "Heritage of Pakistan",
			Destination: &genopts.siteName,
		},
		&cli.BoolFlag{
			Name:        "include-drafts",
			Usage:       "Include articles that have not been published yet.",
			Value:       false,
			Destination: &genopts.includeDrafts,
		},
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "Report content problems and exit without writing any pages.",
			Value:       false,
			Destination: &genopts.check,
		},
		&cli.StringFlag{
			Name:        "inspect",
			Usage:       "Type and ID of an object to inspect. The internal data structure of the object will be printed to stdout. Use format '{object}/{id}' where object can be 'place', 'article' or 'trip'.",
			Destination: &genopts.inspect,
		},
	}, logging.Flags...),
}

var genopts struct {
	contentDir    string
	rootDir       string
	basePath      string
	siteName      string
	includeDrafts bool
	check         bool
	inspect       string
}

func gen(cc *cli.Context) error {
	logging.Setup()

	if genopts.contentDir == "" {
		return fmt.Errorf("no content directory specified")
	}

	b, err := bundle.NewLoader(genopts.contentDir).Load()
	if err != nil {
		return fmt.Errorf("load bundle: %w", err)
	}

	s := NewSite(genopts.basePath, b)
	s.IncludeDrafts = genopts.includeDrafts
	if genopts.siteName != "" {
		s.Name = genopts.siteName
	}

	if err := s.Generate(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if genopts.check {
		for _, p := range s.Problems() {
			fmt.Println(p.String())
		}
		if n := len(s.Problems()); n > 0 {
			return fmt.Errorf("found %d content problems", n)
		}
		return nil
	}

	if genopts.inspect != "" {
		kind, id, ok := strings.Cut(genopts.inspect, "/")
		if !ok {
			return fmt.Errorf("unrecognised object to inspect: %s", genopts.inspect)
		}
		switch kind {
		case "place":
			p, ok := b.Place(id)
			if !ok {
				return fmt.Errorf("no place found with id %s", id)
			}
			return debug.DumpPlace(p, os.Stdout)
		case "article":
			a, ok := b.Articles[id]
			if !ok {
				return fmt.Errorf("no article found with id %s", id)
			}
			return debug.DumpArticle(a, os.Stdout)
		case "trip":
			t, ok := b.Trips[id]
			if !ok {
				return fmt.Errorf("no trip found with id %s", id)
			}
			return debug.DumpTrip(t, os.Stdout)
		default:
			return fmt.Errorf("unrecognised object to inspect: %s", genopts.inspect)
		}
	}

	if genopts.rootDir != "" {
		if err := s.WritePages(genopts.rootDir); err != nil {
			return fmt.Errorf("write pages: %w", err)
		}
	}

	return nil
}
