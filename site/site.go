// Package site generates the published website: article snapshots, place and
// itinerary pages, the era timeline and the build manifest.
package site

import (
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/syednoorhussain2025/hopgen/bundle"
	"github.com/syednoorhussain2025/hopgen/flow"
	"github.com/syednoorhussain2025/hopgen/logging"
	"github.com/syednoorhussain2025/hopgen/model"
)

type Site struct {
	BaseURL string
	Bundle  *bundle.Bundle

	Name string // site name used in page titles and the banner

	SnapshotPagePattern string // article slug then breakpoint
	SnapshotFilePattern string
	ArticlePagePattern  string
	ArticleFilePattern  string
	PlacePagePattern    string
	PlaceFilePattern    string
	TripPagePattern     string
	TripFilePattern     string

	ListPlacesDir string
	TimelineDir   string
	ChartFileName string

	StylesFileName   string
	ManifestFileName string
	NotFoundFileName string

	IncludeDrafts bool

	BuildID     string
	GeneratedAt time.Time

	problems []bundle.Problem
	lints    int
	written  []string // files written beneath the site root, slash separated
}

func NewSite(baseURL string, b *bundle.Bundle) *Site {
	s := &Site{
		BaseURL: baseURL,
		Bundle:  b,

		Name: "Heritage of Pakistan",

		SnapshotPagePattern: path.Join(baseURL, "article/%s/%s.html"),
		SnapshotFilePattern: path.Join("article", "/%s/%s.html"),

		ArticlePagePattern: path.Join(baseURL, "article/%s/"),
		ArticleFilePattern: path.Join("article", "/%s/index.html"),

		PlacePagePattern: path.Join(baseURL, "place/%s/"),
		PlaceFilePattern: path.Join("place", "/%s/index.html"),

		TripPagePattern: path.Join(baseURL, "trip/%s/"),
		TripFilePattern: path.Join("trip", "/%s/index.html"),

		ListPlacesDir: "places",
		TimelineDir:   "timeline",
		ChartFileName: "eras.svg",

		StylesFileName:   "assets/site.css",
		ManifestFileName: "manifest.json",
		NotFoundFileName: "404.html",
	}

	return s
}

// Generate prepares the site for writing. It stamps the build, cross-checks
// the bundle and lints every layout that will be rendered, logging anything
// an author should fix.
func (s *Site) Generate() error {
	s.BuildID = uuid.NewString()
	s.GeneratedAt = time.Now().UTC()

	s.problems = s.Bundle.Validate()
	for _, p := range s.problems {
		logging.Warn("content problem", "code", p.Code, "id", p.Ref, "detail", p.Detail)
	}

	s.lints = 0
	for _, a := range s.Bundle.SortedArticles() {
		if !s.includeArticle(a) {
			continue
		}
		for i := range a.Layouts {
			l := &a.Layouts[i]
			for _, f := range flow.Lint(l, a.MasterText, a.Images) {
				logging.Warn("layout check", "id", a.ID, "breakpoint", string(l.Breakpoint), "finding", f.String())
				s.lints++
			}
		}
	}

	return nil
}

// Problems returns the content problems found by Generate.
func (s *Site) Problems() []bundle.Problem {
	return s.problems
}

func (s *Site) includeArticle(a *model.Article) bool {
	return a.IsPublished() || s.IncludeDrafts
}

// WritePages writes the whole site beneath root.
func (s *Site) WritePages(root string) error {
	s.written = nil

	for _, a := range s.Bundle.SortedArticles() {
		if !s.includeArticle(a) {
			continue
		}
		if err := s.WriteArticlePages(root, a); err != nil {
			return fmt.Errorf("write article pages: %w", err)
		}
	}

	for _, p := range s.Bundle.SortedPlaces() {
		d := s.RenderPlacePage(p)
		if err := s.writeDoc(d, root, fmt.Sprintf(s.PlaceFilePattern, p.Slug)); err != nil {
			return fmt.Errorf("write place page: %w", err)
		}
	}

	for _, t := range s.Bundle.SortedTrips() {
		d := s.RenderTripPage(t)
		if err := s.writeDoc(d, root, fmt.Sprintf(s.TripFilePattern, t.Slug)); err != nil {
			return fmt.Errorf("write trip page: %w", err)
		}
	}

	if err := s.WritePlaceListPages(root); err != nil {
		return fmt.Errorf("write place list pages: %w", err)
	}

	if err := s.WriteTimelinePages(root); err != nil {
		return fmt.Errorf("write timeline pages: %w", err)
	}

	if err := s.WriteHomePage(root); err != nil {
		return fmt.Errorf("write home page: %w", err)
	}

	if err := s.WriteNotFoundPage(root); err != nil {
		return fmt.Errorf("write not found page: %w", err)
	}

	if err := s.WriteStyles(root); err != nil {
		return fmt.Errorf("write styles: %w", err)
	}

	if err := s.WriteManifest(root); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	logging.Info(fmt.Sprintf("wrote site with %d places and %d articles", len(s.Bundle.Places), len(s.Bundle.Articles)))

	return nil
}
