package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/syednoorhussain2025/hopgen/collection"
	"github.com/syednoorhussain2025/hopgen/flow"
	"github.com/syednoorhussain2025/hopgen/identifier"
	"github.com/syednoorhussain2025/hopgen/itinerary"
	"github.com/syednoorhussain2025/hopgen/logging"
	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/review"
)

// Loader reads a content directory laid out as
//
//	places.json
//	collections.json
//	reviews.json
//	itineraries.json
//	articles/<slug>.json
//
// Every file is optional. Records missing an id or slug have one derived
// during the load so they keep the same identity across runs.
type Loader struct {
	Dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

func (l *Loader) Load() (*Bundle, error) {
	b := New()

	if err := l.loadPlaces(b); err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}
	if err := l.loadArticles(b); err != nil {
		return nil, fmt.Errorf("articles: %w", err)
	}
	if err := l.loadCollections(b); err != nil {
		return nil, fmt.Errorf("collections: %w", err)
	}
	if err := l.loadReviews(b); err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}
	if err := l.loadTrips(b); err != nil {
		return nil, fmt.Errorf("itineraries: %w", err)
	}

	return b, nil
}

type placeRecord struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	LocalName    string   `json:"localName"`
	Region       string   `json:"region"`
	Categories   []string `json:"categories"`
	Summary      string   `json:"summary"`
	Founded      string   `json:"founded"`
	FoundedBasis string   `json:"foundedBasis"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Featured     bool     `json:"featured"`
}

func (l *Loader) loadPlaces(b *Bundle) error {
	recs, err := readRecords[placeRecord](filepath.Join(l.Dir, "places.json"))
	if err != nil {
		return err
	}

	for _, rec := range recs {
		p := &model.Place{
			Slug:       rec.Slug,
			Name:       rec.Name,
			LocalName:  rec.LocalName,
			Region:     model.NormalizeRegion(rec.Region),
			Categories: rec.Categories,
			Summary:    rec.Summary,
			Featured:   rec.Featured,
		}
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		}
		p.ID = rec.ID
		if p.ID == "" {
			p.ID = identifier.New("place", p.Slug)
		}

		if rec.Founded != "" {
			dt, err := model.ParseDate(rec.Founded)
			if err != nil {
				logging.Warn("skipping unparseable founding date", "id", p.ID, "error", err)
			} else {
				dt.Basis = model.ParseBasis(rec.FoundedBasis)
				p.Founded = dt
			}
		}

		if rec.Latitude != nil && rec.Longitude != nil {
			p.Location = &model.GeoLocation{
				Latitude:  *rec.Latitude,
				Longitude: *rec.Longitude,
			}
		}

		if _, exists := b.Places[p.ID]; exists {
			logging.Warn("duplicate place id", "id", p.ID)
		}
		b.Places[p.ID] = p
	}
	logging.Info(fmt.Sprintf("loaded %d place records", len(recs)))

	return nil
}

type articleRecord struct {
	ID         string        `json:"id"`
	Slug       string        `json:"slug"`
	Title      string        `json:"title"`
	PlaceID    string        `json:"placeId"`
	MasterText string        `json:"masterText"`
	Layouts    []flow.Layout `json:"layouts"`
	Images     flow.ImageSet `json:"images"`
	Published  time.Time     `json:"published"` // zero or absent while a draft
}

func (l *Loader) loadArticles(b *Bundle) error {
	dir := filepath.Join(l.Dir, "articles")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read dir: %w", err)
	}

	n := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		fname := filepath.Join(dir, e.Name())
		f, err := os.Open(fname)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		var rec articleRecord
		d := json.NewDecoder(f)
		err = d.Decode(&rec)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: unmarshal json: %w", e.Name(), err)
		}

		a := &model.Article{
			Slug:       rec.Slug,
			Title:      rec.Title,
			PlaceID:    rec.PlaceID,
			MasterText: rec.MasterText,
			Layouts:    rec.Layouts,
			Images:     rec.Images,
			Published:  rec.Published,
		}
		if a.Slug == "" {
			if rec.Title != "" {
				a.Slug = slug.Make(rec.Title)
			} else {
				a.Slug = strings.TrimSuffix(e.Name(), ".json")
			}
		}
		a.ID = rec.ID
		if a.ID == "" {
			a.ID = identifier.New("article", a.Slug)
		}

		if _, exists := b.Articles[a.ID]; exists {
			logging.Warn("duplicate article id", "id", a.ID)
		}
		b.Articles[a.ID] = a
		n++
	}
	logging.Info(fmt.Sprintf("loaded %d article records", n))

	return nil
}

type collectionRecord struct {
	ID      string        `json:"id"`
	Slug    string        `json:"slug"`
	Title   string        `json:"title"`
	PlaceID string        `json:"placeId"`
	Photos  []photoRecord `json:"photos"`
}

type photoRecord struct {
	ID          string `json:"id"`
	StoragePath string `json:"storagePath"`
	Alt         string `json:"alt"`
	Caption     string `json:"caption"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Position    int    `json:"position"`
	Cover       bool   `json:"cover"`
}

func (l *Loader) loadCollections(b *Bundle) error {
	recs, err := readRecords[collectionRecord](filepath.Join(l.Dir, "collections.json"))
	if err != nil {
		return err
	}

	for _, rec := range recs {
		c := &collection.Collection{
			Slug:    rec.Slug,
			Title:   rec.Title,
			PlaceID: rec.PlaceID,
		}
		if c.Slug == "" {
			c.Slug = slug.Make(rec.Title)
		}
		c.ID = rec.ID
		if c.ID == "" {
			c.ID = identifier.New("collection", c.Slug)
		}

		for _, pr := range rec.Photos {
			ph := model.Photo{
				ID:          pr.ID,
				PlaceID:     rec.PlaceID,
				StoragePath: pr.StoragePath,
				Alt:         pr.Alt,
				Caption:     pr.Caption,
				Width:       pr.Width,
				Height:      pr.Height,
			}
			if ph.ID == "" {
				ph.ID = identifier.New("photo", pr.StoragePath)
			}
			c.Photos = append(c.Photos, collection.Entry{
				Photo:    ph,
				Position: pr.Position,
				Cover:    pr.Cover,
			})
		}
		c.Normalize()

		if _, exists := b.Collections[c.ID]; exists {
			logging.Warn("duplicate collection id", "id", c.ID)
		}
		b.Collections[c.ID] = c
	}
	logging.Info(fmt.Sprintf("loaded %d collection records", len(recs)))

	return nil
}

func (l *Loader) loadReviews(b *Bundle) error {
	recs, err := readRecords[review.Review](filepath.Join(l.Dir, "reviews.json"))
	if err != nil {
		return err
	}

	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = identifier.New("review", recs[i].PlaceID, recs[i].Author, recs[i].CreatedAt.Format(time.RFC3339))
		}
	}
	review.SanitizeAll(recs)
	b.Reviews = recs
	logging.Info(fmt.Sprintf("loaded %d review records", len(recs)))

	return nil
}

type tripRecord struct {
	ID    string           `json:"id"`
	Slug  string           `json:"slug"`
	Title string           `json:"title"`
	Days  int              `json:"days"`
	Stops []itinerary.Stop `json:"stops"`
}

func (l *Loader) loadTrips(b *Bundle) error {
	recs, err := readRecords[tripRecord](filepath.Join(l.Dir, "itineraries.json"))
	if err != nil {
		return err
	}

	for _, rec := range recs {
		slg := rec.Slug
		if slg == "" {
			slg = slug.Make(rec.Title)
		}
		id := rec.ID
		if id == "" {
			id = identifier.New("trip", slg)
		}

		days := rec.Days
		if days < 1 {
			for _, s := range rec.Stops {
				if s.Day > days {
					days = s.Day
				}
			}
		}

		bld := itinerary.NewBuilder(id, rec.Title)
		for _, s := range rec.Stops {
			bld.Add(s)
		}
		t := bld.Finalize(days)
		t.Slug = slg

		if _, exists := b.Trips[t.ID]; exists {
			logging.Warn("duplicate itinerary id", "id", t.ID)
		}
		b.Trips[t.ID] = t
	}
	logging.Info(fmt.Sprintf("loaded %d itinerary records", len(recs)))

	return nil
}

// readRecords decodes a JSON array of records from a file. A missing file is
// an empty record set, not an error.
func readRecords[T any](fname string) ([]T, error) {
	f, err := os.Open(fname)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var recs []T
	d := json.NewDecoder(f)
	if err := d.Decode(&recs); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	return recs, nil
}
