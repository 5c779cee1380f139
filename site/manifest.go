package site

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Manifest describes one generation run. Deployment tooling reads it to see
// what was published and when.
type Manifest struct {
	BuildID     string          `json:"buildId"`
	GeneratedAt time.Time       `json:"generatedAt"`
	BasePath    string          `json:"basePath"`
	Counts      ManifestCounts  `json:"counts"`
	Snapshots   []SnapshotEntry `json:"snapshots"`
	Pages       []string        `json:"pages"` // every page written, relative to the site root
}

type ManifestCounts struct {
	Places      int `json:"places"`
	Articles    int `json:"articles"`
	Collections int `json:"collections"`
	Trips       int `json:"trips"`
	Reviews     int `json:"reviews"`
	Problems    int `json:"problems"`
}

// SnapshotEntry records one written article snapshot.
type SnapshotEntry struct {
	Article    string `json:"article"` // article slug
	Breakpoint string `json:"breakpoint"`
	Path       string `json:"path"` // file path relative to the site root
}

// WriteManifest writes the build manifest at the site root.
func (s *Site) WriteManifest(root string) error {
	m := Manifest{
		BuildID:     s.BuildID,
		GeneratedAt: s.GeneratedAt,
		BasePath:    s.BaseURL,
		Counts: ManifestCounts{
			Places:      len(s.Bundle.Places),
			Articles:    len(s.Bundle.Articles),
			Collections: len(s.Bundle.Collections),
			Trips:       len(s.Bundle.Trips),
			Reviews:     len(s.Bundle.Reviews),
			Problems:    len(s.problems),
		},
	}

	for _, a := range s.Bundle.SortedArticles() {
		if !s.includeArticle(a) {
			continue
		}
		for _, l := range a.Layouts {
			m.Snapshots = append(m.Snapshots, SnapshotEntry{
				Article:    a.Slug,
				Breakpoint: string(l.Breakpoint),
				Path:       fmt.Sprintf(s.SnapshotFilePattern, a.Slug, l.Breakpoint),
			})
		}
	}

	for _, fname := range s.written {
		if strings.HasSuffix(fname, ".html") {
			m.Pages = append(m.Pages, fname)
		}
	}
	sort.Strings(m.Pages)

	f, err := CreateFile(filepath.Join(root, s.ManifestFileName))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	return nil
}
