// Package export mirrors the HTML pages of a generated site as markdown,
// for archival and for text tooling that cannot consume HTML.
package export

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"

	"github.com/syednoorhussain2025/hopgen/logging"
)

type Exporter struct {
	conv *converter.Converter
}

func NewExporter() *Exporter {
	return &Exporter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert renders one HTML document as markdown.
func (e *Exporter) Convert(html string) (string, error) {
	md, err := e.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

// Run exports site, which may be a site tree or a single HTML page, as
// markdown beneath outDir. A tree is mirrored with one markdown document
// per HTML page; non-page assets are skipped.
func (e *Exporter) Run(site string, outDir string) error {
	info, err := os.Stat(site)
	if err != nil {
		return fmt.Errorf("stat site: %w", err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(site, ".html") {
			return fmt.Errorf("%s is not an html page", site)
		}
		if err := e.exportPage(site, filepath.Base(site), outDir); err != nil {
			return err
		}
		logging.Info("exported 1 page")
		return nil
	}

	count := 0
	err = filepath.WalkDir(site, func(fname string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		rel, err := filepath.Rel(site, fname)
		if err != nil {
			return fmt.Errorf("relative path: %w", err)
		}
		if err := e.exportPage(fname, rel, outDir); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logging.Info(fmt.Sprintf("exported %d pages", count))
	return nil
}

// exportPage converts one HTML page and writes it as a front-matter
// markdown document at the mirrored path beneath outDir.
func (e *Exporter) exportPage(fname string, rel string, outDir string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	md, err := e.Convert(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", rel, err)
	}

	doc := new(Document)
	doc.Title(pageTitle(string(data)))
	doc.Source(filepath.ToSlash(rel))
	doc.SetBody(md)

	target := filepath.Join(outDir, strings.TrimSuffix(rel, ".html")+".md")
	if err := os.MkdirAll(filepath.Dir(target), 0777); err != nil {
		return fmt.Errorf("create path: %w", err)
	}
	if err := os.WriteFile(target, []byte(doc.String()), 0666); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	logging.Debug("exported page", "page", rel)
	return nil
}

// pageTitle extracts the text of the first title element, or an empty
// string when the page has none.
func pageTitle(html string) string {
	lower := strings.ToLower(html)
	start := strings.Index(lower, "<title>")
	if start == -1 {
		return ""
	}
	start += len("<title>")
	end := strings.Index(lower[start:], "</title>")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(html[start : start+end])
}
