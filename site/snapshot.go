package site

import (
	"fmt"

	"github.com/syednoorhussain2025/hopgen/flow"
	"github.com/syednoorhussain2025/hopgen/logging"
	"github.com/syednoorhussain2025/hopgen/model"
	"github.com/syednoorhussain2025/hopgen/snapshot"
)

// WriteArticlePages writes the raw snapshot for every layout of the article
// and a viewer page that embeds the desktop one.
func (s *Site) WriteArticlePages(root string, a *model.Article) error {
	for i := range a.Layouts {
		l := &a.Layouts[i]
		markup := snapshot.Render(snapshot.Input{
			Layout:     l,
			MasterText: a.MasterText,
			Images:     a.Images,
		})

		fname := fmt.Sprintf(s.SnapshotFilePattern, a.Slug, l.Breakpoint)
		if err := s.writeString(root, fname, markup); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		logging.Debug("wrote snapshot", "id", a.ID, "breakpoint", string(l.Breakpoint), "filename", fname)
	}

	d := s.RenderArticlePage(a)
	if err := s.writeDoc(d, root, fmt.Sprintf(s.ArticleFilePattern, a.Slug)); err != nil {
		return fmt.Errorf("article page: %w", err)
	}

	return nil
}

// RenderArticlePage renders the viewer page for an article. The desktop
// snapshot is embedded whole; the snapshot markup is already escaped so it
// goes in raw.
func (s *Site) RenderArticlePage(a *model.Article) snapshot.Node {
	var main []snapshot.Node

	header := elc("header", "hop-article-header", el("h1", txt(a.Title)))
	if p, ok := s.Bundle.Place(a.PlaceID); ok {
		header.Children = append(header.Children, elc("p", "hop-article-place",
			link(fmt.Sprintf(s.PlacePagePattern, p.Slug), p.Name),
		))
	}
	if !a.IsPublished() {
		header.Children = append(header.Children, elc("p", "hop-draft-note", txt("This article is a draft.")))
	}
	main = append(main, header)

	if l, ok := a.LayoutFor(flow.BreakpointDesktop); ok {
		main = append(main, snapshot.Raw(snapshot.Render(snapshot.Input{
			Layout:     l,
			MasterText: a.MasterText,
			Images:     a.Images,
		})))
	} else if len(a.Layouts) > 0 {
		main = append(main, snapshot.Raw(snapshot.Render(snapshot.Input{
			Layout:     &a.Layouts[0],
			MasterText: a.MasterText,
			Images:     a.Images,
		})))
	}

	if len(a.Layouts) > 0 {
		variants := elc("nav", "hop-variants")
		for i := range a.Layouts {
			bp := a.Layouts[i].Breakpoint
			variants.Children = append(variants.Children,
				link(fmt.Sprintf(s.SnapshotPagePattern, a.Slug, bp), string(bp)+" snapshot"),
			)
		}
		main = append(main, variants)
	}

	return s.htmlPage(a.Title, main...)
}
