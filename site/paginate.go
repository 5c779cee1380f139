package site

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/syednoorhussain2025/hopgen/logging"
	"github.com/syednoorhussain2025/hopgen/snapshot"
)

// Paginator splits a long listing across numbered pages. Entries sharing a
// group are kept together and a change of group forces a page break, so a
// page never mixes two regions.
type Paginator struct {
	MaxPageSize int

	Entries []PaginatorEntry
}

func NewPaginator() *Paginator {
	return &Paginator{
		MaxPageSize: 16384,
	}
}

type PaginatorEntry struct {
	Key           string
	Title         string
	Group         string
	GroupPriority int
	Content       string
}

func (p *Paginator) AddEntry(key string, title string, content snapshot.Node) {
	p.Entries = append(p.Entries, PaginatorEntry{
		Key:     key,
		Title:   title,
		Content: snapshot.Markup(content),
	})
}

func (p *Paginator) AddEntryWithGroup(key string, title string, content snapshot.Node, group string, groupPriority int) {
	p.Entries = append(p.Entries, PaginatorEntry{
		Key:           key,
		Title:         title,
		Group:         group,
		GroupPriority: groupPriority,
		Content:       snapshot.Markup(content),
	})
}

// WritePages writes the entries beneath baseDir. A listing that fits in one
// page is written as a single index. Anything larger is split into numbered
// subdirectories with an index that links each page by the range of titles
// it holds.
func (p *Paginator) WritePages(s *Site, root string, baseDir string, title string, summary string) error {
	sort.Slice(p.Entries, func(i, j int) bool {
		if p.Entries[i].Group != p.Entries[j].Group {
			return p.Entries[i].GroupPriority < p.Entries[j].GroupPriority
		}
		return p.Entries[i].Key < p.Entries[j].Key
	})

	type page struct {
		FirstKey   string
		LastKey    string
		FirstTitle string
		LastTitle  string
		Content    string
		Name       string
		Group      string
	}

	var pages []*page

	pg := &page{
		Name: fmt.Sprintf("%02d", 1),
	}
	if len(p.Entries) > 0 {
		pg.Group = p.Entries[0].Group
	}
	for _, e := range p.Entries {
		if e.Group != pg.Group {
			// start a new page and group
			pages = append(pages, pg)
			pg = &page{
				Name:  fmt.Sprintf("%02d", len(pages)+1),
				Group: e.Group,
			}
		}
		if p.MaxPageSize > 0 && len(pg.Content)+len(e.Content) > p.MaxPageSize {
			if len(pg.Content) == 0 {
				logging.Warn("skipping entry larger than the maximum allowed for a single page", "key", e.Key)
				continue
			}
			pages = append(pages, pg)
			pg = &page{
				Name:  fmt.Sprintf("%02d", len(pages)+1),
				Group: e.Group,
			}
		}
		if len(pg.Content) == 0 {
			pg.FirstKey = e.Key
			pg.FirstTitle = e.Title
		}
		pg.Content += e.Content
		pg.LastKey = e.Key
		pg.LastTitle = e.Title
	}
	pages = append(pages, pg)

	if len(pages) == 1 {
		d := s.listPage(title, summary, snapshot.Raw(pages[0].Content))
		if err := s.writeDoc(d, root, filepath.Join(baseDir, "index.html")); err != nil {
			return fmt.Errorf("write paginated index: %w", err)
		}
		return nil
	}

	for i, pg := range pages {
		idx := i + 1

		pager := elc("nav", "hop-pager")
		if idx > 1 {
			pager.Children = append(pager.Children, link("../"+pages[0].Name+"/", "First"))
			if idx > 2 {
				pager.Children = append(pager.Children, link("../"+pages[idx-2].Name+"/", "Previous"))
			}
		}
		if idx < len(pages) {
			if idx < len(pages)-1 {
				pager.Children = append(pager.Children, link("../"+pages[idx].Name+"/", "Next"))
			}
			pager.Children = append(pager.Children, link("../"+pages[len(pages)-1].Name+"/", "Last"))
		}

		d := s.listPage(
			fmt.Sprintf("%s (page %d of %d)", title, idx, len(pages)),
			"",
			snapshot.Raw(pg.Content),
			pager,
		)
		if err := s.writeDoc(d, root, filepath.Join(baseDir, pg.Name, "index.html")); err != nil {
			return fmt.Errorf("write paginated page: %w", err)
		}
	}

	var groups []snapshot.Node
	var group string
	list := elc("ul", "hop-page-list")
	flush := func() {
		if len(list.Children) == 0 {
			return
		}
		if group != "" {
			groups = append(groups, el("h3", txt(group)))
		}
		groups = append(groups, list)
		list = elc("ul", "hop-page-list")
	}
	for _, pg := range pages {
		if pg.Group != group {
			flush()
			group = pg.Group
		}
		label := pg.FirstTitle
		if pg.FirstKey != pg.LastKey {
			label = fmt.Sprintf("%s to %s", pg.FirstTitle, pg.LastTitle)
		}
		list.Children = append(list.Children, el("li", link(pg.Name+"/", label)))
	}
	flush()

	d := s.listPage(title, summary, groups...)
	if err := s.writeDoc(d, root, filepath.Join(baseDir, "index.html")); err != nil {
		return fmt.Errorf("write paginated index: %w", err)
	}
	return nil
}

func (s *Site) listPage(title string, summary string, rest ...snapshot.Node) snapshot.Node {
	main := []snapshot.Node{el("h1", txt(title))}
	if summary != "" {
		main = append(main, elc("p", "hop-list-summary", txt(summary)))
	}
	main = append(main, rest...)
	return s.htmlPage(title, main...)
}
