package site

import (
	"path"

	"github.com/syednoorhussain2025/hopgen/snapshot"
)

// el, elc and txt cut the noise out of building page trees by hand.
func el(name string, children ...snapshot.Node) *snapshot.Elem {
	return &snapshot.Elem{Name: name, Children: children}
}

func elc(name string, class string, children ...snapshot.Node) *snapshot.Elem {
	return &snapshot.Elem{
		Name:     name,
		Attrs:    []snapshot.Attr{{Name: "class", Value: class}},
		Children: children,
	}
}

func txt(s string) snapshot.Node {
	return &snapshot.Text{Content: s}
}

func link(href string, label string) snapshot.Node {
	return &snapshot.Elem{
		Name:     "a",
		Attrs:    []snapshot.Attr{{Name: "href", Value: href}},
		Children: []snapshot.Node{txt(label)},
	}
}

// htmlPage wraps page content in the shared chrome: the document head with
// the stylesheet link, the site banner and the footer.
func (s *Site) htmlPage(title string, main ...snapshot.Node) snapshot.Node {
	full := s.Name
	if title != "" {
		full = title + " | " + s.Name
	}

	head := el("head",
		&snapshot.Elem{Name: "meta", Attrs: []snapshot.Attr{{Name: "charset", Value: "utf-8"}}},
		&snapshot.Elem{Name: "meta", Attrs: []snapshot.Attr{
			{Name: "name", Value: "viewport"},
			{Name: "content", Value: "width=device-width, initial-scale=1"},
		}},
		el("title", txt(full)),
		&snapshot.Elem{Name: "link", Attrs: []snapshot.Attr{
			{Name: "rel", Value: "stylesheet"},
			{Name: "href", Value: path.Join(s.BaseURL, s.StylesFileName)},
		}},
	)

	banner := elc("header", "hop-banner",
		&snapshot.Elem{
			Name: "a",
			Attrs: []snapshot.Attr{
				{Name: "class", Value: "hop-banner-title"},
				{Name: "href", Value: s.BaseURL},
			},
			Children: []snapshot.Node{txt(s.Name)},
		},
		elc("nav", "hop-banner-nav",
			link(path.Join(s.BaseURL, s.ListPlacesDir)+"/", "Places"),
			link(path.Join(s.BaseURL, s.TimelineDir)+"/", "Timeline"),
		),
	)

	body := el("body",
		banner,
		elc("main", "hop-main", main...),
		elc("footer", "hop-footer", el("p", txt(s.Name))),
	)

	return snapshot.Fragment{
		snapshot.Raw("<!DOCTYPE html>\n"),
		&snapshot.Elem{
			Name:     "html",
			Attrs:    []snapshot.Attr{{Name: "lang", Value: "en"}},
			Children: []snapshot.Node{head, body},
		},
	}
}
