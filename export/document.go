package export

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

var (
	safeString    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericString = regexp.MustCompile(`^[0-9]+$`)
)

// Document is a markdown page with front matter, the shape static site
// tools expect when re-ingesting an exported site.
type Document struct {
	frontMatter map[string]string
	body        string
}

func (d *Document) SetFrontMatterField(k, v string) {
	if v == "" {
		return
	}
	if d.frontMatter == nil {
		d.frontMatter = make(map[string]string)
	}
	d.frontMatter[k] = v
}

func (d *Document) Title(s string) {
	d.SetFrontMatterField("title", s)
}

// Source records the path of the page this document was exported from,
// relative to the site root.
func (d *Document) Source(s string) {
	d.SetFrontMatterField("source", s)
}

func (d *Document) SetBody(s string) {
	d.body = s
}

func (d *Document) String() string {
	s := new(strings.Builder)
	d.WriteTo(s)
	return s.String()
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bb := new(bytes.Buffer)
	tagRanks := map[string]byte{
		"title": 1,
	}

	if len(d.frontMatter) > 0 {
		bb.WriteString("---\n")

		keys := make([]string, 0, len(d.frontMatter))
		for k := range d.frontMatter {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			ri := tagRanks[keys[i]]
			rj := tagRanks[keys[j]]
			if ri != rj {
				return ri > rj
			}
			return keys[i] < keys[j]
		})

		for _, k := range keys {
			bb.WriteString(k)
			bb.WriteString(": ")
			v := d.frontMatter[k]
			if safeString.MatchString(v) && !numericString.MatchString(v) {
				bb.WriteString(v)
			} else {
				bb.WriteString(fmt.Sprintf("%q", v))
			}
			bb.WriteString("\n")
		}
		bb.WriteString("---\n\n")
	}
	bb.WriteString(d.body)

	n, err := bb.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write document: %w", err)
	}

	return n, nil
}
