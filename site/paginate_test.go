package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/syednoorhussain2025/hopgen/bundle"
)

func readPage(t *testing.T, root string, fname string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, fname))
	if err != nil {
		t.Fatalf("read %s: %v", fname, err)
	}
	return string(data)
}

func TestPaginatorSinglePage(t *testing.T) {
	s := NewSite("/", bundle.New())
	root := t.TempDir()

	pn := NewPaginator()
	pn.AddEntry("alpha", "Alpha", elc("p", "hop-card", txt("alpha entry")))
	pn.AddEntry("beta", "Beta", elc("p", "hop-card", txt("beta entry")))

	if err := pn.WritePages(s, root, "list", "Test list", "A summary."); err != nil {
		t.Fatalf("write pages: %v", err)
	}

	got := readPage(t, root, "list/index.html")
	for _, want := range []string{"Test list", "A summary.", "alpha entry", "beta entry"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in index", want)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "list", "01")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("numbered page directory written for a single page listing")
	}
}

func TestPaginatorSplitsBySize(t *testing.T) {
	s := NewSite("/", bundle.New())
	root := t.TempDir()

	pn := NewPaginator()
	pn.MaxPageSize = 60
	pn.AddEntry("alpha", "Alpha", elc("p", "hop-card", txt("alpha entry text")))
	pn.AddEntry("beta", "Beta", elc("p", "hop-card", txt("beta entry text")))
	pn.AddEntry("gamma", "Gamma", elc("p", "hop-card", txt("gamma entry text")))

	if err := pn.WritePages(s, root, "list", "Test list", ""); err != nil {
		t.Fatalf("write pages: %v", err)
	}

	first := readPage(t, root, "list/01/index.html")
	if !strings.Contains(first, "alpha entry text") {
		t.Errorf("first page missing first entry")
	}
	if strings.Contains(first, "beta entry text") {
		t.Errorf("first page holds an entry that belongs to a later page")
	}
	if !strings.Contains(first, "(page 1 of 3)") {
		t.Errorf("first page missing page position in title")
	}
	if !strings.Contains(first, `href="../03/"`) {
		t.Errorf("first page missing link to last page")
	}

	second := readPage(t, root, "list/02/index.html")
	for _, want := range []string{"beta entry text", `href="../01/"`, `href="../03/"`} {
		if !strings.Contains(second, want) {
			t.Errorf("missing %q in second page", want)
		}
	}

	index := readPage(t, root, "list/index.html")
	for _, want := range []string{`href="01/"`, `href="02/"`, `href="03/"`, "Alpha", "Gamma"} {
		if !strings.Contains(index, want) {
			t.Errorf("missing %q in index", want)
		}
	}
}

func TestPaginatorGroupBreaks(t *testing.T) {
	s := NewSite("/", bundle.New())
	root := t.TempDir()

	pn := NewPaginator()
	pn.AddEntryWithGroup("lahore", "Lahore Fort", elc("p", "hop-card", txt("lahore fort entry")), "Punjab", 0)
	pn.AddEntryWithGroup("rohtas", "Rohtas Fort", elc("p", "hop-card", txt("rohtas fort entry")), "Punjab", 0)
	pn.AddEntryWithGroup("makli", "Makli Necropolis", elc("p", "hop-card", txt("makli entry")), "Sindh", 1)

	if err := pn.WritePages(s, root, "list", "Places", ""); err != nil {
		t.Fatalf("write pages: %v", err)
	}

	first := readPage(t, root, "list/01/index.html")
	if !strings.Contains(first, "lahore fort entry") || !strings.Contains(first, "rohtas fort entry") {
		t.Errorf("first page does not hold the whole first group")
	}
	if strings.Contains(first, "makli entry") {
		t.Errorf("first page mixes two groups")
	}

	second := readPage(t, root, "list/02/index.html")
	if !strings.Contains(second, "makli entry") {
		t.Errorf("second page missing second group")
	}

	index := readPage(t, root, "list/index.html")
	for _, want := range []string{"<h3>Punjab</h3>", "<h3>Sindh</h3>", "Lahore Fort to Rohtas Fort", "Makli Necropolis"} {
		if !strings.Contains(index, want) {
			t.Errorf("missing %q in index", want)
		}
	}
}

func TestPaginatorSkipsOversizeEntry(t *testing.T) {
	s := NewSite("/", bundle.New())
	root := t.TempDir()

	pn := NewPaginator()
	pn.MaxPageSize = 40
	pn.AddEntry("alpha", "Alpha", elc("p", "hop-card", txt(strings.Repeat("x", 200))))
	pn.AddEntry("beta", "Beta", txt("beta"))

	if err := pn.WritePages(s, root, "list", "Test list", ""); err != nil {
		t.Fatalf("write pages: %v", err)
	}

	got := readPage(t, root, "list/index.html")
	if strings.Contains(got, strings.Repeat("x", 200)) {
		t.Errorf("oversize entry was written")
	}
	if !strings.Contains(got, "beta") {
		t.Errorf("entry after the oversize one was dropped")
	}
}
