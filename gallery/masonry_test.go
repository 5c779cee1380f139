package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMasonryTwoColumns(t *testing.T) {
	items := []Item{
		{ID: "a", Width: 100, Height: 100},
		{ID: "b", Width: 100, Height: 100},
		{ID: "c", Width: 100, Height: 100},
	}

	got := Masonry(items, 210, 2, 10)

	// Column width is (210-10)/2 = 100; c lands under a in the left column.
	want := Grid{
		Boxes: []Box{
			{ID: "a", X: 0, Y: 0, Width: 100, Height: 100},
			{ID: "b", X: 110, Y: 0, Width: 100, Height: 100},
			{ID: "c", X: 0, Y: 110, Width: 100, Height: 100},
		},
		Height: 210,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestMasonryShortestColumnFirst(t *testing.T) {
	// A tall portrait in the left column sends the next two items right.
	items := []Item{
		{ID: "tall", Width: 100, Height: 300},
		{ID: "b", Width: 100, Height: 100},
		{ID: "c", Width: 100, Height: 100},
	}

	got := Masonry(items, 210, 2, 10)

	byID := map[string]Box{}
	for _, b := range got.Boxes {
		byID[b.ID] = b
	}

	if byID["b"].X != 110 || byID["b"].Y != 0 {
		t.Errorf("got b at (%v,%v), wanted (110,0)", byID["b"].X, byID["b"].Y)
	}
	if byID["c"].X != 110 || byID["c"].Y != 110 {
		t.Errorf("got c at (%v,%v), wanted (110,110)", byID["c"].X, byID["c"].Y)
	}
	if got.Height != 300 {
		t.Errorf("got height %v, wanted 300", got.Height)
	}
}

func TestMasonryAspectRatio(t *testing.T) {
	items := []Item{
		{ID: "portrait", Width: 200, Height: 400},
		{ID: "unknown"},
	}

	got := Masonry(items, 100, 1, 0)

	if got.Boxes[0].Height != 200 {
		t.Errorf("got height %v, wanted 200 for a 1:2 portrait at width 100", got.Boxes[0].Height)
	}
	if got.Boxes[1].Height != 100 {
		t.Errorf("got height %v, wanted a square for unknown dimensions", got.Boxes[1].Height)
	}
	if got.Boxes[1].Y != 200 {
		t.Errorf("got y %v, wanted the second item stacked below the first", got.Boxes[1].Y)
	}
}

func TestMasonryDegenerate(t *testing.T) {
	if g := Masonry(nil, 300, 3, 8); len(g.Boxes) != 0 || g.Height != 0 {
		t.Errorf("got %+v, wanted an empty grid for no items", g)
	}
	if g := Masonry([]Item{{ID: "a", Width: 10, Height: 10}}, 0, 3, 8); len(g.Boxes) != 0 {
		t.Errorf("got %+v, wanted an empty grid for a zero-width container", g)
	}

	// A column count below one behaves as a single column.
	g := Masonry([]Item{{ID: "a", Width: 100, Height: 50}}, 100, 0, 8)
	if len(g.Boxes) != 1 || g.Boxes[0].Width != 100 {
		t.Errorf("got %+v, wanted one full-width box", g)
	}
}
