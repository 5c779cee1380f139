package gallery

// Item is an image with intrinsic dimensions awaiting placement.
type Item struct {
	ID     string
	Width  int
	Height int
}

// Box is one placed item in the grid.
type Box struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Grid is the result of a masonry pass: every item placed, plus the height
// of the container that holds them.
type Grid struct {
	Boxes  []Box
	Height float64
}

// Masonry lays items out the way the site's photo grids do: each item goes
// to the currently shortest column, ties going to the leftmost, scaled to
// the column width at its own aspect ratio. The layout is deterministic in
// the input order.
func Masonry(items []Item, containerWidth float64, columns int, gap float64) Grid {
	var g Grid
	if len(items) == 0 || containerWidth <= 0 {
		return g
	}
	if columns < 1 {
		columns = 1
	}

	colWidth := (containerWidth - gap*float64(columns-1)) / float64(columns)
	if colWidth < 0 {
		colWidth = 0
	}

	heights := make([]float64, columns)
	g.Boxes = make([]Box, 0, len(items))

	for _, it := range items {
		col := 0
		for i := 1; i < columns; i++ {
			if heights[i] < heights[col] {
				col = i
			}
		}

		// Items with unknown dimensions render square.
		h := colWidth
		if it.Width > 0 && it.Height > 0 {
			h = colWidth * float64(it.Height) / float64(it.Width)
		}

		y := heights[col]
		g.Boxes = append(g.Boxes, Box{
			ID:     it.ID,
			X:      float64(col) * (colWidth + gap),
			Y:      y,
			Width:  colWidth,
			Height: h,
		})
		heights[col] = y + h + gap
	}

	for _, h := range heights {
		if h > g.Height {
			g.Height = h
		}
	}
	if g.Height > 0 {
		g.Height -= gap
	}
	return g
}
