package gui

import (
	"fyne.io/fyne/v2"

	"gwen/internal/layout"
)

// SpanGrid is a fyne.Layout that places object i at cells[i], letting cells
// cover several rows and columns. Track sizes come from the cells' minimum
// sizes; extra space is shared evenly between tracks.
type SpanGrid struct {
	cells   []layout.Placement
	padding float32
}

func NewSpanGrid(cells []layout.Placement, padding float32) *SpanGrid {
	return &SpanGrid{cells: cells, padding: padding}
}

func (g *SpanGrid) extent() (rows, cols int) {
	for _, c := range g.cells {
		rows = max(rows, c.Row+c.RowSpan)
		cols = max(cols, c.Col+c.ColSpan)
	}
	return rows, cols
}

// tracks returns the minimum height of each row and width of each column.
func (g *SpanGrid) tracks(objects []fyne.CanvasObject) (heights, widths []float32) {
	rows, cols := g.extent()
	heights = make([]float32, rows)
	widths = make([]float32, cols)

	n := min(len(objects), len(g.cells))
	for i := 0; i < n; i++ {
		if !objects[i].Visible() {
			continue
		}
		c, m := g.cells[i], objects[i].MinSize()
		if c.RowSpan == 1 {
			heights[c.Row] = max(heights[c.Row], m.Height)
		}
		if c.ColSpan == 1 {
			widths[c.Col] = max(widths[c.Col], m.Width)
		}
	}

	// Spanning cells grow their tracks evenly by whatever the single-span
	// cells did not already cover.
	for i := 0; i < n; i++ {
		if !objects[i].Visible() {
			continue
		}
		c, m := g.cells[i], objects[i].MinSize()
		if c.RowSpan > 1 {
			g.spread(heights[c.Row:c.Row+c.RowSpan], m.Height)
		}
		if c.ColSpan > 1 {
			g.spread(widths[c.Col:c.Col+c.ColSpan], m.Width)
		}
	}
	return heights, widths
}

func (g *SpanGrid) spread(tracks []float32, need float32) {
	have := g.sum(tracks)
	if need <= have {
		return
	}
	extra := (need - have) / float32(len(tracks))
	for i := range tracks {
		tracks[i] += extra
	}
}

// sum is the length of consecutive tracks including the padding between them.
func (g *SpanGrid) sum(tracks []float32) float32 {
	var total float32
	for _, t := range tracks {
		total += t
	}
	if len(tracks) > 1 {
		total += g.padding * float32(len(tracks)-1)
	}
	return total
}

func (g *SpanGrid) MinSize(objects []fyne.CanvasObject) fyne.Size {
	heights, widths := g.tracks(objects)
	return fyne.NewSize(g.sum(widths), g.sum(heights))
}

func (g *SpanGrid) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	heights, widths := g.tracks(objects)
	grow(heights, size.Height-g.sum(heights))
	grow(widths, size.Width-g.sum(widths))

	ys := g.offsets(heights)
	xs := g.offsets(widths)

	n := min(len(objects), len(g.cells))
	for i := 0; i < n; i++ {
		c := g.cells[i]
		objects[i].Move(fyne.NewPos(xs[c.Col], ys[c.Row]))
		objects[i].Resize(fyne.NewSize(
			g.sum(widths[c.Col:c.Col+c.ColSpan]),
			g.sum(heights[c.Row:c.Row+c.RowSpan]),
		))
	}
}

func (g *SpanGrid) offsets(tracks []float32) []float32 {
	out := make([]float32, len(tracks))
	var pos float32
	for i, t := range tracks {
		out[i] = pos
		pos += t + g.padding
	}
	return out
}

func grow(tracks []float32, extra float32) {
	if extra <= 0 || len(tracks) == 0 {
		return
	}
	each := extra / float32(len(tracks))
	for i := range tracks {
		tracks[i] += each
	}
}
