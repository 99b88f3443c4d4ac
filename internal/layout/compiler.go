package layout

import "fmt"

// Options adjusts compiler behaviour.
type Options struct {
	// NestedGroups allows a group to start inside another group. Without
	// it a nested StartGroup fails with ErrNestedGroup.
	NestedGroups bool

	// Lenient makes an oversized strip take whatever widgets remain
	// instead of failing with ErrSpanOverflow.
	Lenient bool
}

// frame is the parent state saved when a group opens.
type frame struct {
	grid     *Grid
	cur      cursor
	title    string
	miniTabs []Tab
}

type compiler struct {
	reg   *Registry
	opts  Options
	ptr   int
	grid  *Grid
	cur   cursor
	stack []frame
	tabs  []Tab
}

// Compile walks the directive stream once, consuming registry widgets in
// order, and returns the placement tree. An empty stream lays every widget
// out in a single column. Compile does not modify its inputs.
func Compile(reg *Registry, stream *Stream, opts Options) (*Layout, error) {
	directives := stream.Directives()
	if len(directives) == 0 {
		directives = []Directive{{Kind: EndColumn, Count: reg.Len()}}
	}

	c := &compiler{
		reg:  reg,
		opts: opts,
		grid: &Grid{},
	}

	for i, d := range directives {
		c.cur.begin()
		if err := c.apply(d); err != nil {
			return nil, fmt.Errorf("directive %d %s: %w", i, d, err)
		}
		c.cur.normalize()
	}

	if len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		return nil, fmt.Errorf("%w: group %q never ended", ErrUnbalancedGroup, top.title)
	}

	out := &Layout{Unplaced: reg.Len() - c.ptr}
	if len(c.tabs) == 0 {
		out.Root = c.grid
		return out, nil
	}

	// Widgets placed after the last BeginTab still need a page.
	if len(c.grid.Cells) > 0 {
		c.tabs = append(c.tabs, Tab{Name: fmt.Sprintf("Tab %d", len(c.tabs)+1), Grid: c.grid})
	}
	out.Tabs = c.tabs
	return out, nil
}

func (c *compiler) apply(d Directive) error {
	switch d.Kind {
	case EndRow:
		return c.strip(d.Count, true)
	case EndColumn:
		return c.strip(d.Count, false)
	case NewRow:
		c.cur.newRowStrip()
		return nil
	case NewColumn:
		c.cur.newColumnStrip()
		return nil
	case BeginTab:
		c.sealTab(d.Name)
		return nil
	case StartGroup:
		return c.startGroup(d.Name)
	case EndGroup:
		return c.endGroup(d.Size)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDirective, d.Kind)
	}
}

// strip places the next n widgets left to right (horizontal) or top to
// bottom, then advances the cursor past the strip.
func (c *compiler) strip(n int, horizontal bool) error {
	if n == 0 {
		return nil
	}
	if remaining := c.reg.Len() - c.ptr; n > remaining {
		if !c.opts.Lenient {
			return fmt.Errorf("%w: strip of %d, %d left", ErrSpanOverflow, n, remaining)
		}
		n = remaining
	}

	row, col := c.cur.row, c.cur.col
	size := 0
	for i := c.ptr; i < c.ptr+n; i++ {
		span := c.reg.At(i).Span.normalized()
		c.grid.add(Cell{
			Placement: Placement{Row: row, Col: col, RowSpan: span.Rows, ColSpan: span.Cols},
			Widget:    i,
		})
		if horizontal {
			col += span.Cols
			size = max(size, span.Rows)
		} else {
			row += span.Rows
			size = max(size, span.Cols)
		}
	}
	c.ptr += n

	if horizontal {
		c.cur.nextRow += size
		c.cur.newCol = max(c.cur.newCol, col)
		c.cur.newRow = max(c.cur.newRow, c.cur.row+size)
	} else {
		c.cur.nextCol += size
		c.cur.newRow = max(c.cur.newRow, row)
		c.cur.newCol = max(c.cur.newCol, c.cur.col+size)
	}
	return nil
}

func (c *compiler) sealTab(name string) {
	page := Tab{Name: name, Grid: c.grid}
	if n := len(c.stack); n > 0 {
		c.stack[n-1].miniTabs = append(c.stack[n-1].miniTabs, page)
	} else {
		c.tabs = append(c.tabs, page)
	}
	c.grid = &Grid{}
	c.cur = cursor{}
}

func (c *compiler) startGroup(title string) error {
	if len(c.stack) > 0 && !c.opts.NestedGroups {
		return fmt.Errorf("%w: %q inside %q", ErrNestedGroup, title, c.stack[len(c.stack)-1].title)
	}
	c.stack = append(c.stack, frame{grid: c.grid, cur: c.cur, title: title})
	c.grid = &Grid{}
	c.cur = cursor{}
	return nil
}

func (c *compiler) endGroup(size *Span) error {
	n := len(c.stack)
	if n == 0 {
		return fmt.Errorf("%w: no open group", ErrUnbalancedGroup)
	}
	top := c.stack[n-1]
	c.stack = c.stack[:n-1]

	inner := c.grid
	if len(top.miniTabs) > 0 {
		rows, cols := inner.Extent()
		inner.add(Cell{
			Placement: Placement{Row: rows, Col: 0, RowSpan: 1, ColSpan: max(cols, 1)},
			Widget:    -1,
			Tabs:      &TabSet{Pages: top.miniTabs},
		})
	}

	var footprint Span
	if size != nil {
		footprint = size.normalized()
	} else {
		rows, cols := inner.Extent()
		footprint = Span{Rows: rows, Cols: cols}.normalized()
	}

	m := top.cur
	c.grid = top.grid
	c.grid.add(Cell{
		Placement: Placement{Row: m.nextRow, Col: m.nextCol, RowSpan: footprint.Rows, ColSpan: footprint.Cols},
		Widget:    -1,
		Group:     &Group{Title: top.title, Grid: inner},
	})

	c.cur = m
	c.cur.nextCol = m.nextCol + footprint.Cols
	c.cur.newRow = max(m.newRow, m.nextRow+footprint.Rows)
	c.cur.newCol = max(c.cur.nextCol, m.newCol)
	if c.cur.nextCol < c.cur.newCol {
		// More room on the master strip: the next sibling shares this row.
		c.cur.nextRow = m.nextRow
	} else {
		c.cur.nextRow = 0
	}
	return nil
}
