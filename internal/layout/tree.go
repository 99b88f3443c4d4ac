package layout

import "fmt"

// Placement is the grid rectangle assigned to one cell.
type Placement struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", p.Row, p.Col, p.RowSpan, p.ColSpan)
}

func (p Placement) overlaps(q Placement) bool {
	return p.Row < q.Row+q.RowSpan && q.Row < p.Row+p.RowSpan &&
		p.Col < q.Col+q.ColSpan && q.Col < p.Col+p.ColSpan
}

// Cell is one unit placed on a grid: a widget, a group, or a nested tab set.
// Widget is the registry index and is -1 for groups and tab sets.
type Cell struct {
	Placement
	Widget int
	Group  *Group
	Tabs   *TabSet
}

// Grid is a compiled grid of cells in placement order.
type Grid struct {
	Cells []Cell
}

func (g *Grid) add(c Cell) {
	g.Cells = append(g.Cells, c)
}

// Extent returns the number of rows and columns the grid's cells cover.
func (g *Grid) Extent() (rows, cols int) {
	for _, c := range g.Cells {
		if r := c.Row + c.RowSpan; r > rows {
			rows = r
		}
		if cc := c.Col + c.ColSpan; cc > cols {
			cols = cc
		}
	}
	return rows, cols
}

// Validate reports ErrOverlap if any two cells on this grid, or on any nested
// grid, share a slot.
func (g *Grid) Validate() error {
	for i := range g.Cells {
		for j := i + 1; j < len(g.Cells); j++ {
			if g.Cells[i].overlaps(g.Cells[j].Placement) {
				return fmt.Errorf("%w: cell %d %s and cell %d %s",
					ErrOverlap, i, g.Cells[i].Placement, j, g.Cells[j].Placement)
			}
		}
		c := g.Cells[i]
		switch {
		case c.Group != nil:
			if err := c.Group.Grid.Validate(); err != nil {
				return fmt.Errorf("group %q: %w", c.Group.Title, err)
			}
		case c.Tabs != nil:
			for _, t := range c.Tabs.Pages {
				if err := t.Grid.Validate(); err != nil {
					return fmt.Errorf("tab %q: %w", t.Name, err)
				}
			}
		}
	}
	return nil
}

// Widgets returns the placement of every widget on this grid and its nested
// grids, keyed by registry index.
func (g *Grid) Widgets() map[int]Placement {
	out := make(map[int]Placement)
	g.collect(out)
	return out
}

func (g *Grid) collect(out map[int]Placement) {
	for _, c := range g.Cells {
		switch {
		case c.Group != nil:
			c.Group.Grid.collect(out)
		case c.Tabs != nil:
			for _, t := range c.Tabs.Pages {
				t.Grid.collect(out)
			}
		default:
			out[c.Widget] = c.Placement
		}
	}
}

// Group is a titled, bordered sub-grid placed as one unit.
type Group struct {
	Title string
	Grid  *Grid
}

// Tab is one named page.
type Tab struct {
	Name string
	Grid *Grid
}

// TabSet is a set of pages placed as one unit inside a group.
type TabSet struct {
	Pages []Tab
}

// Layout is the compiler's output. When Tabs is non-empty the layout is
// tab-bound and Root is nil.
type Layout struct {
	Root *Grid
	Tabs []Tab

	// Unplaced counts widgets added after the last strip directive.
	Unplaced int
}

// Tabbed reports whether the root of the layout is a tab strip.
func (l *Layout) Tabbed() bool {
	return len(l.Tabs) > 0
}

// Widgets returns the placement of every widget, keyed by registry index.
// Indexes in different tabs can share coordinates.
func (l *Layout) Widgets() map[int]Placement {
	out := make(map[int]Placement)
	if l.Root != nil {
		l.Root.collect(out)
	}
	for _, t := range l.Tabs {
		t.Grid.collect(out)
	}
	return out
}

// Validate checks every grid in the layout for overlaps.
func (l *Layout) Validate() error {
	if l.Root != nil {
		if err := l.Root.Validate(); err != nil {
			return err
		}
	}
	for _, t := range l.Tabs {
		if err := t.Grid.Validate(); err != nil {
			return fmt.Errorf("tab %q: %w", t.Name, err)
		}
	}
	return nil
}
