package layout

// cursor tracks where the next strip goes.
//
// row, col is the placement point of the current directive. nextRow and
// nextCol are where the following directive starts. newRow and newCol are
// the furthest frontier reached, which NewRow and NewColumn jump to.
type cursor struct {
	row, col         int
	nextRow, nextCol int
	newRow, newCol   int
}

func (c *cursor) begin() {
	c.row, c.col = c.nextRow, c.nextCol
}

// normalize wraps an axis back to 0 whenever the cursor reaches its frontier.
// This is what lets a sparse run of directives tile a 2-D grid.
func (c *cursor) normalize() {
	if c.nextCol >= c.newCol {
		c.nextRow = 0
		c.newCol = c.nextCol
	}
	if c.nextRow >= c.newRow {
		c.nextCol = 0
		c.newRow = c.nextRow
	}
}

func (c *cursor) newRowStrip() {
	c.nextCol = 0
	c.nextRow = c.newRow
}

func (c *cursor) newColumnStrip() {
	c.nextRow = 0
	c.nextCol = c.newCol
}
