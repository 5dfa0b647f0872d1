package mpctui

// RenderCursor is the layout position the next widget is declared at. It
// walks right along a row as widgets are declared and returns to the left
// interior column on NextRow.
type RenderCursor struct {
	pos  Pos
	left int // interior column rows restart at
}

// Reset moves the cursor to the first interior cell of p.
func (c *RenderCursor) Reset(p Panel) {
	c.pos = p.Origin()
	c.left = c.pos.X
}

// Pos returns the current cursor position.
func (c *RenderCursor) Pos() Pos {
	return c.pos
}

// Set places the cursor at an absolute position.
func (c *RenderCursor) Set(pos Pos) {
	c.pos = pos
}

// Advance moves the cursor n cells to the right.
func (c *RenderCursor) Advance(n int) {
	c.pos.X += n
}

// Move shifts the cursor by (dx, dy) and returns the new position.
func (c *RenderCursor) Move(dx, dy int) Pos {
	c.pos = c.pos.Add(Pos{X: dx, Y: dy})
	return c.pos
}

// NextRow moves the cursor to the left interior column of the following row.
func (c *RenderCursor) NextRow() {
	c.pos = Pos{X: c.left, Y: c.pos.Y + 1}
}
