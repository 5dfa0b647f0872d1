package mpctui

// Panel is the bordered region every widget is placed inside. The border
// occupies the outermost rows and columns of Width x Height.
type Panel struct {
	Y, X   int
	Width  int
	Height int
}

// PanelSize is the configured panel extent; its origin is derived per frame.
type PanelSize struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Place centers a panel of the given size horizontally on a terminal of
// termWidth columns. The origin column is clamped at 0 when the terminal is
// narrower than the panel.
func Place(size PanelSize, termWidth int) Panel {
	x := (termWidth - size.Width) / 2
	if x < 0 {
		x = 0
	}
	return Panel{Y: 0, X: x, Width: size.Width, Height: size.Height}
}

// Origin is the first interior cell, where the render cursor starts.
func (p Panel) Origin() Pos {
	return Pos{X: p.X + 1, Y: p.Y + 1}
}

// InteriorWidth is the number of columns between the side borders.
func (p Panel) InteriorWidth() int {
	return max(p.Width-2, 0)
}

// Contains reports whether pos lies strictly inside the border.
func (p Panel) Contains(pos Pos) bool {
	return pos.X > p.X && pos.X < p.X+p.Width-1 &&
		pos.Y > p.Y && pos.Y < p.Y+p.Height-1
}

// Draw outlines the panel on s.
func (p Panel) Draw(s Surface, border BorderStyle, style Style) {
	if p.Width < 2 || p.Height < 2 {
		return
	}
	right := p.X + p.Width - 1
	bottom := p.Y + p.Height - 1

	s.Move(p.Y, p.X)
	s.PrintRune(border.TopLeft, style)
	for i := 0; i < p.Width-2; i++ {
		s.PrintRune(border.Horizontal, style)
	}
	s.PrintRune(border.TopRight, style)

	s.Move(bottom, p.X)
	s.PrintRune(border.BottomLeft, style)
	for i := 0; i < p.Width-2; i++ {
		s.PrintRune(border.Horizontal, style)
	}
	s.PrintRune(border.BottomRight, style)

	for row := p.Y + 1; row < bottom; row++ {
		s.Move(row, p.X)
		s.PrintRune(border.Vertical, style)
		s.Move(row, right)
		s.PrintRune(border.Vertical, style)
	}
}
