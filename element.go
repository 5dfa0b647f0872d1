package mpctui

// ElementKind is the closed set of widget variants: TitleKind, InputKind and
// ButtonKind.
type ElementKind interface {
	elementKind()
}

// TitleKind is a centered panel heading. Text is the possibly truncated
// heading without its `=` decoration.
type TitleKind struct {
	Text string
}

// InputKind is a labelled value field.
type InputKind struct {
	Label string
	Value string
}

// ButtonKind is a bracketed action label.
type ButtonKind struct {
	Label  string
	Active bool
}

func (TitleKind) elementKind()  {}
func (InputKind) elementKind()  {}
func (ButtonKind) elementKind() {}

// Element is one widget declared during the current frame. Elements carry no
// identity across frames; Pos doubles as the key the focus cursor is
// compared against.
type Element struct {
	Kind      ElementKind
	Pos       Pos
	Width     int    // rendered cells including decoration
	Focusable bool   // only inputs take focus
	Text      string // exactly what was drawn
}
