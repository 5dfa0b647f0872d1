package mpctui

import "github.com/mattn/go-runewidth"

// Frame is the per-frame declaration context. A view receives a fresh Frame
// each frame, declares its widgets through it, and the Frame draws them
// immediately while recording where they landed.
type Frame struct {
	surface  Surface
	panel    Panel
	theme    Theme
	focus    Pos
	active   int
	cursor   RenderCursor
	elements []Element
	actions  []string
}

func newFrame(s Surface, p Panel, theme Theme, focus Pos, active int) *Frame {
	f := &Frame{
		surface: s,
		panel:   p,
		theme:   theme,
		focus:   focus,
		active:  active,
	}
	f.cursor.Reset(p)
	return f
}

// Panel returns the panel widgets are placed in this frame.
func (f *Frame) Panel() Panel {
	return f.panel
}

// Elements returns the widgets declared so far, in declaration order.
func (f *Frame) Elements() []Element {
	return f.elements
}

// Cursor returns the render cursor position.
func (f *Frame) Cursor() Pos {
	return f.cursor.Pos()
}

// Focus returns the focus cursor the frame highlights against.
func (f *Frame) Focus() Pos {
	return f.focus
}

// ActiveAction returns the 1-based selected action, or 0 for none.
func (f *Frame) ActiveAction() int {
	return f.active
}

// NextRow moves the render cursor to the start of the next interior row.
func (f *Frame) NextRow() {
	f.cursor.NextRow()
}

// MoveRenderCursor shifts the render cursor by (dx, dy).
func (f *Frame) MoveRenderCursor(dx, dy int) Pos {
	return f.cursor.Move(dx, dy)
}

func (f *Frame) add(e Element) Element {
	f.elements = append(f.elements, e)
	return e
}

// Title declares the panel heading: text centered across the interior width
// between runs of '='. Long titles are cut and end in "...". The render
// cursor moves to the next row.
func (f *Frame) Title(text string) Element {
	shown, line := formatTitle(text, f.panel.InteriorWidth())
	pos := f.cursor.Pos()

	f.surface.Move(pos.Y, pos.X)
	f.surface.Print(line, f.theme.Regular)
	f.cursor.NextRow()

	return f.add(Element{
		Kind:  TitleKind{Text: shown},
		Pos:   pos,
		Width: runewidth.StringWidth(line),
		Text:  line,
	})
}

// Input declares a focusable "label: value" field. The value is padded to at
// least max(width, len(label)+1) cells and drawn highlighted when the focus
// cursor sits on this input.
func (f *Frame) Input(label, value string, width int) Element {
	prefix, field, sep := formatInput(label, value, width)
	text := prefix + field + sep
	pos := f.cursor.Pos()

	f.surface.Move(pos.Y, pos.X)
	f.surface.Print(prefix, f.theme.Regular)
	f.surface.Print(field, f.theme.Pair(pairFor(pos == f.focus)))
	f.surface.Print(sep, f.theme.Regular)

	w := runewidth.StringWidth(text)
	f.cursor.Advance(w)

	return f.add(Element{
		Kind:      InputKind{Label: label, Value: value},
		Pos:       pos,
		Width:     w,
		Focusable: true,
		Text:      text,
	})
}

// Button declares "[ label ]" centered in width cells (Auto for the label
// plus one space each side). Active buttons use the highlight pair. Buttons
// never take focus.
func (f *Frame) Button(label string, width int, active bool) Element {
	text := formatButton(label, width)
	pos := f.cursor.Pos()

	f.surface.Move(pos.Y, pos.X)
	f.surface.Print(text, f.theme.Pair(pairFor(active)))

	w := runewidth.StringWidth(text)
	f.cursor.Advance(w)

	return f.add(Element{
		Kind:  ButtonKind{Label: label, Active: active},
		Pos:   pos,
		Width: w,
		Text:  text,
	})
}
