package mpctui

import "strconv"

// Actions declares a row of buttons across the bottom of the panel. The
// interior width is split evenly between the labels; any remainder is left
// empty. Each column shows its button and, one row below, a dim 1-based
// number hint. The hint row is the last interior row, so buttons sit two rows
// above the bottom border. active is the 1-based label to highlight, 0 for
// none.
func (f *Frame) Actions(labels []string, active int) []Element {
	f.actions = labels
	if len(labels) == 0 {
		return nil
	}

	size := f.panel.InteriorWidth() / len(labels)
	buttonRow := f.panel.Y + f.panel.Height - 3
	hintRow := buttonRow + 1

	buttons := make([]Element, 0, len(labels))
	for i, label := range labels {
		x := f.panel.X + 1 + size*i

		f.cursor.Set(Pos{X: x, Y: buttonRow})
		buttons = append(buttons, f.Button(label, max(size-2, 0), active-1 == i))

		f.surface.Move(hintRow, x)
		f.surface.Print(center(strconv.Itoa(i+1), size, ' '), f.theme.Hint)
	}
	f.surface.Move(f.panel.Y, f.panel.X)

	return buttons
}

// ActionLabels returns the labels of the last action row declared.
func (f *Frame) ActionLabels() []string {
	return f.actions
}
