package mpctui

import "slices"

// Direction is a spatial focus move.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Candidates returns the elements a move from cursor in direction d may land
// on, best first.
//
// Up keeps focusable elements on rows above the cursor and reverses
// declaration order, so the last element declared on the nearest row comes
// first. Down and Right keep declaration order. Left does not filter on
// Focusable: any element earlier on the cursor's row is a candidate,
// including buttons.
func Candidates(d Direction, cursor Pos, elements []Element) []Element {
	var out []Element
	for _, el := range elements {
		var ok bool
		switch d {
		case Up:
			ok = el.Focusable && el.Pos.Y < cursor.Y
		case Down:
			ok = el.Focusable && el.Pos.Y > cursor.Y
		case Left:
			ok = el.Pos.Y == cursor.Y && el.Pos.X < cursor.X
		case Right:
			ok = el.Focusable && el.Pos.Y == cursor.Y && el.Pos.X > cursor.X
		}
		if ok {
			out = append(out, el)
		}
	}
	if d == Up {
		slices.Reverse(out)
	}
	return out
}

// Focus is the focus cursor: the position of the focused element. It is the
// only layout state kept from one frame to the next.
type Focus struct {
	cursor Pos
}

// Cursor returns the focused position.
func (f *Focus) Cursor() Pos {
	return f.cursor
}

// Set moves focus to an absolute position.
func (f *Focus) Set(pos Pos) {
	f.cursor = pos
}

// Update moves focus to the first candidate. An empty candidate set leaves
// focus where it is; there is no wraparound.
func (f *Focus) Update(candidates []Element) bool {
	if len(candidates) == 0 {
		return false
	}
	f.cursor = candidates[0].Pos
	return true
}

// Move computes the candidates for d and applies them.
func (f *Focus) Move(d Direction, elements []Element) bool {
	return f.Update(Candidates(d, f.cursor, elements))
}

// First focuses the first focusable element, if any.
func (f *Focus) First(elements []Element) bool {
	i := slices.IndexFunc(elements, func(el Element) bool { return el.Focusable })
	if i < 0 {
		return false
	}
	f.cursor = elements[i].Pos
	return true
}
