package mpctui

import "strconv"

// Pos is a cell position: X is the column, Y is the row (growing downward).
type Pos struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Pos) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}
