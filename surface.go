package mpctui

import (
	"fmt"
	"strings"
	"time"
)

// Surface is the terminal boundary the engine draws through. Rows and
// columns are zero-based; drawing outside the surface is clipped.
type Surface interface {
	// Size returns the current dimensions in character cells.
	Size() (width, height int)
	// Move sets the draw position.
	Move(row, col int)
	// Print draws a text run at the draw position and advances it.
	Print(s string, style Style)
	// PrintRune draws a single glyph at the draw position and advances it.
	PrintRune(r rune, style Style)
	// Clear blanks the whole surface.
	Clear()
	// Flush presents the frame.
	Flush() error
	// PollKey waits at most timeout for one key press. ok is false when no
	// key arrived in time.
	PollKey(timeout time.Duration) (key rune, ok bool, err error)
	// Open prepares the terminal (raw input, hidden cursor); Close undoes it.
	Open() error
	Close() error
}

// MemSurface is an in-memory Surface backed by a Buffer. Keys are supplied
// with Feed. Every draw call since the last Clear is recorded in a
// transcript so frames can be compared byte for byte.
type MemSurface struct {
	buf      *Buffer
	row, col int
	keys     []rune
	log      strings.Builder
	flushes  int
	open     bool
}

var _ Surface = (*MemSurface)(nil)

// NewMemSurface creates an in-memory surface of the given size.
func NewMemSurface(width, height int) *MemSurface {
	return &MemSurface{buf: NewBuffer(width, height)}
}

// Size returns the surface dimensions.
func (m *MemSurface) Size() (width, height int) {
	return m.buf.Width(), m.buf.Height()
}

// Resize changes the surface dimensions, keeping content that still fits.
func (m *MemSurface) Resize(width, height int) {
	m.buf.Resize(width, height)
}

// Move sets the draw position.
func (m *MemSurface) Move(row, col int) {
	m.row, m.col = row, col
	fmt.Fprintf(&m.log, "move %d %d\n", row, col)
}

// Print draws s at the draw position.
func (m *MemSurface) Print(s string, style Style) {
	m.col = m.buf.WriteString(m.col, m.row, s, style)
	fmt.Fprintf(&m.log, "print %q %d/%d/%d\n", s, style.Attr, style.FG.Index, style.BG.Index)
}

// PrintRune draws r at the draw position.
func (m *MemSurface) PrintRune(r rune, style Style) {
	m.col = m.buf.WriteString(m.col, m.row, string(r), style)
	fmt.Fprintf(&m.log, "rune %q %d\n", r, style.Attr)
}

// Clear blanks the buffer and starts a new transcript.
func (m *MemSurface) Clear() {
	m.buf.Clear()
	m.row, m.col = 0, 0
	m.log.Reset()
}

// Flush counts presented frames.
func (m *MemSurface) Flush() error {
	m.flushes++
	return nil
}

// Feed queues keys for PollKey.
func (m *MemSurface) Feed(keys ...rune) {
	m.keys = append(m.keys, keys...)
}

// PollKey pops the next queued key. It never waits: an empty queue is
// reported as no key immediately.
func (m *MemSurface) PollKey(time.Duration) (rune, bool, error) {
	if len(m.keys) == 0 {
		return 0, false, nil
	}
	k := m.keys[0]
	m.keys = m.keys[1:]
	return k, true, nil
}

// Open marks the surface open.
func (m *MemSurface) Open() error {
	m.open = true
	return nil
}

// Close marks the surface closed.
func (m *MemSurface) Close() error {
	m.open = false
	return nil
}

// Buffer returns the cells drawn so far.
func (m *MemSurface) Buffer() *Buffer {
	return m.buf
}

// Transcript returns every draw call issued since the last Clear.
func (m *MemSurface) Transcript() string {
	return m.log.String()
}

// Flushes returns how many frames have been presented.
func (m *MemSurface) Flushes() int {
	return m.flushes
}

// IsOpen reports whether Open was called without a matching Close.
func (m *MemSurface) IsOpen() bool {
	return m.open
}
