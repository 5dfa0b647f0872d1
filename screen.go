package mpctui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal is a Surface that draws to a real terminal with ANSI escape
// sequences. Drawing goes to a back buffer; Flush writes only the cells that
// differ from what the terminal already shows.
type Terminal struct {
	in     *os.File
	out    io.Writer
	inFd   int // switched to raw mode
	sizeFd int // queried for dimensions

	front *Buffer // what's currently displayed
	back  *Buffer // what we're drawing to

	width  int
	height int

	row, col int

	state     *term.State
	lastStyle Style
	buf       bytes.Buffer

	pending []byte // read but not yet returned by PollKey
}

var _ Surface = (*Terminal)(nil)

// NewTerminal creates a terminal surface reading keys from in and drawing to
// out. When out is not a terminal its size falls back to 80x24.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	t := &Terminal{
		in:        in,
		out:       out,
		inFd:      -1,
		sizeFd:    -1,
		width:     80,
		height:    24,
		lastStyle: DefaultStyle(),
	}
	if in != nil {
		t.inFd = int(in.Fd())
	}
	if f, ok := out.(*os.File); ok {
		t.sizeFd = int(f.Fd())
	}
	if w, h, err := term.GetSize(t.sizeFd); err == nil {
		t.width, t.height = w, h
	}
	t.front = NewBuffer(t.width, t.height)
	t.back = NewBuffer(t.width, t.height)
	return t
}

// Size returns the current terminal dimensions. The terminal is queried on
// every call so a resize is picked up by the next frame.
func (t *Terminal) Size() (width, height int) {
	if w, h, err := term.GetSize(t.sizeFd); err == nil && (w != t.width || h != t.height) {
		t.resize(w, h)
	}
	return t.width, t.height
}

func (t *Terminal) resize(width, height int) {
	t.width, t.height = width, height
	t.front.Resize(width, height)
	t.back.Resize(width, height)
	// the terminal reflows on resize; redraw everything
	t.front.Clear()
	t.back.Clear()
	t.buf.WriteString("\x1b[2J")
}

// Move sets the draw position.
func (t *Terminal) Move(row, col int) {
	t.row, t.col = row, col
}

// Print draws s into the back buffer.
func (t *Terminal) Print(s string, style Style) {
	t.col = t.back.WriteString(t.col, t.row, s, style)
}

// PrintRune draws r into the back buffer.
func (t *Terminal) PrintRune(r rune, style Style) {
	t.col = t.back.WriteString(t.col, t.row, string(r), style)
}

// Clear clears the back buffer.
func (t *Terminal) Clear() {
	t.back.Clear()
}

// Flush writes the cells that changed since the last flush.
func (t *Terminal) Flush() error {
	cursorX, cursorY := -1, -1

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			cell := t.back.Get(x, y)
			if cell == t.front.Get(x, y) {
				continue
			}
			// second half of a double-width rune
			if cell.Rune == 0 {
				t.front.Set(x, y, cell)
				continue
			}

			if cursorX != x || cursorY != y {
				t.buf.WriteString("\x1b[")
				t.buf.WriteString(strconv.Itoa(y + 1))
				t.buf.WriteByte(';')
				t.buf.WriteString(strconv.Itoa(x + 1))
				t.buf.WriteByte('H')
			}

			t.writeCell(cell)
			t.front.Set(x, y, cell)
			cursorX = x + max(runewidth.RuneWidth(cell.Rune), 1)
			cursorY = y
		}
	}

	if t.buf.Len() == 0 {
		return nil
	}
	t.buf.WriteString("\x1b[0m")
	t.lastStyle = DefaultStyle()

	_, err := t.out.Write(t.buf.Bytes())
	t.buf.Reset()
	if err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

func (t *Terminal) writeCell(cell Cell) {
	if cell.Style != t.lastStyle {
		t.writeStyle(cell.Style)
		t.lastStyle = cell.Style
	}
	t.buf.WriteRune(cell.Rune)
}

// writeStyle writes the SGR sequence for style, resetting first so
// attributes from the previous run never leak.
func (t *Terminal) writeStyle(style Style) {
	t.buf.WriteString("\x1b[0")
	if style.Attr.Has(AttrBold) {
		t.buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		t.buf.WriteString(";2")
	}
	if style.Attr.Has(AttrUnderline) {
		t.buf.WriteString(";4")
	}
	if style.Attr.Has(AttrInverse) {
		t.buf.WriteString(";7")
	}
	t.writeColor(style.FG, 30)
	t.writeColor(style.BG, 40)
	t.buf.WriteByte('m')
}

func (t *Terminal) writeColor(c Color, base int) {
	if c.Mode != Color16 {
		return
	}
	if c.Index >= 8 {
		base += 60
		c.Index -= 8
	}
	t.buf.WriteByte(';')
	t.buf.WriteString(strconv.Itoa(base + int(c.Index)))
}

// PollKey returns the next key. Input left over from an earlier read is
// returned without waiting; otherwise it waits up to timeout for more.
// Escape sequences such as arrow keys are consumed whole and reported as
// their leading ESC.
func (t *Terminal) PollKey(timeout time.Duration) (rune, bool, error) {
	if t.in == nil {
		return 0, false, errors.New("terminal has no input")
	}
	if len(t.pending) > 0 {
		return t.nextKey(), true, nil
	}

	ready, err := pollInput(t.inFd, timeout)
	if err != nil {
		return 0, false, fmt.Errorf("failed to poll input: %w", err)
	}
	if !ready {
		return 0, false, nil
	}

	var p [64]byte
	n, err := t.in.Read(p[:])
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, false, fmt.Errorf("failed to read input: %w", err)
	}
	t.pending = append(t.pending, p[:n]...)
	return t.nextKey(), true, nil
}

// nextKey pops one key off pending, which must not be empty.
func (t *Terminal) nextKey() rune {
	r, size := utf8.DecodeRune(t.pending)
	if r == keyEscape {
		size = escapeLen(t.pending)
	}
	t.pending = t.pending[size:]
	if len(t.pending) == 0 {
		t.pending = nil
	}
	return r
}

// escapeLen returns how many bytes of b, which starts with ESC, belong to
// one key: a CSI sequence up to its final byte, a three byte SS3 sequence,
// or a lone ESC.
func escapeLen(b []byte) int {
	if len(b) < 2 {
		return 1
	}
	switch b[1] {
	case '[':
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return i + 1
			}
		}
		return len(b)
	case 'O':
		return min(3, len(b))
	}
	return 1
}

// Open puts the terminal into raw mode, switches to the alternate screen and
// hides the cursor.
func (t *Terminal) Open() error {
	if t.state != nil {
		return nil
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	t.state = state

	t.front.Clear()
	_, err = io.WriteString(t.out, "\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l")
	return err
}

// Close restores the terminal to the state Open found it in.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	_, werr := io.WriteString(t.out, "\x1b[0m\x1b[?25h\x1b[?1049l")

	err := term.Restore(t.inFd, t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("failed to restore termios: %w", err)
	}
	return werr
}
