package mpctui

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}

		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				c := buf.Get(x, y)
				if c.Rune != ' ' {
					t.Errorf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			got := buf.InBounds(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Inverse())

		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// out of bounds reads are empty, writes are dropped
		buf.Set(-1, -1, cell)
		if oob := buf.Get(-1, -1); oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(20, 5)
		end := buf.WriteString(2, 1, "Hello", DefaultStyle())

		if end != 7 {
			t.Errorf("expected end column 7, got %d", end)
		}
		if got := buf.GetLine(1); got != "  Hello" {
			t.Errorf("expected %q, got %q", "  Hello", got)
		}
	})

	t.Run("WriteStringClipsRight", func(t *testing.T) {
		buf := NewBuffer(5, 1)
		buf.WriteString(3, 0, "abcdef", DefaultStyle())

		if got := buf.GetLine(0); got != "   ab" {
			t.Errorf("expected %q, got %q", "   ab", got)
		}
	})

	t.Run("WriteStringSkipsLeft", func(t *testing.T) {
		buf := NewBuffer(5, 1)
		end := buf.WriteString(-2, 0, "abcd", DefaultStyle())

		if got := buf.GetLine(0); got != "cd" {
			t.Errorf("expected %q, got %q", "cd", got)
		}
		if end != 2 {
			t.Errorf("expected end column 2, got %d", end)
		}
	})

	t.Run("WriteStringWide", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		end := buf.WriteString(0, 0, "日本x", DefaultStyle())

		if end != 5 {
			t.Errorf("expected end column 5, got %d", end)
		}
		if buf.Get(1, 0).Rune != 0 {
			t.Errorf("expected placeholder after wide rune, got %q", buf.Get(1, 0).Rune)
		}
		if got := buf.GetLine(0); got != "日本x" {
			t.Errorf("expected %q, got %q", "日本x", got)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, "abcd", DefaultStyle())
		buf.Resize(2, 3)

		if buf.Width() != 2 || buf.Height() != 3 {
			t.Fatalf("expected 2x3, got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.GetLine(0); got != "ab" {
			t.Errorf("expected %q, got %q", "ab", got)
		}
		if got := buf.GetLine(2); got != "" {
			t.Errorf("expected empty new row, got %q", got)
		}
	})

	t.Run("StringTrimmed", func(t *testing.T) {
		buf := NewBuffer(6, 4)
		buf.WriteString(0, 0, "ab", DefaultStyle())
		buf.WriteString(1, 1, "c", DefaultStyle())

		if got := buf.StringTrimmed(); got != "ab\n c" {
			t.Errorf("expected %q, got %q", "ab\n c", got)
		}
		if got := buf.String(); len(got) != 6*4+3 {
			t.Errorf("expected untrimmed length %d, got %d", 6*4+3, len(got))
		}
	})
}
