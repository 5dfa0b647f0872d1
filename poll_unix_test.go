//go:build unix

package mpctui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
	"time"
)

func TestTerminalPollKey(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	term := NewTerminal(r, &bytes.Buffer{})

	t.Run("times out without input", func(t *testing.T) {
		start := time.Now()
		_, ok, err := term.PollKey(10 * time.Millisecond)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("expected no key")
		}
		if time.Since(start) < 5*time.Millisecond {
			t.Error("expected poll to wait for the timeout")
		}
	})

	t.Run("keys from one read are returned in order", func(t *testing.T) {
		if _, err := w.Write([]byte("lq")); err != nil {
			t.Fatal(err)
		}
		for _, want := range "lq" {
			key, ok, err := term.PollKey(time.Second)
			if err != nil {
				t.Fatal(err)
			}
			if !ok || key != want {
				t.Errorf("expected %q, got %q (ok=%v)", want, key, ok)
			}
		}
		if _, ok, _ := term.PollKey(0); ok {
			t.Error("expected input to be drained")
		}
	})

	t.Run("escape sequences are one key", func(t *testing.T) {
		if _, err := w.Write([]byte("\x1b[Aj\x1bOPk\x1b")); err != nil {
			t.Fatal(err)
		}
		for _, want := range []rune{keyEscape, 'j', keyEscape, 'k', keyEscape} {
			key, ok, err := term.PollKey(time.Second)
			if err != nil {
				t.Fatal(err)
			}
			if !ok || key != want {
				t.Errorf("expected %q, got %q (ok=%v)", want, key, ok)
			}
		}
	})

	t.Run("closed input is an error", func(t *testing.T) {
		w.Close()
		_, _, err := term.PollKey(time.Second)
		if !errors.Is(err, io.EOF) {
			t.Errorf("expected EOF, got %v", err)
		}
	})
}
