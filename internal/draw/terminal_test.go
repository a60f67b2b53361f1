package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalDrawCharPositionsCursor(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 80, 24)

	term.DrawChar(5, 3, 'A')
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	// ANSI coordinates are 1-based row;col.
	if got := out.String(); got != "\x1b[4;6HA" {
		t.Fatalf("output = %q, want %q", got, "\x1b[4;6HA")
	}
}

func TestTerminalClipsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 10, 5)

	term.DrawChar(-1, 2, 'x')
	term.DrawChar(10, 2, 'x')
	term.DrawChar(3, -1, 'x')
	term.DrawChar(3, 5, 'x')
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("clipped draws produced output %q", out.String())
	}
}

func TestTerminalDrawTextClipsAtEdge(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 10, 5)

	term.DrawText(8, 1, "abc") // Only 'a' and 'b' fit
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Fatalf("visible runes missing from %q", got)
	}
	if strings.Contains(got, "c") {
		t.Fatalf("rune beyond the field was written: %q", got)
	}
}

func TestTerminalBorderAndClear(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 4, 3)

	term.Clear()
	term.DrawBorder()
	if err := term.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	for _, want := range []string{"\x1b[H\x1b[2J", "┌──┐", "└──┘", "│"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q missing %q", got, want)
		}
	}
}

func TestTerminalSize(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{}, 80, 24)
	w, h := term.Size()
	if w != 80 || h != 24 {
		t.Fatalf("size = %dx%d, want 80x24", w, h)
	}
}
