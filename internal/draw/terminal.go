// Package draw renders the game field to a terminal, either through raw
// ANSI escape sequences or through a tcell screen.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// maxChunkSize bounds single writes for smooth flow over slow terminals.
const maxChunkSize = 1400

// Terminal is an ANSI escape-sequence display. Draw calls accumulate in a
// buffer and Present flushes the whole frame at once; cells outside the
// field are clipped silently.
type Terminal struct {
	w      *bufio.Writer
	buf    strings.Builder
	numBuf [20]byte // Scratch buffer for allocation-free integer formatting
	width  int
	height int
}

// NewTerminal creates a display of the given size writing to w.
func NewTerminal(w io.Writer, width, height int) *Terminal {
	return &Terminal{
		w:      bufio.NewWriterSize(w, 8192),
		width:  width,
		height: height,
	}
}

// Size returns the field dimensions.
func (t *Terminal) Size() (width, height int) {
	return t.width, t.height
}

// Clear schedules a full screen erase for this frame.
func (t *Terminal) Clear() {
	t.buf.WriteString("\033[H\033[2J")
}

// moveCursor appends an ANSI cursor position sequence. x and y are 0-based
// field coordinates; ANSI rows and columns are 1-based.
func (t *Terminal) moveCursor(x, y int) {
	t.buf.WriteString("\033[")
	t.buf.Write(strconv.AppendInt(t.numBuf[:0], int64(y+1), 10))
	t.buf.WriteByte(';')
	t.buf.Write(strconv.AppendInt(t.numBuf[:0], int64(x+1), 10))
	t.buf.WriteByte('H')
}

// DrawChar places a single rune, clipping silently outside the field.
func (t *Terminal) DrawChar(x, y int, ch rune) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.moveCursor(x, y)
	t.buf.WriteRune(ch)
}

// DrawText writes a string starting at (x, y). Runes that fall outside the
// field are clipped.
func (t *Terminal) DrawText(x, y int, s string) {
	if y < 0 || y >= t.height {
		return
	}
	i := 0
	for _, ch := range s {
		t.DrawChar(x+i, y, ch)
		i++
	}
}

// DrawBorder draws a box along the field edge.
func (t *Terminal) DrawBorder() {
	if t.width < 2 || t.height < 2 {
		return
	}
	inner := strings.Repeat("─", t.width-2)
	t.moveCursor(0, 0)
	t.buf.WriteString("┌" + inner + "┐")
	for y := 1; y < t.height-1; y++ {
		t.DrawChar(0, y, '│')
		t.DrawChar(t.width-1, y, '│')
	}
	t.moveCursor(0, t.height-1)
	t.buf.WriteString("└" + inner + "┘")
}

// Present flushes the accumulated frame to the underlying writer in chunks.
func (t *Terminal) Present() error {
	data := t.buf.String()
	t.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := t.w.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return t.w.Flush()
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
