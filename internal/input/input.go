// Package input turns raw terminal bytes into game key symbols.
package input

import "bufio"

// Key is one recognized input symbol.
type Key int

const (
	KeyNone  Key = iota // No input pending this poll
	KeyLeft             // Move ship left
	KeyRight            // Move ship right
	KeyFire             // Fire a shot
	KeyQuit             // Leave the game
	KeyOther            // A keystroke the game ignores
)

// Stream parses raw terminal bytes on a background goroutine and delivers
// decoded keys through a buffered channel.
type Stream struct {
	keys chan Key
}

// StartStream spawns a goroutine that reads from r, decodes arrow-key CSI
// sequences, and queues parsed keys. The stream drains once r is exhausted;
// a drained stream reads as KeyQuit so callers never block forever.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{keys: make(chan Key, 64)}
	go s.read(r)
	return s
}

func (s *Stream) read(r *bufio.Reader) {
	defer close(s.keys)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b != '\x1b' {
			s.keys <- mapByte(b)
			continue
		}

		// CSI sequence: ESC [ <code>
		next, err := r.ReadByte()
		if err != nil {
			return
		}
		if next != '[' {
			s.keys <- KeyOther
			continue
		}
		code, err := r.ReadByte()
		if err != nil {
			return
		}
		switch code {
		case 'D': // Left arrow
			s.keys <- KeyLeft
		case 'C': // Right arrow
			s.keys <- KeyRight
		default:
			s.keys <- KeyOther
		}
	}
}

// mapByte translates a plain byte into its key symbol.
func mapByte(b byte) Key {
	switch b {
	case 'a', 'A', 'j', 'J':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ', 'z', 'Z':
		return KeyFire
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyOther
}

// Poll returns the next queued key without blocking, or KeyNone when no
// input is pending.
func (s *Stream) Poll() Key {
	select {
	case k, ok := <-s.keys:
		if !ok {
			return KeyQuit
		}
		return k
	default:
		return KeyNone
	}
}

// Wait blocks until a key arrives.
func (s *Stream) Wait() Key {
	k, ok := <-s.keys
	if !ok {
		return KeyQuit
	}
	return k
}
