// Package input decodes raw terminal bytes into per-frame input state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals deliver repeats, not press/release, so held movement
// keys are reconstructed from repeat timing.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Movement keys are
// level-triggered (held); action keys are consumed as edges by the driver.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Escape  bool
	Pause   bool // 'p'
	Mute    bool // 'm'
	Restart bool // 'r'
	// FireBase is the 0-based base index selected by keys 1-3, or -1.
	FireBase int
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit     time.Time
	left     time.Time
	right    time.Time
	up       time.Time
	down     time.Time
	space    time.Time
	enter    time.Time
	escape   time.Time
	pause    time.Time
	mute     time.Time
	restart  time.Time
	fire     time.Time
	fireBase int
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous key combinations can be detected.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader fails (session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{fireBase: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking
// and returns the resulting frame input. Arrow-key escape sequences are
// folded into the directional state.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	input := Input{
		Quit:     now.Sub(s.state.quit) < keyHoldDuration,
		Left:     now.Sub(s.state.left) < keyHoldDuration,
		Right:    now.Sub(s.state.right) < keyHoldDuration,
		Up:       now.Sub(s.state.up) < keyHoldDuration,
		Down:     now.Sub(s.state.down) < keyHoldDuration,
		Space:    now.Sub(s.state.space) < keyHoldDuration,
		Enter:    now.Sub(s.state.enter) < keyHoldDuration,
		Escape:   now.Sub(s.state.escape) < keyHoldDuration,
		Pause:    now.Sub(s.state.pause) < keyHoldDuration,
		Mute:     now.Sub(s.state.mute) < keyHoldDuration,
		Restart:  now.Sub(s.state.restart) < keyHoldDuration,
		FireBase: -1,
	}

	if now.Sub(s.state.fire) < keyHoldDuration {
		input.FireBase = s.state.fireBase
	}

	return input
}

// Reset clears held-key state, e.g. when switching screens so a held key
// does not leak into the next mode.
func Reset(s *Stream) {
	s.state = keyState{fireBase: -1}
}

// applyByteToState updates the key state timestamps for a single byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case 'p', 'P':
		state.pause = now
	case 'm', 'M':
		state.mute = now
	case 'r', 'R':
		state.restart = now
	case '1', '2', '3':
		state.fire = now
		state.fireBase = int(b - '1')
	}
}
