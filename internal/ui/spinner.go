package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Cursor and line control sequences.
const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\r\x1b[K"
)

// frameInterval is the fixed animation rate.
const frameInterval = 120 * time.Millisecond

// Spinner renders a busy animation on the current terminal line while
// an operation of unknown duration is pending. It is purely cosmetic:
// write errors inside the animation loop are swallowed and never abort
// the host process.
//
// The terminal line is a shared resource. Stop blocks until the
// animation goroutine has fully ceased, so once Stop returns no
// further spinner writes can race with subsequent output.
type Spinner struct {
	out    io.Writer
	frames []string

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner writing to out (os.Stdout when nil),
// with the frame set chosen by the capability profile.
func NewSpinner(p Profile, out io.Writer) *Spinner {
	if out == nil {
		out = os.Stdout
	}
	frames := spinner.Line.Frames
	if p.Unicode {
		frames = spinner.Dot.Frames
	}
	return &Spinner{out: out, frames: frames}
}

// Start hides the cursor and begins the animation loop with the given
// label. Calling Start while already running is a no-op.
func (s *Spinner) Start(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	_, _ = fmt.Fprint(s.out, hideCursor)
	go s.loop(label, s.stop, s.done)
}

// Stop terminates the animation, clears the line, and restores cursor
// visibility. It blocks until the animation goroutine has exited, and
// is safe to call repeatedly or when not running.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	_, _ = fmt.Fprint(s.out, clearLine+showCursor)
	s.running = false
}

func (s *Spinner) loop(label string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	frame := 0
	_, _ = fmt.Fprintf(s.out, "\r%s %s", s.frames[frame], label)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame = (frame + 1) % len(s.frames)
			_, _ = fmt.Fprintf(s.out, "\r%s %s", s.frames[frame], label)
		}
	}
}
