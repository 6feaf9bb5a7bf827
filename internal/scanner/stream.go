package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/usefuulness/AirStatus/internal/config"
)

// Environment variables consumed by the scanner subprocess.
const (
	EnvMinRSSI   = "AIRSTATUS_MIN_RSSI"
	EnvDebug     = "AIRSTATUS_DEBUG"
	EnvUpdateSec = "AIRSTATUS_UPDATE_SEC"
	EnvNameHints = "AIRSTATUS_NAME_HINTS"
)

// Options describes how to launch the scanner subprocess.
type Options struct {
	// Interpreter is the Python interpreter binary.
	Interpreter string
	// Script is the path to the scanner script.
	Script string
	// Args are operator-supplied arguments forwarded to the scanner
	// unchanged.
	Args []string
	// MinRSSI, Debug, UpdateSec, NameHints populate the scanner's
	// environment.
	MinRSSI   int
	Debug     bool
	UpdateSec float64
	NameHints []string
}

// FromConfig builds launch options from the loaded configuration plus
// forwarded operator args.
func FromConfig(cfg *config.Config, args []string) Options {
	return Options{
		Interpreter: cfg.ResolveInterpreter(),
		Script:      cfg.Scanner,
		Args:        args,
		MinRSSI:     cfg.MinRSSI,
		Debug:       cfg.Debug,
		UpdateSec:   cfg.UpdateSec,
		NameHints:   cfg.NameHints,
	}
}

// Stream is a running scanner subprocess exposed as a sequence of
// output lines. Lines arrive on Lines() in emission order; the channel
// closes when the subprocess closes its output.
type Stream struct {
	cmd    *exec.Cmd
	lines  chan string
	logger *zap.Logger
}

// Start spawns the scanner and begins forwarding its output
// line-by-line. Both stdout and stderr feed the same stream so
// diagnostic text interleaves with records the way the operator would
// see it in a plain run.
//
// A spawn failure (missing interpreter or script) is fatal setup: it
// returns a *SpawnError and nothing is retried here.
func Start(opts Options, logger *zap.Logger) (*Stream, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	args := append([]string{"-u", opts.Script}, opts.Args...)
	cmd := exec.Command(opts.Interpreter, args...)
	cmd.Env = append(os.Environ(),
		EnvMinRSSI+"="+strconv.Itoa(opts.MinRSSI),
		EnvDebug+"="+boolFlag(opts.Debug),
		EnvUpdateSec+"="+strconv.FormatFloat(opts.UpdateSec, 'f', -1, 64),
		// Belt and braces with -u: records must arrive per line, not
		// batched by the interpreter's block buffering.
		"PYTHONUNBUFFERED=1",
	)
	if len(opts.NameHints) > 0 {
		cmd.Env = append(cmd.Env, EnvNameHints+"="+strings.Join(opts.NameHints, ","))
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	logger.Info("spawning scanner",
		zap.String("interpreter", opts.Interpreter),
		zap.String("script", opts.Script),
		zap.Strings("args", opts.Args),
		zap.Int("min_rssi", opts.MinRSSI),
		zap.Bool("debug", opts.Debug),
	)

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{
			Interpreter: opts.Interpreter,
			Script:      opts.Script,
			Err:         err,
		}
	}

	s := &Stream{
		cmd:    cmd,
		lines:  make(chan string),
		logger: logger,
	}
	go func() {
		defer close(s.lines)
		forwardLines(stdout, s.lines)
	}()
	return s, nil
}

// Lines returns the channel of subprocess output lines. The channel is
// closed at end of stream.
func (s *Stream) Lines() <-chan string {
	return s.lines
}

// Wait reaps the subprocess after its stream has ended. A non-zero
// exit is logged but not surfaced as an error: stream termination is a
// normal state transition, and interrupt delivery to the process group
// already takes the scanner down alongside the launcher.
func (s *Stream) Wait() {
	if err := s.cmd.Wait(); err != nil {
		s.logger.Debug("scanner exited", zap.Error(err))
		return
	}
	s.logger.Debug("scanner exited cleanly")
}

// forwardLines reads r line-by-line and sends each line to out in
// order. It returns when r reaches EOF or errors.
func forwardLines(r io.Reader, out chan<- string) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		out <- sc.Text()
	}
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
