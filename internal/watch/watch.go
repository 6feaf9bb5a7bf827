package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/usefuulness/AirStatus/internal/record"
	"github.com/usefuulness/AirStatus/internal/scanner"
	"github.com/usefuulness/AirStatus/internal/ui"
)

// ErrInterrupted is returned when the watch session was ended by an
// operator interrupt rather than end-of-stream. main maps it to the
// conventional 130 exit status.
var ErrInterrupted = errors.New("interrupted")

// SpinnerLabel is shown on the busy line until the first scanner line
// arrives.
const SpinnerLabel = "scanning for AirPods"

// Controller owns the watch session lifecycle:
//
//	Idle -> Indicating -> Streaming -> Terminated
//
// It starts the spinner before the subprocess produces output, hands
// the terminal over to the renderer on the first line, and guarantees
// cursor restoration and a single farewell on every exit path.
type Controller struct {
	out      io.Writer
	spinner  *ui.Spinner
	renderer *ui.Renderer
	logger   *zap.Logger
}

// NewController wires a controller for the given capability profile.
// out defaults to os.Stdout.
func NewController(p ui.Profile, debug bool, out io.Writer, logger *zap.Logger) *Controller {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		out:      out,
		spinner:  ui.NewSpinner(p, out),
		renderer: ui.NewRenderer(p, debug),
		logger:   logger,
	}
}

// Run launches the scanner and renders its output until end-of-stream
// or interrupt. It returns nil on normal end-of-stream, ErrInterrupted
// on SIGINT/SIGTERM, and a *scanner.SpawnError when the subprocess
// could not be started.
func (c *Controller) Run(ctx context.Context, opts scanner.Options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Scoped acquisition: the spinner hides the cursor; these deferred
	// calls release it and say goodbye exactly once, no matter which
	// path terminates the session. Stop is idempotent, so the happy
	// path stopping the spinner early is fine.
	defer func() { fmt.Fprintln(c.out, c.renderer.Farewell()) }()
	defer c.spinner.Stop()

	c.spinner.Start(SpinnerLabel)

	stream, err := scanner.Start(opts, c.logger)
	if err != nil {
		c.spinner.Stop()
		return err
	}

	return c.consume(ctx, stream.Lines(), stream.Wait)
}

// consume renders lines in arrival order until the channel closes or
// the context is cancelled. Split from Run so tests can feed a line
// channel directly.
func (c *Controller) consume(ctx context.Context, lines <-chan string, wait func()) error {
	streaming := false
	for {
		select {
		case <-ctx.Done():
			c.spinner.Stop()
			c.logger.Info("interrupted by operator")
			// The terminal delivers the interrupt to the whole
			// foreground process group, so the scanner is already on
			// its way down; no custom cleanup here.
			return ErrInterrupted
		case line, ok := <-lines:
			if !ok {
				c.spinner.Stop()
				if wait != nil {
					wait()
				}
				c.logger.Info("scanner stream ended")
				return nil
			}
			c.render(line, &streaming)
		}
	}
}

// render prints one raw line as a dashboard block. The first line
// stops the spinner and prints the live-data banner before anything
// else touches the terminal.
func (c *Controller) render(line string, streaming *bool) {
	if !*streaming {
		// Stop blocks until the animation goroutine has ceased, so the
		// banner cannot interleave with a spinner frame.
		c.spinner.Stop()
		fmt.Fprintln(c.out, c.renderer.Banner())
		fmt.Fprintln(c.out)
		*streaming = true
	}

	structured := record.IsStructured(line)
	c.logger.Debug("rendering line", zap.Bool("structured", structured))

	if structured {
		fmt.Fprintln(c.out, c.renderer.Entry(record.Parse(line)))
	} else {
		fmt.Fprintln(c.out, c.renderer.Plain(line))
	}
	fmt.Fprintln(c.out)
}
