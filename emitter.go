package jelka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultProgressInterval is the number of frames between progress lines.
const DefaultProgressInterval = 100

// EmitterOpts are options for an emitter.
type EmitterOpts struct {
	// Header is the header of the generated stream. Its LEDCount and
	// Duration decide the shape of the output.
	Header Header
	// Pattern produces the frame colors. Defaults to Gradient.
	Pattern Pattern
	// Progress receives a "Frame <n> / <duration>" line every
	// ProgressInterval frames. Nil disables progress reporting.
	Progress io.Writer
	// ProgressInterval defaults to DefaultProgressInterval.
	ProgressInterval int
	// Logger is the logger to use for the emitter.
	Logger *slog.Logger
}

// Emitter generates a whole animation stream.
type Emitter struct {
	opts EmitterOpts
}

// NewEmitter creates a new emitter.
func NewEmitter(opts EmitterOpts) *Emitter {
	if opts.Pattern == nil {
		opts.Pattern = Gradient
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(discardHandler{})
	}
	return &Emitter{
		opts: opts,
	}
}

// Emit writes the header and every frame to w in increasing frame order.
// The context is checked between frames. Write errors are not retried.
func (e *Emitter) Emit(ctx context.Context, w io.Writer) error {
	logger := e.opts.Logger

	fw := NewWriter(w, e.opts.Header)
	h := fw.Header()

	logger.DebugContext(ctx,
		"emitting frames",
		"led_count", h.LEDCount,
		"duration", h.Duration,
		"fps", h.FPS)

	start := time.Now()

	if err := fw.WriteHeader(); err != nil {
		return err
	}

	frame := make(Frame, h.LEDCount)
	for i := 0; i < h.Duration; i++ {
		if err := ctx.Err(); err != nil {
			err = fmt.Errorf("stopped at frame %d: %w", i, err)
			return errors.Join(err, fw.Flush())
		}

		RenderFrame(frame, e.opts.Pattern, i)
		if err := fw.WriteFrame(frame); err != nil {
			return err
		}

		if e.opts.Progress != nil && i%e.opts.ProgressInterval == 0 {
			if _, err := fmt.Fprintf(e.opts.Progress, "Frame %d / %d\n", i, h.Duration); err != nil {
				return fmt.Errorf("failed to write progress: %w", err)
			}
		}
	}

	if err := fw.Flush(); err != nil {
		return err
	}

	logger.DebugContext(ctx,
		"emitted all frames",
		"frames", fw.Frames(),
		"elapsed", time.Since(start))

	return nil
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h discardHandler) WithGroup(string) slog.Handler { return h }
