// Package animate plays a precomputed frame sequence with a delay between
// frames. It is how the graph and data-structure tools and the auto-play
// mode of the sorting player advance on their own.
package animate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/session"
)

// ErrCanceled wraps the context error of an interrupted run.
var ErrCanceled = errors.New("animate: canceled")

const DefaultDelay = 800 * time.Millisecond

type Options struct {
	Delay time.Duration
	// OnIdle restores the surface to its idle state after a cancel.
	OnIdle func()
	// Guard, when set, is held for the whole run.
	Guard  *session.Guard
	Logger *log.Logger
}

// Run shows frames in order, waiting opts.Delay between consecutive frames.
// The context is checked before every frame and during every wait.
func Run[F any](ctx context.Context, frames []F, opts Options, show func(F)) error {
	if opts.Guard != nil {
		if err := opts.Guard.Begin(); err != nil {
			return err
		}
		defer opts.Guard.End()
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	for i, f := range frames {
		if i > 0 {
			select {
			case <-ctx.Done():
				return canceled(ctx, opts, logger, i, len(frames))
			case <-time.After(opts.Delay):
			}
		}
		if ctx.Err() != nil {
			return canceled(ctx, opts, logger, i, len(frames))
		}
		show(f)
	}
	logger.Debug("animation finished", "frames", len(frames))
	return nil
}

func canceled(ctx context.Context, opts Options, logger *log.Logger, at, total int) error {
	logger.Debug("animation canceled", "frame", at, "frames", total)
	if opts.OnIdle != nil {
		opts.OnIdle()
	}
	return fmt.Errorf("%w after %d of %d frames: %w", ErrCanceled, at, total, ctx.Err())
}
