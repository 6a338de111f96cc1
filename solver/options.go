package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Option configures a CycleStructureSolver via functional arguments. An
// invalid Option (e.g. a negative max solution length) is recorded
// internally and surfaced as ErrOptionViolation when the solver is
// constructed.
type Option func(*Options)

// Options holds the resolved configuration a CycleStructureSolver was
// constructed with.
type Options struct {
	// Ctx allows cancellation and deadlines on a running search. Checked
	// periodically (not on every node) since the search's hot loop cannot
	// afford a channel select per recursive call.
	Ctx context.Context

	// MaxSolutionLength caps the depth the outer loop will search to. 0
	// means no caller-supplied cap (the 255 hard ceiling still applies).
	MaxSolutionLength int

	// Logger receives, at Debug level, each depth the outer loop starts
	// and the nodes visited once that depth is exhausted. Defaults to a
	// disabled logger: a library must not log by default.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns an Options with sane defaults: Context.Background,
// no max length cap, and logging disabled.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		MaxSolutionLength: 0,
		Logger:            zerolog.Nop(),
	}
}

// WithCancel sets the context a running search checks for cancellation or
// deadline expiry.
func WithCancel(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutionLength caps the depth the search will reach before
// reporting ErrMaxSolutionLengthExceeded. n must be non-negative; 0 means
// no cap.
func WithMaxSolutionLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max solution length cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutionLength = n
	}
}

// WithLogger sets the logger a solver reports search progress through.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
