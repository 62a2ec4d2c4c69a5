// SPDX-License-Identifier: MIT
// Package: meshcomp/components
//
// types.go — options and sentinel errors for labeling.

package components

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("components: invalid option supplied")

	// ErrNilLookup is returned by LabelWith for a nil adjacency.Lookup.
	ErrNilLookup = errors.New("components: lookup is nil")
)

// minParallelFaces is the face count below which WithWorkers is ignored;
// goroutine fan-out costs more than it saves on small parts.
const minParallelFaces = 1 << 14

// Option configures labeling via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by the operation.
type Option func(*Options)

// Options holds the resolved labeling knobs.
type Options struct {
	// Logger receives a debug summary per pass. Never nil after resolution.
	Logger *zap.Logger

	// Workers > 1 enables concurrent neighbor discovery.
	Workers int

	err error
}

// DefaultOptions returns a no-op logger and sequential execution.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: 1,
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of goroutines used for neighbor discovery.
//
//	n > 1:  parallel discovery over n chunks
//	n <= 1 and n >= 0: sequential
//	n < 0:  ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = max(n, 1)
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
