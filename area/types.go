// SPDX-License-Identifier: MIT
// Package: meshcomp/area
//
// types.go — options for area aggregation.

package area

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("area: invalid option supplied")

// minParallelFaces is the face count below which WithWorkers is ignored.
const minParallelFaces = 1 << 14

// maxReportedFaces caps how many invalid faces are listed individually.
const maxReportedFaces = 16

// Option configures area aggregation.
type Option func(*Options)

// Options holds the resolved knobs.
type Options struct {
	Logger  *zap.Logger
	Workers int

	err error
}

// DefaultOptions returns a no-op logger and sequential execution.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Workers: 1}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of goroutines computing per-face areas.
// n < 0 is an ErrOptionViolation; 0 and 1 mean sequential.
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
