// SPDX-License-Identifier: MIT
// Package: meshcomp/regions
//
// types.go — selection result, options and sentinel errors.

package regions

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshcomp/area"
	"github.com/katalvlaran/meshcomp/mesh"
)

var (
	// ErrNegativeMaxRegions indicates maxRegions < 0.
	ErrNegativeMaxRegions = errors.New("regions: maxRegions must be ≥ 0")

	// ErrInvalidMinArea indicates minArea < 0 or NaN.
	ErrInvalidMinArea = errors.New("regions: minArea must be a number ≥ 0")
)

// Selection is the outcome of SelectLargest.
type Selection struct {
	// Faces holds one bit per mesh face, set iff the face belongs to a
	// selected region.
	Faces mesh.FaceBitSet

	// NumRegions is the number of regions selected (≤ maxRegions).
	NumRegions int

	// Regions lists the selected regions in rank order.
	Regions []mesh.RegionID

	// Areas[i] is the area of Regions[i].
	Areas []float64
}

// Option configures selection.
type Option func(*Options)

// Options holds the resolved knobs.
type Options struct {
	Logger      *zap.Logger
	AreaOptions []area.Option
}

// DefaultOptions returns a no-op logger and default area options.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger; nil is ignored. The logger is also handed to
// the area aggregation unless WithAreaOptions sets another one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAreaOptions forwards options to area.RegionAreas.
func WithAreaOptions(opts ...area.Option) Option {
	return func(o *Options) {
		o.AreaOptions = append(o.AreaOptions, opts...)
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
