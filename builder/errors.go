// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors add context with builderErrorf / %w, never by string.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (rows, cols, n, polygon
// corners) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a non-positive or non-finite length (cell size, radius).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failure of the final
// mesh.New call.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <message>: <sentinel>" keeping the
// sentinel reachable for errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
