// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil            (RandomSoup refuses to run without one)
//   • offset  = origin         (Translate accumulates into it)
//   • deleted = none

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value so a constructor cannot leak changes to siblings.
type builderConfig struct {
	rng     *rand.Rand
	offset  r3.Vec
	deleted []mesh.FaceID
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a constructor-local position into mesh space.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	return r3.Add(p, c.offset)
}
