// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// options.go — functional options for BuildMesh.
//
// Option constructors panic on nil inputs; constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/meshcomp/mesh"
)

// BuilderOption customizes BuildMesh before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDeletedFaces marks faces of the finished mesh as deleted.
// IDs follow emission order across all constructors.
func WithDeletedFaces(faces ...mesh.FaceID) BuilderOption {
	return func(c *builderConfig) {
		c.deleted = append(c.deleted, faces...)
	}
}
