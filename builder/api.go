// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// api.go — BuildMesh orchestrator and the shared emission buffer.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in
//     order into one buffer, then hands the buffer to mesh.New.
//   - Face IDs follow emission order; a constructor's faces are contiguous.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// Constructor appends points and faces to b using the resolved config.
// Constructors validate first and return sentinel errors; they never panic.
type Constructor func(b *Buffer, cfg builderConfig) error

// Buffer collects points and faces before the mesh is built.
type Buffer struct {
	points []r3.Vec
	faces  [][]mesh.VertID
}

// AddPoint appends p and returns its vertex ID.
func (b *Buffer) AddPoint(p r3.Vec) mesh.VertID {
	b.points = append(b.points, p)

	return mesh.VertID(len(b.points) - 1)
}

// AddFace appends a face over previously added vertices and returns its ID.
func (b *Buffer) AddFace(verts ...mesh.VertID) mesh.FaceID {
	b.faces = append(b.faces, append([]mesh.VertID(nil), verts...))

	return mesh.FaceID(len(b.faces) - 1)
}

// FaceCount returns the number of faces emitted so far.
func (b *Buffer) FaceCount() int { return len(b.faces) }

// BuildMesh resolves bopts, applies all constructors in order and builds
// the mesh. Constructor errors are wrapped with "BuildMesh: %w".
//
// Complexity: Σ cost of constructors + O(F·k) for mesh.New.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newBuilderConfig(bopts...)
	var b Buffer
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMesh, i, ErrConstructFailed)
		}
		if err := fn(&b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
	}

	m, err := mesh.New(b.points, b.faces, mesh.WithDeletedFaces(cfg.deleted...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuildMesh, ErrConstructFailed, err)
	}

	return m, nil
}
