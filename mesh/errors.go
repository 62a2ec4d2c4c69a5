// SPDX-License-Identifier: MIT
// Package: meshcomp/mesh
//
// errors.go — sentinel errors for the mesh package.
//
// Callers branch with errors.Is; implementations attach the offending
// face/vertex with fmt.Errorf("%w: ...").

package mesh

import "errors"

var (
	// ErrTooFewVertices indicates a face with fewer than three vertices.
	ErrTooFewVertices = errors.New("mesh: face must reference at least 3 vertices")

	// ErrInvalidVertex indicates a vertex ID outside [0, PointCount()).
	ErrInvalidVertex = errors.New("mesh: vertex id out of range")

	// ErrInvalidFace indicates a FaceID outside [0, FaceCount()) or a deleted face.
	ErrInvalidFace = errors.New("mesh: invalid face")

	// ErrNilMesh indicates a Part that carries no mesh.
	ErrNilMesh = errors.New("mesh: mesh is nil")

	// ErrInconsistentMap indicates a Face2RegionMap whose region range does
	// not match the region count it is used with, or whose length does not
	// match the mesh face count.
	ErrInconsistentMap = errors.New("mesh: face-to-region map is inconsistent")
)
