// SPDX-License-Identifier: MIT
// Package: meshcomp/adjacency
//
// types.go — incidence modes, the Lookup strategy and sentinel errors.

package adjacency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/meshcomp/mesh"
)

// Sentinel errors for adjacency queries.
var (
	// ErrUnknownMode indicates a Mode value that is neither PerEdge nor PerVertex.
	ErrUnknownMode = errors.New("adjacency: unknown incidence mode")

	// ErrFaceOutsidePart indicates a live face that the part's restriction excludes.
	ErrFaceOutsidePart = errors.New("adjacency: face is outside the mesh part")
)

// Mode selects the incidence rule used to connect faces.
type Mode int

const (
	// PerEdge connects faces that share an edge.
	PerEdge Mode = iota
	// PerVertex connects faces that share at least one vertex.
	PerVertex
)

// String returns "per-edge" or "per-vertex".
func (m Mode) String() string {
	switch m {
	case PerEdge:
		return "per-edge"
	case PerVertex:
		return "per-vertex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "per-edge"/"edge" and "per-vertex"/"vertex", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per-edge", "peredge", "edge":
		return PerEdge, nil
	case "per-vertex", "pervertex", "vertex":
		return PerVertex, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Lookup reports the candidate neighbors of live face f by calling visit.
// A Lookup may report a neighbor more than once and must never report f
// itself; it does not filter by any part restriction. It must be
// symmetric: if g is reported for f, f is reported for g.
type Lookup func(m *mesh.Mesh, f mesh.FaceID, visit func(g mesh.FaceID))

// LookupFor returns the built-in strategy for mode.
func LookupFor(mode Mode) (Lookup, error) {
	switch mode {
	case PerEdge:
		return perEdge, nil
	case PerVertex:
		return perVertex, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
}

// perEdge walks each edge of f and reports the other faces on it.
func perEdge(m *mesh.Mesh, f mesh.FaceID, visit func(mesh.FaceID)) {
	verts := m.FaceVerts(f)
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		for _, g := range m.EdgeFaces(a, b) {
			if g != f {
				visit(g)
			}
		}
	}
}

// perVertex walks each corner of f and reports the other faces around it.
func perVertex(m *mesh.Mesh, f mesh.FaceID, visit func(mesh.FaceID)) {
	for _, v := range m.FaceVerts(f) {
		for _, g := range m.FacesAround(v) {
			if g != f {
				visit(g)
			}
		}
	}
}
