// SPDX-License-Identifier: MIT
// Package: meshcomp/mesh
//
// mesh.go — immutable mesh with vertex and edge incidence indexes.
//
// Contract:
//   • New validates every face up front and returns a sentinel-wrapped error
//     naming the first offending face; nothing is built on failure.
//   • Incidence indexes list only live (non-deleted) faces, in ascending
//     FaceID order.
//   • All slice-returning accessors hand out read-only views.

package mesh

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/spatial/r3"
)

// edgeKey packs an undirected edge (lo, hi) into one map key.
type edgeKey uint64

func makeEdgeKey(a, b VertID) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey(uint64(uint32(a))<<32 | uint64(uint32(b)))
}

// Mesh is an immutable polygon mesh.
type Mesh struct {
	points []r3.Vec

	// faceStart[f]..faceStart[f+1] indexes faceVerts.
	faceStart []int32
	faceVerts []VertID

	deleted *bitset.BitSet // nil when no face is deleted
	live    int

	// vertFaceStart[v]..vertFaceStart[v+1] indexes vertFaces.
	vertFaceStart []int32
	vertFaces     []FaceID

	edgeFaces map[edgeKey][]FaceID
}

// Option configures New.
type Option func(*config)

type config struct {
	deleted []FaceID
}

// WithDeletedFaces marks faces as deleted. Their slots remain so FaceIDs
// stay stable, but they are absent from every index and query.
// IDs outside the face range are reported by New as ErrInvalidFace.
func WithDeletedFaces(faces ...FaceID) Option {
	return func(c *config) {
		c.deleted = append(c.deleted, faces...)
	}
}

// New builds a Mesh from point positions and faces. The inputs are copied.
//
// Errors:
//   - ErrTooFewVertices if a face has fewer than 3 vertices.
//   - ErrInvalidVertex if a face references a point that does not exist.
//   - ErrInvalidFace if WithDeletedFaces names a face out of range.
//
// Complexity: O(F·k + V) time and memory.
func New(points []r3.Vec, faces [][]VertID, opts ...Option) (*Mesh, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Mesh{
		points:    append([]r3.Vec(nil), points...),
		faceStart: make([]int32, len(faces)+1),
		edgeFaces: make(map[edgeKey][]FaceID),
	}

	total := 0
	for f, verts := range faces {
		if len(verts) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d", ErrTooFewVertices, f, len(verts))
		}
		for _, v := range verts {
			if v < 0 || int(v) >= len(points) {
				return nil, fmt.Errorf("%w: face %d references vertex %d (points=%d)", ErrInvalidVertex, f, v, len(points))
			}
		}
		total += len(verts)
	}

	m.faceVerts = make([]VertID, 0, total)
	for f, verts := range faces {
		m.faceStart[f] = int32(len(m.faceVerts))
		m.faceVerts = append(m.faceVerts, verts...)
	}
	m.faceStart[len(faces)] = int32(len(m.faceVerts))

	if len(cfg.deleted) > 0 {
		m.deleted = bitset.New(uint(len(faces)))
		for _, f := range cfg.deleted {
			if f < 0 || int(f) >= len(faces) {
				return nil, fmt.Errorf("%w: cannot delete face %d (faces=%d)", ErrInvalidFace, f, len(faces))
			}
			m.deleted.Set(uint(f))
		}
	}

	m.buildIncidence()

	return m, nil
}

// buildIncidence fills the vertex → faces CSR arrays and the edge → faces map.
func (m *Mesh) buildIncidence() {
	counts := make([]int32, len(m.points)+1)
	for f := FaceID(0); int(f) < m.FaceCount(); f++ {
		if !m.Valid(f) {
			continue
		}
		m.live++
		for _, v := range m.distinctVerts(f) {
			counts[v+1]++
		}
	}
	for v := 1; v < len(counts); v++ {
		counts[v] += counts[v-1]
	}
	m.vertFaceStart = counts
	m.vertFaces = make([]FaceID, counts[len(counts)-1])
	fill := append([]int32(nil), counts[:len(m.points)]...)

	// Ascending f keeps every per-vertex and per-edge list sorted.
	for f := FaceID(0); int(f) < m.FaceCount(); f++ {
		if !m.Valid(f) {
			continue
		}
		for _, v := range m.distinctVerts(f) {
			m.vertFaces[fill[v]] = f
			fill[v]++
		}
		verts := m.FaceVerts(f)
		for i, a := range verts {
			b := verts[(i+1)%len(verts)]
			if a == b {
				continue
			}
			key := makeEdgeKey(a, b)
			list := m.edgeFaces[key]
			if n := len(list); n > 0 && list[n-1] == f {
				continue
			}
			m.edgeFaces[key] = append(list, f)
		}
	}
}

// distinctVerts returns the face's vertices with repeats removed, in order.
func (m *Mesh) distinctVerts(f FaceID) []VertID {
	verts := m.FaceVerts(f)
	out := make([]VertID, 0, len(verts))
outer:
	for _, v := range verts {
		for _, seen := range out {
			if seen == v {
				continue outer
			}
		}
		out = append(out, v)
	}

	return out
}

// FaceCount returns the size of the face ID range, deleted faces included.
func (m *Mesh) FaceCount() int { return len(m.faceStart) - 1 }

// LiveFaceCount returns the number of faces that are not deleted.
func (m *Mesh) LiveFaceCount() int { return m.live }

// PointCount returns the number of vertices.
func (m *Mesh) PointCount() int { return len(m.points) }

// Valid reports whether f is in range and not deleted.
func (m *Mesh) Valid(f FaceID) bool {
	if f < 0 || int(f) >= m.FaceCount() {
		return false
	}

	return m.deleted == nil || !m.deleted.Test(uint(f))
}

// CheckFace returns nil for a valid face and a wrapped ErrInvalidFace otherwise.
func (m *Mesh) CheckFace(f FaceID) error {
	switch {
	case f < 0 || int(f) >= m.FaceCount():
		return fmt.Errorf("%w: face %d out of range [0,%d)", ErrInvalidFace, f, m.FaceCount())
	case !m.Valid(f):
		return fmt.Errorf("%w: face %d is deleted", ErrInvalidFace, f)
	}

	return nil
}

// FaceVerts returns the ordered vertices of f. The slice must not be modified.
func (m *Mesh) FaceVerts(f FaceID) []VertID {
	return m.faceVerts[m.faceStart[f]:m.faceStart[f+1]]
}

// Point returns the position of v.
func (m *Mesh) Point(v VertID) r3.Vec { return m.points[v] }

// FacesAround returns the live faces touching vertex v, ascending.
// The slice must not be modified.
func (m *Mesh) FacesAround(v VertID) []FaceID {
	return m.vertFaces[m.vertFaceStart[v]:m.vertFaceStart[v+1]]
}

// EdgeFaces returns the live faces having (a,b) as an edge, ascending.
// More than two faces means a non-manifold edge. The slice must not be modified.
func (m *Mesh) EdgeFaces(a, b VertID) []FaceID {
	return m.edgeFaces[makeEdgeKey(a, b)]
}
