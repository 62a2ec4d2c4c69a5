// SPDX-License-Identifier: MIT
// Package: meshcomp/adjacency
//
// neighbors.go — single and batch neighbor queries, dual-graph export.

package adjacency

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/meshcomp/mesh"
)

// Neighbors returns the distinct faces adjacent to f under mode, restricted
// to faces present in part, sorted ascending. An isolated face yields an
// empty, non-nil slice.
//
// Errors: mesh.ErrNilMesh, ErrUnknownMode, mesh.ErrInvalidFace,
// ErrFaceOutsidePart.
func Neighbors(part mesh.Part, f mesh.FaceID, mode Mode) ([]mesh.FaceID, error) {
	if err := part.Validate(); err != nil {
		return nil, err
	}
	lookup, err := LookupFor(mode)
	if err != nil {
		return nil, err
	}

	return neighbors(part, f, lookup)
}

// NeighborsOf runs Neighbors for every face in faces. Result i belongs to
// faces[i]; it is nil when that face was rejected. All rejections are
// combined into the returned error (inspect with multierr.Errors), and the
// remaining faces are still answered.
func NeighborsOf(part mesh.Part, faces []mesh.FaceID, mode Mode) ([][]mesh.FaceID, error) {
	if err := part.Validate(); err != nil {
		return nil, err
	}
	lookup, err := LookupFor(mode)
	if err != nil {
		return nil, err
	}

	out := make([][]mesh.FaceID, len(faces))
	var errs error
	for i, f := range faces {
		nb, err := neighbors(part, f, lookup)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[i] = nb
	}

	return out, errs
}

func neighbors(part mesh.Part, f mesh.FaceID, lookup Lookup) ([]mesh.FaceID, error) {
	if err := part.Mesh.CheckFace(f); err != nil {
		return nil, err
	}
	if !part.Contains(f) {
		return nil, fmt.Errorf("%w: face %d", ErrFaceOutsidePart, f)
	}

	out := make([]mesh.FaceID, 0, 8)
	lookup(part.Mesh, f, func(g mesh.FaceID) {
		if part.Contains(g) {
			out = append(out, g)
		}
	})
	slices.Sort(out)

	return slices.Compact(out), nil
}

// ToGraph exports the face dual graph of part: one node per present face
// (node ID = FaceID) and one undirected edge per adjacent pair.
// Complexity: O(F + E) time and memory.
func ToGraph(part mesh.Part, mode Mode) (*simple.UndirectedGraph, error) {
	if err := part.Validate(); err != nil {
		return nil, err
	}
	lookup, err := LookupFor(mode)
	if err != nil {
		return nil, err
	}

	g := simple.NewUndirectedGraph()
	faces := part.Faces()
	for _, f := range faces {
		g.AddNode(simple.Node(f))
	}
	for _, f := range faces {
		lookup(part.Mesh, f, func(h mesh.FaceID) {
			// Each pair is added once, from its lower face.
			if h > f && part.Contains(h) {
				g.SetEdge(simple.Edge{F: simple.Node(f), T: simple.Node(h)})
			}
		})
	}

	return g, nil
}
