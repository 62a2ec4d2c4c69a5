// SPDX-License-Identifier: MIT
// Package: meshcomp/components
//
// helpers.go — follow-up queries over a labeling.

package components

import (
	"github.com/katalvlaran/meshcomp/adjacency"
	"github.com/katalvlaran/meshcomp/mesh"
)

// Count returns the number of components of part under mode.
func Count(part mesh.Part, mode adjacency.Mode, opts ...Option) (int, error) {
	_, n, err := Label(part, mode, opts...)

	return n, err
}

// ComponentOf returns the faces reachable from seed under mode, seed
// included, without labeling the rest of the mesh. Breadth-first over the
// part; the returned set is sized FaceCount().
//
// Errors: mesh.ErrNilMesh, adjacency.ErrUnknownMode, mesh.ErrInvalidFace,
// adjacency.ErrFaceOutsidePart.
//
// Complexity: O(C + A_C), the size of the component and its adjacencies.
func ComponentOf(part mesh.Part, seed mesh.FaceID, mode adjacency.Mode) (mesh.FaceBitSet, error) {
	// Neighbors performs all validation for the seed.
	if _, err := adjacency.Neighbors(part, seed, mode); err != nil {
		return mesh.FaceBitSet{}, err
	}
	lookup, _ := adjacency.LookupFor(mode)

	seen := mesh.NewFaceBitSet(part.Mesh.FaceCount())
	seen.Set(seed)
	queue := []mesh.FaceID{seed}
	for qi := 0; qi < len(queue); qi++ {
		lookup(part.Mesh, queue[qi], func(g mesh.FaceID) {
			if !seen.Test(g) && part.Contains(g) {
				seen.Set(g)
				queue = append(queue, g)
			}
		})
	}

	return seen, nil
}

// RegionFaces returns the faces labeled r, as a set sized len(fm).
func RegionFaces(fm mesh.Face2RegionMap, r mesh.RegionID) mesh.FaceBitSet {
	s := mesh.NewFaceBitSet(len(fm))
	for f, got := range fm {
		if got == r && r != mesh.NoRegion {
			s.Set(mesh.FaceID(f))
		}
	}

	return s
}

// AllRegionFaces splits fm into one face set per region, indexed by RegionID.
// Returns mesh.ErrInconsistentMap if fm does not match numRegions.
// Complexity: O(len(fm) + numRegions).
func AllRegionFaces(fm mesh.Face2RegionMap, numRegions int) ([]mesh.FaceBitSet, error) {
	if err := fm.Validate(numRegions); err != nil {
		return nil, err
	}
	out := make([]mesh.FaceBitSet, numRegions)
	for i := range out {
		out[i] = mesh.NewFaceBitSet(len(fm))
	}
	for f, r := range fm {
		if r != mesh.NoRegion {
			out[r].Set(mesh.FaceID(f))
		}
	}

	return out, nil
}

// RegionSizes returns the number of faces in each region.
// Returns mesh.ErrInconsistentMap if fm does not match numRegions.
func RegionSizes(fm mesh.Face2RegionMap, numRegions int) ([]int, error) {
	if err := fm.Validate(numRegions); err != nil {
		return nil, err
	}
	sizes := make([]int, numRegions)
	for _, r := range fm {
		if r != mesh.NoRegion {
			sizes[r]++
		}
	}

	return sizes, nil
}
