// SPDX-License-Identifier: MIT
// Package: meshcomp
//
// meshcomp.go — whole-pipeline entry points: label a part, then keep its
// largest regions.

package meshcomp

import (
	"github.com/katalvlaran/meshcomp/adjacency"
	"github.com/katalvlaran/meshcomp/components"
	"github.com/katalvlaran/meshcomp/mesh"
	"github.com/katalvlaran/meshcomp/regions"
)

// FaceIncidence selects which shared feature makes two faces adjacent.
type FaceIncidence = adjacency.Mode

const (
	// PerEdge connects faces sharing an edge.
	PerEdge = adjacency.PerEdge
	// PerVertex connects faces sharing a vertex.
	PerVertex = adjacency.PerVertex
)

// ComponentsMap is the labeling of a part: FaceMap[f] is the region of face
// f, or mesh.NoRegion when f is deleted or outside the part. Region ids are
// dense in [0, NumComponents).
type ComponentsMap struct {
	FaceMap       mesh.Face2RegionMap
	NumComponents int
}

// Regions is a selection of whole components.
type Regions struct {
	// Faces has one bit per mesh face, set for faces of selected regions.
	Faces mesh.FaceBitSet
	// NumRegions is how many components were selected.
	NumRegions int
}

// GetAllComponentsMap labels every face of part with its connected
// component under the given incidence.
func GetAllComponentsMap(part mesh.Part, incidence FaceIncidence, opts ...components.Option) (ComponentsMap, error) {
	fm, n, err := components.Label(part, incidence, opts...)
	if err != nil {
		return ComponentsMap{}, err
	}

	return ComponentsMap{FaceMap: fm, NumComponents: n}, nil
}

// GetLargeRegionsByArea keeps at most maxRegions components of cm whose
// area is at least minArea, largest first, ties going to the lower
// RegionID. cm is taken as is; components are not recomputed.
//
// Errors: regions.ErrNegativeMaxRegions, regions.ErrInvalidMinArea,
// mesh.ErrNilMesh, mesh.ErrInconsistentMap, mesh.ErrInvalidFace.
func GetLargeRegionsByArea(part mesh.Part, cm ComponentsMap, maxRegions int, minArea float64, opts ...regions.Option) (Regions, error) {
	sel, err := regions.SelectLargest(part, cm.FaceMap, cm.NumComponents, maxRegions, minArea, opts...)
	if err != nil {
		return Regions{}, err
	}

	return Regions{Faces: sel.Faces, NumRegions: sel.NumRegions}, nil
}
