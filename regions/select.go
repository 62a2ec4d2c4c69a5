// SPDX-License-Identifier: MIT
// Package: meshcomp/regions
//
// select.go — ranking and top-k selection.

package regions

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshcomp/area"
	"github.com/katalvlaran/meshcomp/mesh"
)

// SelectLargest picks up to maxRegions regions of fm with area ≥ minArea,
// largest first, and returns their faces.
//
// Errors: ErrNegativeMaxRegions, ErrInvalidMinArea, plus everything
// area.RegionAreas reports (mesh.ErrNilMesh, mesh.ErrInconsistentMap,
// mesh.ErrInvalidFace, area.ErrOptionViolation).
//
// Complexity: O(F·k + n log n).
func SelectLargest(part mesh.Part, fm mesh.Face2RegionMap, numRegions, maxRegions int, minArea float64, opts ...Option) (Selection, error) {
	o := resolve(opts)
	if maxRegions < 0 {
		return Selection{}, fmt.Errorf("%w: got %d", ErrNegativeMaxRegions, maxRegions)
	}
	if math.IsNaN(minArea) || minArea < 0 {
		return Selection{}, fmt.Errorf("%w: got %g", ErrInvalidMinArea, minArea)
	}

	areaOpts := append([]area.Option{area.WithLogger(o.Logger)}, o.AreaOptions...)
	areas, err := area.RegionAreas(part, fm, numRegions, areaOpts...)
	if err != nil {
		return Selection{}, err
	}

	ranked := Rank(areas, minArea)
	chosen := ranked[:min(maxRegions, len(ranked))]

	sel := Selection{
		Faces:      mesh.NewFaceBitSet(len(fm)),
		NumRegions: len(chosen),
		Regions:    chosen,
		Areas:      make([]float64, len(chosen)),
	}
	if len(chosen) > 0 {
		picked := make([]bool, numRegions)
		for i, r := range chosen {
			picked[r] = true
			sel.Areas[i] = areas[r]
		}
		for f, r := range fm {
			if r != mesh.NoRegion && picked[r] && part.Contains(mesh.FaceID(f)) {
				sel.Faces.Set(mesh.FaceID(f))
			}
		}
	}

	o.Logger.Debug("largest regions selected",
		zap.Int("regions", numRegions),
		zap.Int("eligible", len(ranked)),
		zap.Int("maxRegions", maxRegions),
		zap.Float64("minArea", minArea),
		zap.Int("selected", sel.NumRegions),
		zap.Int("faces", sel.Faces.Count()),
	)

	return sel, nil
}

// Rank returns the regions with areas[r] ≥ minArea ordered by area
// descending, ties broken by ascending RegionID.
func Rank(areas []float64, minArea float64) []mesh.RegionID {
	out := make([]mesh.RegionID, 0, len(areas))
	for r, a := range areas {
		if a >= minArea {
			out = append(out, mesh.RegionID(r))
		}
	}
	slices.SortFunc(out, func(a, b mesh.RegionID) int {
		if c := cmp.Compare(areas[b], areas[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	return out
}
