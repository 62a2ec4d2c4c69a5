// SPDX-License-Identifier: MIT
// Package: meshcomp/area
//
// area.go — per-face and per-region area.

package area

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meshcomp/mesh"
)

// FaceAreas returns the area of every face of the mesh, indexed by FaceID.
// Faces absent from the part (deleted or excluded) have area 0.
func FaceAreas(part mesh.Part, opts ...Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := part.Validate(); err != nil {
		return nil, err
	}

	return faceAreas(part, o.Workers), nil
}

// TotalArea returns the area of all faces present in part, summed in
// ascending FaceID.
func TotalArea(part mesh.Part, opts ...Option) (float64, error) {
	areas, err := FaceAreas(part, opts...)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, a := range areas {
		sum += a
	}

	return sum, nil
}

// RegionAreas returns, for each region 0..numRegions-1, the total area of
// the faces fm assigns to it. Faces outside the part's restriction are not
// counted, so a whole-mesh labeling can be measured over a sub-part.
//
// Errors: mesh.ErrNilMesh, ErrOptionViolation, mesh.ErrInconsistentMap,
// mesh.ErrInvalidFace (all offending faces, combined).
//
// Complexity: O(F·k).
func RegionAreas(part mesh.Part, fm mesh.Face2RegionMap, numRegions int, opts ...Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := part.Validate(); err != nil {
		return nil, err
	}
	if err := validate(part, fm, numRegions); err != nil {
		o.Logger.Warn("region areas rejected", zap.Error(err))
		return nil, err
	}

	start := time.Now()
	m := part.Mesh
	areas := make([]float64, numRegions)
	if o.Workers > 1 && len(fm) >= minParallelFaces {
		perFace := faceAreas(part, o.Workers)
		for f, r := range fm {
			if r != mesh.NoRegion {
				areas[r] += perFace[f]
			}
		}
	} else {
		for f, r := range fm {
			if r != mesh.NoRegion && part.Contains(mesh.FaceID(f)) {
				areas[r] += m.FaceArea(mesh.FaceID(f))
			}
		}
	}

	o.Logger.Debug("region areas computed",
		zap.Int("faces", len(fm)),
		zap.Int("regions", numRegions),
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return areas, nil
}

// validate checks fm against the mesh and numRegions. Every labeled face
// is examined so that all invalid ones are reported together.
func validate(part mesh.Part, fm mesh.Face2RegionMap, numRegions int) error {
	if len(fm) != part.Mesh.FaceCount() {
		return fmt.Errorf("%w: map has %d entries, mesh has %d faces",
			mesh.ErrInconsistentMap, len(fm), part.Mesh.FaceCount())
	}
	if err := fm.Validate(numRegions); err != nil {
		return err
	}

	var (
		errs error
		bad  int
	)
	for f, r := range fm {
		if r == mesh.NoRegion || part.Mesh.Valid(mesh.FaceID(f)) {
			continue
		}
		bad++
		if bad <= maxReportedFaces {
			errs = multierr.Append(errs, fmt.Errorf("%w: face %d is deleted but labeled %d", mesh.ErrInvalidFace, f, r))
		}
	}
	if bad > maxReportedFaces {
		errs = multierr.Append(errs, fmt.Errorf("%w: %d more deleted faces carry labels", mesh.ErrInvalidFace, bad-maxReportedFaces))
	}

	return errs
}

// faceAreas fills a face-indexed area buffer, splitting the face range
// across workers when it is large enough. Each worker writes a disjoint
// slice range.
func faceAreas(part mesh.Part, workers int) []float64 {
	m := part.Mesh
	n := m.FaceCount()
	out := make([]float64, n)
	fill := func(lo, hi int) {
		for f := mesh.FaceID(lo); int(f) < hi; f++ {
			if part.Contains(f) {
				out[f] = m.FaceArea(f)
			}
		}
	}

	if workers <= 1 || n < minParallelFaces {
		fill(0, n)
		return out
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fill(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers cannot fail

	return out
}
