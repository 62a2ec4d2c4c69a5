// SPDX-License-Identifier: MIT
// Package: meshcomp/components
//
// label.go — union–find labeling with a deterministic dense remap.
//
// Steps:
//  1. Validate the part, lookup and options.
//  2. Union every present face with every present neighbor
//     (sequentially, or from pairs gathered by parallel workers).
//  3. Walk faces ascending; assign RegionIDs in first-seen order.

package components

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meshcomp/adjacency"
	"github.com/katalvlaran/meshcomp/mesh"
	"github.com/katalvlaran/meshcomp/unionfind"
)

// Label computes the connected components of part under mode.
// It returns a map with one entry per face ID and the component count.
//
// Errors: mesh.ErrNilMesh, adjacency.ErrUnknownMode, ErrOptionViolation.
func Label(part mesh.Part, mode adjacency.Mode, opts ...Option) (mesh.Face2RegionMap, int, error) {
	lookup, err := adjacency.LookupFor(mode)
	if err != nil {
		return nil, 0, err
	}

	return label(part, lookup, mode.String(), opts)
}

// LabelWith is Label for a caller-supplied adjacency strategy.
func LabelWith(part mesh.Part, lookup adjacency.Lookup, opts ...Option) (mesh.Face2RegionMap, int, error) {
	if lookup == nil {
		return nil, 0, ErrNilLookup
	}

	return label(part, lookup, "custom", opts)
}

func label(part mesh.Part, lookup adjacency.Lookup, modeName string, opts []Option) (mesh.Face2RegionMap, int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, 0, err
	}
	if err := part.Validate(); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	n := part.Mesh.FaceCount()
	forest := unionfind.New(n)

	if o.Workers > 1 && n >= minParallelFaces {
		if err := unionParallel(part, lookup, forest, o.Workers); err != nil {
			return nil, 0, err
		}
	} else {
		for f := mesh.FaceID(0); int(f) < n; f++ {
			if !part.Contains(f) {
				continue
			}
			lookup(part.Mesh, f, func(g mesh.FaceID) {
				if part.Contains(g) {
					forest.Union(int(f), int(g))
				}
			})
		}
	}

	fm, count := densify(part, forest)

	o.Logger.Debug("components labeled",
		zap.String("mode", modeName),
		zap.Int("faces", n),
		zap.Bool("restricted", part.Restricted()),
		zap.Int("components", count),
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return fm, count, nil
}

// densify assigns RegionIDs 0..k-1 in order of each set's lowest face.
func densify(part mesh.Part, forest *unionfind.Forest) (mesh.Face2RegionMap, int) {
	n := forest.Len()
	fm := make(mesh.Face2RegionMap, n)
	rootLabel := make([]mesh.RegionID, n)
	for i := range rootLabel {
		rootLabel[i] = mesh.NoRegion
	}

	next := mesh.RegionID(0)
	for f := 0; f < n; f++ {
		if !part.Contains(mesh.FaceID(f)) {
			fm[f] = mesh.NoRegion
			continue
		}
		r := forest.Find(f)
		if rootLabel[r] == mesh.NoRegion {
			rootLabel[r] = next
			next++
		}
		fm[f] = rootLabel[r]
	}

	return fm, int(next)
}

// pair is one adjacency report (f, g).
type pair [2]int32

// unionParallel gathers neighbor pairs over contiguous face chunks
// concurrently, then applies the unions chunk by chunk on the caller's
// goroutine. The Forest is only ever touched by one goroutine.
func unionParallel(part mesh.Part, lookup adjacency.Lookup, forest *unionfind.Forest, workers int) error {
	n := forest.Len()
	chunk := (n + workers - 1) / workers
	pairs := make([][]pair, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, min((w+1)*chunk, n)
		g.Go(func() error {
			var local []pair
			for f := mesh.FaceID(lo); int(f) < hi; f++ {
				if !part.Contains(f) {
					continue
				}
				lookup(part.Mesh, f, func(h mesh.FaceID) {
					// The lookup is symmetric; keep each pair once.
					if h > f && part.Contains(h) {
						local = append(local, pair{int32(f), int32(h)})
					}
				})
			}
			pairs[w] = local

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, chunkPairs := range pairs {
		for _, p := range chunkPairs {
			forest.Union(int(p[0]), int(p[1]))
		}
	}

	return nil
}
