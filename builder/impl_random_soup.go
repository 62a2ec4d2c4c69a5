// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// impl_random_soup.go — RandomSoup(n, pool): random triangles over a small
// shared point pool, producing a mix of edge-connected, vertex-connected
// and isolated faces.
//
// Contract:
//   • Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • pool ≥ 3 points placed uniformly in the unit cube.
//   • Each triangle picks three distinct pool points.
//   • Deterministic for a fixed seed and call order.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// RandomSoup emits n triangles over a pool of pool random points.
// Smaller pools relative to n give more connectivity.
// Complexity: O(n + pool).
func RandomSoup(n, pool int) Constructor {
	return func(b *Buffer, cfg builderConfig) error {
		if err := validateMin(MethodRandomSoup, n, 0); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSoup, pool, MinSoupPool); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomSoup, ErrNeedRandSource, "seed the builder with WithSeed or WithRand")
		}

		r := cfg.rng
		first := mesh.VertID(len(b.points))
		for i := 0; i < pool; i++ {
			b.AddPoint(cfg.place(r3.Vec{X: r.Float64(), Y: r.Float64(), Z: r.Float64()}))
		}
		for i := 0; i < n; i++ {
			a := r.Intn(pool)
			c := r.Intn(pool - 1)
			if c >= a {
				c++
			}
			d := r.Intn(pool - 2)
			lo, hi := min(a, c), max(a, c)
			if d >= lo {
				d++
			}
			if d >= hi {
				d++
			}
			b.AddFace(first+mesh.VertID(a), first+mesh.VertID(c), first+mesh.VertID(d))
		}

		return nil
	}
}
