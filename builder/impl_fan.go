// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// impl_fan.go — Fan(n, radius): triangles around a shared apex.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// Fan emits n triangles around an apex at the origin with rim points on a
// circle of the given radius. Triangle i spans rim points i and i+1; for
// n ≥ 3 the rim closes, so the last triangle shares an edge with the first.
// All triangles share the apex vertex. Each triangle has area
// ½·radius²·sin(2π/max(n,3)).
//
// Errors: n < 1 → ErrTooFewVertices; radius not finite/positive → ErrBadSize.
// Complexity: O(n).
func Fan(n int, radius float64) Constructor {
	return func(b *Buffer, cfg builderConfig) error {
		if err := validateMin(MethodFan, n, MinFanTriangles); err != nil {
			return err
		}
		if err := validateLength(MethodFan, radius); err != nil {
			return err
		}

		rimCount := n + 1
		if n >= 3 {
			rimCount = n
		}
		step := 2 * math.Pi / float64(max(n, 3))

		apex := b.AddPoint(cfg.place(r3.Vec{}))
		rim0 := apex + 1
		for i := 0; i < rimCount; i++ {
			a := step * float64(i)
			b.AddPoint(cfg.place(r3.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}))
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % rimCount
			b.AddFace(apex, rim0+mesh.VertID(i), rim0+mesh.VertID(j))
		}

		return nil
	}
}
