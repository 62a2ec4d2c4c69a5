// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// impl_grid.go — Grid(rows, cols, cell): a flat triangulated patch.
//
// Canonical model:
//   • (rows+1)·(cols+1) points in the XY plane, row-major, spacing cell.
//   • Each cell (r,c) emits two triangles split along its diagonal:
//       (r,c)-(r,c+1)-(r+1,c+1) and (r,c)-(r+1,c+1)-(r+1,c).
//   • Every triangle shares an edge with a neighbor, so the whole patch is
//     one component under both incidence modes.
//
// Complexity: O(rows·cols) time and memory.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// Grid returns a Constructor for a rows×cols patch with square cells of
// side cell. It emits 2·rows·cols triangles of total area rows·cols·cell².
func Grid(rows, cols int, cell float64) Constructor {
	return func(b *Buffer, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		if err := validateLength(MethodGrid, cell); err != nil {
			return err
		}

		first := mesh.VertID(-1)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				v := b.AddPoint(cfg.place(r3.Vec{X: float64(c) * cell, Y: float64(r) * cell}))
				if first < 0 {
					first = v
				}
			}
		}
		at := func(r, c int) mesh.VertID {
			return first + mesh.VertID(r*(cols+1)+c)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				b.AddFace(at(r, c), at(r, c+1), at(r+1, c+1))
				b.AddFace(at(r, c), at(r+1, c+1), at(r+1, c))
			}
		}

		return nil
	}
}
