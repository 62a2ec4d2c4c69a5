// SPDX-License-Identifier: MIT
// Package: meshcomp/builder
//
// impl_faces.go — single-face constructors and Bowtie.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// Triangle emits one triangle with its own three vertices.
func Triangle(a, b, c r3.Vec) Constructor {
	return Polygon(a, b, c)
}

// Polygon emits one face over the given corners, in order.
// Fewer than three corners → ErrTooFewVertices.
func Polygon(corners ...r3.Vec) Constructor {
	pts := append([]r3.Vec(nil), corners...)
	return func(b *Buffer, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, len(pts), MinPolygonCorners); err != nil {
			return err
		}
		verts := make([]mesh.VertID, len(pts))
		for i, p := range pts {
			verts[i] = b.AddPoint(cfg.place(p))
		}
		b.AddFace(verts...)

		return nil
	}
}

// Bowtie emits two right triangles of legs s that share exactly one
// vertex (the origin) and no edge:
//
//	 ╲ │
//	  ╲│
//	   •───
//	   │╲
//
// Total area s². s must be finite and > 0 (ErrBadSize).
func Bowtie(s float64) Constructor {
	return func(b *Buffer, cfg builderConfig) error {
		if err := validateLength(MethodBowtie, s); err != nil {
			return err
		}
		o := b.AddPoint(cfg.place(r3.Vec{}))
		a1 := b.AddPoint(cfg.place(r3.Vec{X: s}))
		a2 := b.AddPoint(cfg.place(r3.Vec{X: s, Y: -s}))
		b1 := b.AddPoint(cfg.place(r3.Vec{X: -s}))
		b2 := b.AddPoint(cfg.place(r3.Vec{X: -s, Y: s}))
		b.AddFace(o, a2, a1)
		b.AddFace(o, b2, b1)

		return nil
	}
}
