// SPDX-License-Identifier: MIT
// Package: meshcomp/mesh
//
// part.go — a mesh optionally restricted to a subset of its faces.

package mesh

// Part is a mesh plus an optional face restriction. With a zero Region the
// whole mesh is present; otherwise only faces set in Region are.
type Part struct {
	Mesh   *Mesh
	Region FaceBitSet
}

// WholeMesh returns a Part covering every live face of m.
func WholeMesh(m *Mesh) Part {
	return Part{Mesh: m}
}

// PartOf returns a Part restricted to region.
func PartOf(m *Mesh, region FaceBitSet) Part {
	return Part{Mesh: m, Region: region}
}

// Validate reports ErrNilMesh when the part has no mesh.
func (p Part) Validate() error {
	if p.Mesh == nil {
		return ErrNilMesh
	}

	return nil
}

// Restricted reports whether a face restriction is in effect.
func (p Part) Restricted() bool { return !p.Region.IsZero() }

// Contains reports whether f is a live face inside the part.
func (p Part) Contains(f FaceID) bool {
	if !p.Mesh.Valid(f) {
		return false
	}

	return !p.Restricted() || p.Region.Test(f)
}

// Faces lists the faces present in the part, ascending.
// Complexity: O(F).
func (p Part) Faces() []FaceID {
	out := make([]FaceID, 0, p.Mesh.LiveFaceCount())
	for f := FaceID(0); int(f) < p.Mesh.FaceCount(); f++ {
		if p.Contains(f) {
			out = append(out, f)
		}
	}

	return out
}
