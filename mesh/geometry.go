// SPDX-License-Identifier: MIT
// Package: meshcomp/mesh
//
// geometry.go — face areas.

package mesh

import "gonum.org/v1/gonum/spatial/r3"

// FaceVectorArea returns the vector area of f: the sum of the fan cross
// products (p[i]-p[0]) × (p[i+1]-p[0]). Its length is twice the face area;
// for a triangle this is exactly the classic cross product of two edges.
// Complexity: O(k) for a k-gon.
func (m *Mesh) FaceVectorArea(f FaceID) r3.Vec {
	verts := m.FaceVerts(f)
	p0 := m.points[verts[0]]
	var sum r3.Vec
	for i := 1; i+1 < len(verts); i++ {
		e1 := r3.Sub(m.points[verts[i]], p0)
		e2 := r3.Sub(m.points[verts[i+1]], p0)
		sum = r3.Add(sum, r3.Cross(e1, e2))
	}

	return sum
}

// FaceArea returns the area of f. Degenerate faces yield 0.
// The caller is responsible for passing a face in range.
func (m *Mesh) FaceArea(f FaceID) float64 {
	return 0.5 * r3.Norm(m.FaceVectorArea(f))
}
