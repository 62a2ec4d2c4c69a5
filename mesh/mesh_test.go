package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/mesh"
)

// square returns a unit square split into two triangles sharing edge 0–2,
// plus a third triangle touching the square only at vertex 2.
//
//	3───2───5
//	│ ╱ │ ╲ │      face 0: 0,1,2   face 1: 0,2,3   face 2: 2,4,5
//	0───1   4
func square() ([]r3.Vec, [][]mesh.VertID) {
	pts := []r3.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 2, Y: 0}, {X: 2, Y: 1},
	}
	faces := [][]mesh.VertID{{0, 1, 2}, {0, 2, 3}, {2, 4, 5}}

	return pts, faces
}

func TestNew_Validation(t *testing.T) {
	pts, _ := square()

	_, err := mesh.New(pts, [][]mesh.VertID{{0, 1}})
	assert.ErrorIs(t, err, mesh.ErrTooFewVertices)

	_, err = mesh.New(pts, [][]mesh.VertID{{0, 1, 42}})
	assert.ErrorIs(t, err, mesh.ErrInvalidVertex)

	_, err = mesh.New(pts, [][]mesh.VertID{{0, 1, 2}}, mesh.WithDeletedFaces(3))
	assert.ErrorIs(t, err, mesh.ErrInvalidFace)

	m, err := mesh.New(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, m.FaceCount())
	assert.Zero(t, m.LiveFaceCount())
}

func TestIncidence(t *testing.T) {
	pts, faces := square()
	m, err := mesh.New(pts, faces)
	require.NoError(t, err)

	assert.Equal(t, 3, m.FaceCount())
	assert.Equal(t, []mesh.FaceID{0, 1, 2}, m.FacesAround(2))
	assert.Equal(t, []mesh.FaceID{0, 1}, m.FacesAround(0))
	assert.Equal(t, []mesh.FaceID{0, 1}, m.EdgeFaces(2, 0))
	assert.Equal(t, []mesh.FaceID{0}, m.EdgeFaces(0, 1))
	assert.Empty(t, m.EdgeFaces(1, 4))
}

func TestDeletedFaces(t *testing.T) {
	pts, faces := square()
	m, err := mesh.New(pts, faces, mesh.WithDeletedFaces(1))
	require.NoError(t, err)

	assert.Equal(t, 3, m.FaceCount())
	assert.Equal(t, 2, m.LiveFaceCount())
	assert.False(t, m.Valid(1))
	assert.ErrorIs(t, m.CheckFace(1), mesh.ErrInvalidFace)
	assert.ErrorIs(t, m.CheckFace(-1), mesh.ErrInvalidFace)
	assert.ErrorIs(t, m.CheckFace(3), mesh.ErrInvalidFace)
	assert.NoError(t, m.CheckFace(2))
	assert.Equal(t, []mesh.FaceID{0, 2}, m.FacesAround(2))
	assert.Equal(t, []mesh.FaceID{0}, m.EdgeFaces(0, 2))
}

func TestFaceArea(t *testing.T) {
	pts, faces := square()
	faces = append(faces, []mesh.VertID{0, 1, 2, 3}, []mesh.VertID{0, 1, 4})
	m, err := mesh.New(pts, faces)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, m.FaceArea(0), 1e-12)
	assert.InDelta(t, 0.5, m.FaceArea(1), 1e-12)
	assert.InDelta(t, 1.0, m.FaceArea(3), 1e-12, "quad")
	assert.Zero(t, m.FaceArea(4), "collinear triangle is degenerate")
}

func TestPart(t *testing.T) {
	pts, faces := square()
	m, err := mesh.New(pts, faces, mesh.WithDeletedFaces(0))
	require.NoError(t, err)

	require.ErrorIs(t, mesh.Part{}.Validate(), mesh.ErrNilMesh)

	whole := mesh.WholeMesh(m)
	assert.False(t, whole.Restricted())
	assert.Equal(t, []mesh.FaceID{1, 2}, whole.Faces())

	sub := mesh.PartOf(m, mesh.FaceBitSetOf(m.FaceCount(), 0, 2))
	assert.True(t, sub.Restricted())
	assert.False(t, sub.Contains(0), "deleted face stays absent")
	assert.False(t, sub.Contains(1))
	assert.Equal(t, []mesh.FaceID{2}, sub.Faces())
}

func TestFace2RegionMap_Validate(t *testing.T) {
	fm := mesh.Face2RegionMap{0, 1, mesh.NoRegion, 1}
	assert.NoError(t, fm.Validate(2))
	assert.ErrorIs(t, fm.Validate(1), mesh.ErrInconsistentMap)
	assert.ErrorIs(t, fm.Validate(3), mesh.ErrInconsistentMap)
	assert.ErrorIs(t, fm.Validate(-1), mesh.ErrInconsistentMap)
	assert.NoError(t, mesh.Face2RegionMap{mesh.NoRegion}.Validate(0))
	assert.ErrorIs(t, mesh.Face2RegionMap{-7}.Validate(1), mesh.ErrInconsistentMap)
}

func TestFaceBitSet(t *testing.T) {
	var zero mesh.FaceBitSet
	assert.True(t, zero.IsZero())
	assert.False(t, zero.Test(0))
	assert.Zero(t, zero.Count())
	assert.Nil(t, zero.Faces())

	s := mesh.FaceBitSetOf(10, 1, 3, 3, 9, 12, -1)
	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []mesh.FaceID{1, 3, 9}, s.Faces())

	c := s.Clone()
	c.Set(4)
	assert.False(t, s.Test(4))
	assert.False(t, s.Equal(c))
	assert.True(t, s.Equal(mesh.FaceBitSetOf(10, 9, 3, 1)))
	assert.True(t, mesh.NewFaceBitSet(4).Equal(zero))
}
