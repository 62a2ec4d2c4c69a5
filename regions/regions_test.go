package regions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp/adjacency"
	"github.com/katalvlaran/meshcomp/area"
	"github.com/katalvlaran/meshcomp/builder"
	"github.com/katalvlaran/meshcomp/components"
	"github.com/katalvlaran/meshcomp/mesh"
	"github.com/katalvlaran/meshcomp/regions"
)

// labeled builds the given fixtures and labels them per edge.
func labeled(t *testing.T, cons ...builder.Constructor) (mesh.Part, mesh.Face2RegionMap, int) {
	t.Helper()
	m, err := builder.BuildMesh(nil, cons...)
	require.NoError(t, err)
	part := mesh.WholeMesh(m)
	fm, n, err := components.Label(part, adjacency.PerEdge)
	require.NoError(t, err)

	return part, fm, n
}

// threeRegions lays out grids of area 1, 10 and 5, in that face order, so
// region 0 = 1, region 1 = 10, region 2 = 5.
func threeRegions(t *testing.T) (mesh.Part, mesh.Face2RegionMap, int) {
	return labeled(t,
		builder.Grid(1, 1, 1),
		builder.Translate(r3.Vec{X: 10}, builder.Grid(2, 5, 1)),
		builder.Translate(r3.Vec{X: 30}, builder.Grid(1, 5, 1)),
	)
}

func TestSelectLargest_TopTwo(t *testing.T) {
	part, fm, n := threeRegions(t)

	sel, err := regions.SelectLargest(part, fm, n, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, sel.NumRegions)
	assert.Equal(t, []mesh.RegionID{1, 2}, sel.Regions)
	assert.InDeltaSlice(t, []float64{10, 5}, sel.Areas, 1e-9)

	want := append(components.RegionFaces(fm, 1).Faces(), components.RegionFaces(fm, 2).Faces()...)
	assert.Equal(t, want, sel.Faces.Faces())
	assert.Equal(t, part.Mesh.FaceCount(), sel.Faces.Len())
	assert.False(t, sel.Faces.Test(0))
}

func TestSelectLargest_SinglePatchCoversAll(t *testing.T) {
	part, fm, n := labeled(t, builder.Grid(5, 10, 1))
	sel, err := regions.SelectLargest(part, fm, n, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sel.NumRegions)
	assert.Equal(t, 100, sel.Faces.Count())
}

func TestSelectLargest_MinArea(t *testing.T) {
	part, fm, n := threeRegions(t)

	sel, err := regions.SelectLargest(part, fm, n, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []mesh.RegionID{1, 2}, sel.Regions, "threshold is inclusive")

	sel, err = regions.SelectLargest(part, fm, n, 5, 100)
	require.NoError(t, err)
	assert.Zero(t, sel.NumRegions)
	assert.Zero(t, sel.Faces.Count())
	assert.Empty(t, sel.Regions)

	sel, err = regions.SelectLargest(part, fm, n, 1, 5.5)
	require.NoError(t, err)
	assert.Equal(t, []mesh.RegionID{1}, sel.Regions)
}

func TestSelectLargest_ZeroAndOverCap(t *testing.T) {
	part, fm, n := threeRegions(t)

	sel, err := regions.SelectLargest(part, fm, n, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, sel.NumRegions)
	assert.Zero(t, sel.Faces.Count())

	sel, err = regions.SelectLargest(part, fm, n, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, sel.NumRegions)
	assert.Equal(t, []mesh.RegionID{1, 2, 0}, sel.Regions)
	assert.Equal(t, part.Mesh.FaceCount(), sel.Faces.Count())
}

func TestSelectLargest_TiesBreakByRegionID(t *testing.T) {
	part, fm, n := labeled(t,
		builder.Grid(1, 2, 1),
		builder.Translate(r3.Vec{X: 10}, builder.Grid(1, 3, 1)),
		builder.Translate(r3.Vec{X: 20}, builder.Grid(2, 1, 1)),
	)
	sel, err := regions.SelectLargest(part, fm, n, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []mesh.RegionID{1, 0}, sel.Regions, "region 0 and 2 tie at area 2")
}

func TestSelectLargest_Empty(t *testing.T) {
	m, err := mesh.New(nil, nil)
	require.NoError(t, err)
	sel, err := regions.SelectLargest(mesh.WholeMesh(m), mesh.Face2RegionMap{}, 0, 3, 0)
	require.NoError(t, err)
	assert.Zero(t, sel.NumRegions)
}

func TestSelectLargest_WithParallelAreas(t *testing.T) {
	part, fm, n := threeRegions(t)
	a, err := regions.SelectLargest(part, fm, n, 2, 0)
	require.NoError(t, err)
	b, err := regions.SelectLargest(part, fm, n, 2, 0, regions.WithAreaOptions(area.WithWorkers(4)))
	require.NoError(t, err)
	assert.Equal(t, a.Regions, b.Regions)
	assert.True(t, a.Faces.Equal(b.Faces))
}

func TestSelectLargest_Errors(t *testing.T) {
	part, fm, n := threeRegions(t)

	_, err := regions.SelectLargest(part, fm, n, -1, 0)
	assert.ErrorIs(t, err, regions.ErrNegativeMaxRegions)

	_, err = regions.SelectLargest(part, fm, n, 1, -0.5)
	assert.ErrorIs(t, err, regions.ErrInvalidMinArea)

	_, err = regions.SelectLargest(part, fm, n, 1, math.NaN())
	assert.ErrorIs(t, err, regions.ErrInvalidMinArea)

	_, err = regions.SelectLargest(part, fm, n+1, 1, 0)
	assert.ErrorIs(t, err, mesh.ErrInconsistentMap)

	_, err = regions.SelectLargest(part, fm[:3], n, 1, 0)
	assert.ErrorIs(t, err, mesh.ErrInconsistentMap)

	_, err = regions.SelectLargest(part, fm, n, 1, 0, regions.WithAreaOptions(area.WithWorkers(-3)))
	assert.ErrorIs(t, err, area.ErrOptionViolation)
}

func TestRank(t *testing.T) {
	areas := []float64{3, 7, 3, 0, 7}
	assert.Equal(t, []mesh.RegionID{1, 4, 0, 2, 3}, regions.Rank(areas, 0))
	assert.Equal(t, []mesh.RegionID{1, 4, 0, 2}, regions.Rank(areas, 3))
	assert.Empty(t, regions.Rank(areas, 8))
	assert.Empty(t, regions.Rank(nil, 0))
}
