package meshcomp_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/meshcomp"
	"github.com/katalvlaran/meshcomp/builder"
	"github.com/katalvlaran/meshcomp/mesh"
)

// Example labels a mesh of three separate patches and keeps the largest
// one.
func Example() {
	m, err := builder.BuildMesh(nil,
		builder.Grid(1, 2, 1),                                  // area 2, faces 0..3
		builder.Translate(r3.Vec{X: 5}, builder.Grid(3, 3, 1)), // area 9, faces 4..21
		builder.Translate(r3.Vec{X: 10}, builder.Bowtie(1)),    // area 1, faces 22..23
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	part := mesh.WholeMesh(m)

	cm, _ := meshcomp.GetAllComponentsMap(part, meshcomp.PerEdge)
	fmt.Println("components:", cm.NumComponents)

	rs, _ := meshcomp.GetLargeRegionsByArea(part, cm, 1, 0)
	fmt.Println("selected:", rs.NumRegions, "faces:", rs.Faces.Count())

	// Output:
	// components: 4
	// selected: 1 faces: 18
}
