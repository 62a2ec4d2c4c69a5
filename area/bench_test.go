package area_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/meshcomp/adjacency"
	"github.com/katalvlaran/meshcomp/area"
	"github.com/katalvlaran/meshcomp/builder"
	"github.com/katalvlaran/meshcomp/components"
	"github.com/katalvlaran/meshcomp/mesh"
)

// BenchmarkRegionAreas measures aggregation over 1e6 triangles.
func BenchmarkRegionAreas(b *testing.B) {
	m, err := builder.BuildMesh(nil, builder.Grid(1000, 500, 0.5))
	if err != nil {
		b.Fatalf("setup BuildMesh failed: %v", err)
	}
	part := mesh.WholeMesh(m)
	fm, n, err := components.Label(part, adjacency.PerEdge)
	if err != nil {
		b.Fatalf("setup Label failed: %v", err)
	}

	for _, workers := range []int{1, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = area.RegionAreas(part, fm, n, area.WithWorkers(workers))
			}
		})
	}
}
