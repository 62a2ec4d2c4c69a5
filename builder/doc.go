// Package builder assembles deterministic mesh fixtures for tests,
// benchmarks and examples of the meshcomp packages.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:    resolves options, runs constructors in order, calls mesh.New.
//     – Constructor:  a function that appends points and faces to the shared buffer.
//   - Topology constructors (impl_*.go):
//     – Triangle, Polygon: single faces.
//     – Grid:        rows×cols cells, two triangles each (one edge-connected patch).
//     – Fan:         n triangles around a shared apex, consecutive ones share an edge.
//     – Bowtie:      two triangles touching at exactly one vertex.
//     – RandomSoup:  triangles over a small random point pool (needs WithSeed/WithRand).
//     – Translate:   shifts everything its inner constructors emit.
//   - Configuration (BuilderOption):
//     – WithSeed, WithRand: RNG for RandomSoup.
//     – WithDeletedFaces:   forwarded to mesh.New.
//
// Guarantees:
//
//   - Determinism: same constructors, order and seed ⇒ identical meshes.
//   - Constructors never share vertices with each other; connectivity
//     between fixtures only arises inside a single constructor.
//   - Constructors validate their parameters and return sentinel errors
//     wrapped with the constructor name; option constructors panic on nil.
//
// Areas (handy for assertions):
//
//   - Grid(rows, cols, cell):  rows·cols·cell²  (2·rows·cols triangles).
//   - Fan(n, r):               n·½·r²·sin(2π/max(n,3)).
//   - Bowtie(s):               s² (two triangles of s²/2).
package builder
