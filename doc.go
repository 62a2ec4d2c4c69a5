// Package meshcomp splits a polygon mesh into connected face regions and
// picks out the largest of them by surface area.
//
// What it does:
//
//   - Labels every face of a mesh part with a dense region number, faces
//     being connected through a shared edge (PerEdge) or a shared vertex
//     (PerVertex).
//   - Sums the surface area of each region.
//   - Selects up to k regions of at least a given area, largest first.
//
// The root package is the thin entry point; the work lives in
// subpackages, leaves first:
//
//	mesh/        — Mesh, Part, FaceBitSet, Face2RegionMap, face area
//	adjacency/   — PerEdge / PerVertex neighbor strategies, dual-graph export
//	unionfind/   — disjoint-set forest over dense int32 ids
//	components/  — labeling, component counts, per-region face sets
//	area/        — per-face and per-region area
//	regions/     — area ranking and top-k selection
//	builder/     — deterministic mesh fixtures for tests and benchmarks
//
// Quick ASCII example (two triangles touching at one vertex):
//
//	|\    /|
//	| \  / |
//	|  \/  |     PerEdge   → 2 components
//	|  /\  |     PerVertex → 1 component
//	| /  \ |
//	|/    \|
//
// Results are plain values: a ComponentsMap holds one RegionID per mesh
// face (mesh.NoRegion for faces outside the part) and the number of
// components; Regions holds a face bit set and the number of selected
// regions. Labeling is deterministic: regions are numbered in order of
// their lowest face, with or without worker parallelism.
//
//	go get github.com/katalvlaran/meshcomp
package meshcomp
