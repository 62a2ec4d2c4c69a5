// Package adjacency answers "which faces neighbor this face?" for a
// mesh.Part under one of two incidence rules.
//
// What:
//
//   - PerEdge:   two faces are adjacent iff they share an edge. On a
//     non-manifold edge every face on that edge neighbors every other.
//   - PerVertex: two faces are adjacent iff they share at least one vertex.
//     Every PerEdge neighbor is also a PerVertex neighbor, so labeling under
//     PerVertex never yields more components than under PerEdge.
//
// The rule is a strategy, not a type hierarchy: Lookup is a plain function
// value and LookupFor(mode) hands out the built-in ones. The components
// package is parameterized by a Lookup, so custom incidence rules plug in
// without touching the labeler.
//
// Queries:
//
//   - Neighbors(part, f, mode)      distinct, in-part neighbors, ascending.
//   - NeighborsOf(part, faces, mode) the same for a batch; every face is
//     processed and all failures are reported together.
//   - ToGraph(part, mode)           the face dual graph as a gonum
//     *simple.UndirectedGraph (node ID = FaceID) for use with gonum's
//     graph algorithms.
//
// Complexity (k = face degree, d = faces per vertex):
//
//   - PerEdge:   O(k·d_edge) per face.
//   - PerVertex: O(k·d) per face.
//   - ToGraph:   O(F + E) time and memory.
//
// Errors:
//
//   - mesh.ErrInvalidFace:  face out of range or deleted.
//   - ErrFaceOutsidePart:   face excluded by the part's restriction.
//   - ErrUnknownMode:       a Mode other than PerEdge / PerVertex.
package adjacency
