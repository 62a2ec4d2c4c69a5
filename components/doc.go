// Package components partitions the faces of a mesh.Part into connected
// components and labels them with dense region IDs.
//
// What
//
//   - Label(part, mode) returns a mesh.Face2RegionMap and the number of
//     components. Two faces share a RegionID iff they are connected by a path
//     of adjacent faces under the chosen adjacency.Mode.
//   - LabelWith(part, lookup) does the same for a custom adjacency.Lookup.
//   - Count, ComponentOf, RegionFaces, AllRegionFaces and RegionSizes answer
//     the common follow-up questions about a labeling.
//
// How
//
//	Every present face starts as a singleton in a unionfind.Forest and is
//	unioned with each neighbor the lookup reports. A final pass walks faces
//	in ascending FaceID; the first face seen from each set gives that set the
//	next RegionID (0, 1, 2, ...). The labeling is therefore a pure function of
//	the mesh, the part and the mode: repeated runs produce identical maps.
//
// Map shape
//
//	The map always has FaceCount() entries. Deleted faces and faces outside
//	the part's restriction carry mesh.NoRegion and are not counted.
//
// Parallelism
//
//	WithWorkers(n) splits the face range into n contiguous chunks and
//	discovers neighbor pairs concurrently. Unions and the dense pass stay on
//	the calling goroutine, so the result is identical to a sequential run.
//
// Complexity
//
//   - Time:   O(F + A·α(F)), A = adjacency pairs reported by the lookup.
//   - Memory: O(F) (+ O(A) for the pair buffers in parallel mode).
package components
