// Package mesh is the read-only polygon mesh model consumed by the
// adjacency, components, area and regions packages.
//
// What:
//
//   - Mesh stores point positions (gonum r3.Vec) and faces, each an ordered
//     list of at least three vertex IDs. Faces may be marked deleted; a
//     deleted face keeps its slot (IDs stay contiguous) but is skipped by
//     every query.
//   - On construction Mesh builds two incidence indexes:
//     vertex → faces (CSR arrays, faces ascending) and
//     undirected edge → faces.
//   - Part couples a Mesh with an optional FaceBitSet restriction; faces
//     outside the restriction are treated as absent.
//   - Face2RegionMap is the face → region labeling produced by the
//     components package, with NoRegion as the "unassigned" sentinel.
//
// Immutability:
//
//	A Mesh is never mutated after New returns, so it may be shared freely
//	between goroutines. Anything derived from it (region maps, bit sets)
//	holds no reference back to the mesh and goes stale if the caller
//	builds a new mesh with different topology.
//
// Complexity:
//
//   - New: O(F·k + V) time and memory, k = vertices per face.
//   - FacesAround, EdgeFaces, FaceVerts: O(1) (+ hash lookup for edges).
//   - FaceArea: O(k).
//
// Errors:
//
//   - ErrTooFewVertices: a face references fewer than three vertices.
//   - ErrInvalidVertex:  a face references a vertex outside the point array.
//   - ErrInvalidFace:    a FaceID is out of range or deleted.
//   - ErrNilMesh:        a Part without a mesh.
//   - ErrInconsistentMap: a Face2RegionMap disagrees with its region count
//     or with the mesh it is applied to.
package mesh
