// Package area aggregates face areas per region of a face labeling.
//
// What:
//
//   - FaceAreas(part):               area of every face, 0 outside the part.
//   - TotalArea(part):               sum of FaceAreas in ascending FaceID.
//   - RegionAreas(part, fm, n):      total area of each region 0..n-1.
//
// Face area is half the length of the face's vector area (mesh.FaceArea),
// which is the usual cross-product area for triangles and the planar
// polygon area otherwise. Degenerate faces contribute 0 and are not errors.
//
// Determinism:
//
//	Sums are always taken in ascending FaceID on the calling goroutine.
//	WithWorkers only parallelizes the per-face area computation into a
//	face-indexed buffer, so results are bit-identical to a sequential run.
//
// Validation (RegionAreas):
//
//	The whole map is checked before anything is summed. A length different
//	from FaceCount() or a region id outside [0,n) is mesh.ErrInconsistentMap;
//	a deleted or out-of-part face that carries a region id is
//	mesh.ErrInvalidFace. Every offending face is reported, combined with
//	go.uber.org/multierr; no areas are returned on error.
//
// Complexity: O(F·k) time, O(F) memory with workers, O(n) without.
package area
