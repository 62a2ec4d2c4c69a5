// Package regions selects the largest-area regions of a face labeling.
//
// SelectLargest(part, fm, n, maxRegions, minArea) ranks every region whose
// area is at least minArea (inclusive) by area descending, breaking ties by
// the lower RegionID, keeps the first min(maxRegions, eligible) and returns
// the union of their faces as a mesh.FaceBitSet together with the number of
// regions actually chosen.
//
// maxRegions == 0, or no region reaching minArea, is not an error: the
// result is an empty set and NumRegions == 0. Negative maxRegions and
// negative/NaN minArea are rejected.
//
// Areas come from area.RegionAreas; WithAreaOptions passes knobs through.
package regions
