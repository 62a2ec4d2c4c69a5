// SPDX-License-Identifier: MIT
// Package: meshcomp/mesh
//
// types.go — handles, the face → region map and the face bit set.

package mesh

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// FaceID indexes the mesh face array.
type FaceID int32

// VertID indexes the mesh point array.
type VertID int32

// RegionID labels one connected component. IDs are dense, starting at 0.
type RegionID int32

// NoRegion marks a face that belongs to no region (deleted or excluded).
const NoRegion RegionID = -1

// Face2RegionMap maps every FaceID of a mesh to its RegionID.
// It always has exactly FaceCount() entries; faces that were not labeled
// carry NoRegion.
type Face2RegionMap []RegionID

// Validate checks that every entry is NoRegion or lies in [0, numRegions)
// and that the highest region present is numRegions-1, i.e. the map and
// the count come from the same labeling pass.
// Complexity: O(len(fm)).
func (fm Face2RegionMap) Validate(numRegions int) error {
	if numRegions < 0 {
		return fmt.Errorf("%w: negative region count %d", ErrInconsistentMap, numRegions)
	}
	maxID := NoRegion
	for f, r := range fm {
		if r == NoRegion {
			continue
		}
		if r < 0 || int(r) >= numRegions {
			return fmt.Errorf("%w: face %d has region %d, want [0,%d)", ErrInconsistentMap, f, r, numRegions)
		}
		if r > maxID {
			maxID = r
		}
	}
	if int(maxID)+1 != numRegions {
		return fmt.Errorf("%w: highest region is %d but count is %d", ErrInconsistentMap, maxID, numRegions)
	}

	return nil
}

// FaceBitSet holds one bit per face. The zero value is an empty set that
// reports Len() == 0; use NewFaceBitSet to size it for a mesh.
type FaceBitSet struct {
	bits *bitset.BitSet
}

// NewFaceBitSet returns an empty set able to hold faces [0, n).
func NewFaceBitSet(n int) FaceBitSet {
	if n < 0 {
		n = 0
	}

	return FaceBitSet{bits: bitset.New(uint(n))}
}

// FaceBitSetOf returns a set of size n with the given faces switched on.
// Faces outside [0, n) are ignored.
func FaceBitSetOf(n int, faces ...FaceID) FaceBitSet {
	s := NewFaceBitSet(n)
	for _, f := range faces {
		if f >= 0 && int(f) < n {
			s.Set(f)
		}
	}

	return s
}

// IsZero reports whether s was never sized (the zero value).
func (s FaceBitSet) IsZero() bool { return s.bits == nil }

// Len returns the number of face slots the set was sized for.
func (s FaceBitSet) Len() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Len())
}

// Set switches face f on. f must be non-negative.
func (s FaceBitSet) Set(f FaceID) {
	s.bits.Set(uint(f))
}

// Test reports whether face f is in the set.
func (s FaceBitSet) Test(f FaceID) bool {
	if s.bits == nil || f < 0 {
		return false
	}

	return s.bits.Test(uint(f))
}

// Count returns the number of faces in the set.
func (s FaceBitSet) Count() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Count())
}

// Faces lists the members in ascending order.
func (s FaceBitSet) Faces() []FaceID {
	if s.bits == nil {
		return nil
	}
	out := make([]FaceID, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, FaceID(i))
	}

	return out
}

// Equal reports whether both sets hold the same faces.
func (s FaceBitSet) Equal(o FaceBitSet) bool {
	return s.Count() == o.Count() && (s.Count() == 0 || s.bits.IsSuperSet(o.bits))
}

// Clone returns an independent copy.
func (s FaceBitSet) Clone() FaceBitSet {
	if s.bits == nil {
		return FaceBitSet{}
	}

	return FaceBitSet{bits: s.bits.Clone()}
}
