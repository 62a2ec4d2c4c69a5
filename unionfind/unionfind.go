// Package unionfind provides a disjoint-set forest over the integers [0, n).
//
// Every element starts in its own singleton set. Find and Union are the only
// transitions; after any sequence of unions the representative returned by
// Find is stable until the next Union that touches that set.
//
// Find uses path halving (each visited node is pointed at its grandparent)
// and Union attaches the smaller tree under the larger one, giving
// O(α(n)) amortized cost per operation. Both are iterative, so deep trees
// cannot overflow the stack on meshes with millions of faces.
//
// A Forest is not safe for concurrent mutation.
package unionfind

// Forest is a disjoint-set forest with union by size.
type Forest struct {
	parent []int32
	size   []int32
	sets   int
}

// New returns a forest of n singleton sets. n < 0 is treated as 0.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int32, n),
		size:   make([]int32, n),
		sets:   n,
	}
	for i := range f.parent {
		f.parent[i] = int32(i)
		f.size[i] = 1
	}

	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the representative of x's set.
func (f *Forest) Find(x int) int {
	p := f.parent
	for p[x] != int32(x) {
		p[x] = p[p[x]]
		x = int(p[x])
	}

	return x
}

// Union merges the sets containing a and b. It reports whether a merge
// happened (false when they were already together).
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = int32(ra)
	f.size[ra] += f.size[rb]
	f.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// SetSize returns the number of elements in x's set.
func (f *Forest) SetSize(x int) int {
	return int(f.size[f.Find(x)])
}

// Merge folds every union recorded in other into f. Both forests must have
// the same length; partial forests built over disjoint slices of the
// element range can be combined this way.
// Complexity: O(n·α(n)).
func (f *Forest) Merge(other *Forest) {
	for x := range other.parent {
		if r := other.Find(x); r != x {
			f.Union(x, r)
		}
	}
}
