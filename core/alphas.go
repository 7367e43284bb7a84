package core

// Alphas is an immutable set of alpha indices represented as a bitset:
// bit i is set when alpha_i belongs to the family. Orbits are closures
// under every selected index, so an Alphas value names a kind of cell
// or sub-cell independent of any particular map.
type Alphas uint32

// Standard alpha subsets. A cell of dimension i is the orbit under
// every index except i, hence the complemented masks.
const (
	// AlphasVertex selects all indices except 0: the orbit is a vertex.
	AlphasVertex = Alphas(^uint32(1 << 0))
	// AlphasEdge selects all indices except 1: the orbit is an edge.
	AlphasEdge = Alphas(^uint32(1 << 1))
	// AlphasFace selects all indices except 2: the orbit is a face.
	AlphasFace = Alphas(^uint32(1 << 2))
	// AlphasHalfEdge excludes indices 0 and 1.
	AlphasHalfEdge = Alphas(^uint32(3))
	// AlphasAngle excludes indices 0 and 2.
	AlphasAngle = Alphas(^uint32(5))
	// AlphasSide excludes indices 1 and 2.
	AlphasSide = Alphas(^uint32(6))
	// AlphasDart is the empty subset: every orbit is a singleton.
	AlphasDart = Alphas(0)
	// AlphasAll selects every index: the orbit is a connected component.
	AlphasAll = Alphas(^uint32(0))
)

// CellAlphas returns the subset defining an i-cell: all indices except
// i, with no upper bound (the map's dimension bounds traversal).
// Complexity: O(1).
func CellAlphas(i int) Alphas {
	return Alphas(^(uint32(1) << i))
}

// CellAlphasDim returns the subset defining an i-cell within dimension
// dim: all indices in [0, dim] except i.
// Complexity: O(1).
func CellAlphasDim(i, dim int) Alphas {
	return Alphas(((uint32(1) << (dim + 1)) - 1) &^ (uint32(1) << i))
}

// AlphasFromIndices builds a subset from explicit indices.
// Complexity: O(len(indices)).
func AlphasFromIndices(indices ...int) Alphas {
	var a Alphas
	for _, i := range indices {
		a |= Alphas(uint32(1) << i)
	}

	return a
}

// Has reports whether alpha_i belongs to the subset. Complexity: O(1).
func (a Alphas) Has(i int) bool {
	return (a>>i)&1 == 1
}

// Without returns the subset with index i removed. Complexity: O(1).
func (a Alphas) Without(i int) Alphas {
	return a &^ Alphas(uint32(1)<<i)
}

// Indices lists the selected indices up to and including dim, in
// ascending order. Complexity: O(dim).
func (a Alphas) Indices(dim int) []int {
	out := make([]int, 0, dim+1)
	for i := 0; i <= dim; i++ {
		if a.Has(i) {
			out = append(out, i)
		}
	}

	return out
}
