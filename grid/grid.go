// Package grid: the procedural square-grid realization of core.GMap.
//
// No topology is stored — a dart is the value (square, corner) encoded
// into a core.Dart, and alpha is a pure function of that value. Dart
// identities are structural and only meaningful within the grid that
// produced them.
package grid

import (
	"fmt"

	"github.com/katalvlaran/gmap/core"
)

// dartsPerSquare is the number of darts in one square face: four sides
// times two darts per side.
const dartsPerSquare = 8

// Per-corner offsets of the neighboring square crossed by alpha_2.
var (
	crossYOff = [dartsPerSquare]int{-1, -1, 0, 0, 1, 1, 0, 0}
	crossXOff = [dartsPerSquare]int{0, 0, 1, 1, 0, 0, -1, -1}
)

// Doubled-coordinate offsets of the edge carrying each corner dart.
var (
	edgeYOff2 = [dartsPerSquare]int{0, 0, 1, 1, 2, 2, 1, 1}
	edgeXOff2 = [dartsPerSquare]int{1, 1, 2, 2, 1, 1, 0, 0}
)

// Lattice offsets of the vertex carrying each corner dart. Constant on
// every vertex orbit {1,2}, {3,4}, {5,6}, {7,0} within a square.
var (
	vertYOff = [dartsPerSquare]int{0, 0, 0, 1, 1, 1, 1, 0}
	vertXOff = [dartsPerSquare]int{0, 1, 1, 1, 1, 0, 0, 0}
)

// Grid is an n×m square grid as a dimension-2 generalized map with
// 8·n·m darts and purely computed alpha links. It is immutable, always
// valid, and safe to share for reading.
type Grid struct {
	height int
	width  int
}

// New creates an n-row, m-column procedural grid.
// Returns ErrEmptyGrid when n < 1 or m < 1. Complexity: O(1).
func New(n, m int) (*Grid, error) {
	if n < 1 || m < 1 {
		return nil, fmt.Errorf("grid.New(%d, %d): %w", n, m, ErrEmptyGrid)
	}

	return &Grid{height: n, width: m}, nil
}

// Height reports the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Width reports the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Dimension reports 2: a grid is a surface map. Complexity: O(1).
func (g *Grid) Dimension() int { return 2 }

// NDarts reports the total number of darts. Complexity: O(1).
func (g *Grid) NDarts() int {
	return g.height * g.width * dartsPerSquare
}

// Darts returns all darts in ascending (row-major, then corner) order.
// Complexity: O(n·m).
func (g *Grid) Darts() []core.Dart {
	out := make([]core.Dart, g.NDarts())
	for k := range out {
		out[k] = core.Dart(k)
	}

	return out
}

// HasSquare reports whether (y, x) is a square of the grid.
// Complexity: O(1).
func (g *Grid) HasSquare(y, x int) bool {
	return y >= 0 && y < g.height && x >= 0 && x < g.width
}

// encode packs (square, corner) into the dart value.
func (g *Grid) encode(y, x, corner int) core.Dart {
	return core.Dart((y*g.width+x)*dartsPerSquare + corner)
}

// Decode unpacks a dart into its square coordinates and corner index.
// Complexity: O(1).
func (g *Grid) Decode(d core.Dart) (y, x, corner int) {
	corner = int(d) % dartsPerSquare
	square := int(d) / dartsPerSquare

	return square / g.width, square % g.width, corner
}

// Alpha computes the i-th involution of d from coordinates alone.
// alpha_2 on the grid rim returns d itself: rim darts are 2-free, which
// is exactly what keeps the map valid with no stored state.
// Complexity: O(1).
func (g *Grid) Alpha(d core.Dart, i int) core.Dart {
	y, x, corner := g.Decode(d)
	switch i {
	case 0:
		return g.encode(y, x, corner^1)
	case 1:
		return g.encode(y, x, (((corner+1)^1)+7)%dartsPerSquare)
	case 2:
		ny, nx := y+crossYOff[corner], x+crossXOff[corner]
		if !g.HasSquare(ny, nx) {
			return d
		}

		return g.encode(ny, nx, ((corner^1)+4)%dartsPerSquare)
	default:
		panic(fmt.Sprintf("grid: alpha index %d out of range [0,2]", i))
	}
}

// SquareAt returns the anchor dart of square (y, x): the west dart of
// its north edge (corner 0). Returns ErrOutOfBounds for coordinates
// outside the grid. Complexity: O(1).
func (g *Grid) SquareAt(y, x int) (core.Dart, error) {
	if !g.HasSquare(y, x) {
		return 0, fmt.Errorf("SquareAt(%d, %d): %w", y, x, ErrOutOfBounds)
	}

	return g.encode(y, x, 0), nil
}

// FaceLoc returns the square coordinates of d's face. Complexity: O(1).
func (g *Grid) FaceLoc(d core.Dart) (y, x int) {
	y, x, _ = g.Decode(d)

	return y, x
}

// VertexLoc returns the lattice coordinates of d's vertex: corner
// (0,0) of square (y, x) is lattice point (y, x). Complexity: O(1).
func (g *Grid) VertexLoc(d core.Dart) (y, x int) {
	sy, sx, corner := g.Decode(d)

	return sy + vertYOff[corner], sx + vertXOff[corner]
}

// EdgeLoc2 returns the doubled-coordinate location of d's edge: even
// coordinates are lattice points, odd ones edge midpoints.
// Complexity: O(1).
func (g *Grid) EdgeLoc2(d core.Dart) (y, x int) {
	sy, sx, corner := g.Decode(d)

	return 2*sy + edgeYOff2[corner], 2*sx + edgeXOff2[corner]
}

// edgeAt returns the canonical edge rep at the given corner of square
// (y, x), guarding bounds.
func (g *Grid) edgeAt(y, x, corner int) (core.Dart, error) {
	if !g.HasSquare(y, x) {
		return 0, fmt.Errorf("edge at (%d, %d): %w", y, x, ErrOutOfBounds)
	}

	return core.EdgeRep(g, g.encode(y, x, corner)), nil
}

// EdgeTop returns the canonical rep of square (y, x)'s north edge.
func (g *Grid) EdgeTop(y, x int) (core.Dart, error) { return g.edgeAt(y, x, 0) }

// EdgeRight returns the canonical rep of square (y, x)'s east edge.
func (g *Grid) EdgeRight(y, x int) (core.Dart, error) { return g.edgeAt(y, x, 2) }

// EdgeBottom returns the canonical rep of square (y, x)'s south edge.
func (g *Grid) EdgeBottom(y, x int) (core.Dart, error) { return g.edgeAt(y, x, 4) }

// EdgeLeft returns the canonical rep of square (y, x)'s west edge.
func (g *Grid) EdgeLeft(y, x int) (core.Dart, error) { return g.edgeAt(y, x, 6) }

// vertexAtCorner returns the canonical vertex rep at the given corner
// of square (y, x), guarding bounds.
func (g *Grid) vertexAtCorner(y, x, corner int) (core.Dart, error) {
	if !g.HasSquare(y, x) {
		return 0, fmt.Errorf("vertex at (%d, %d): %w", y, x, ErrOutOfBounds)
	}

	return core.VertexRep(g, g.encode(y, x, corner)), nil
}

// VertexTL returns the canonical rep of square (y, x)'s northwest vertex.
func (g *Grid) VertexTL(y, x int) (core.Dart, error) { return g.vertexAtCorner(y, x, 0) }

// VertexTR returns the canonical rep of square (y, x)'s northeast vertex.
func (g *Grid) VertexTR(y, x int) (core.Dart, error) { return g.vertexAtCorner(y, x, 2) }

// VertexBR returns the canonical rep of square (y, x)'s southeast vertex.
func (g *Grid) VertexBR(y, x int) (core.Dart, error) { return g.vertexAtCorner(y, x, 4) }

// VertexBL returns the canonical rep of square (y, x)'s southwest vertex.
func (g *Grid) VertexBL(y, x int) (core.Dart, error) { return g.vertexAtCorner(y, x, 6) }

// VertexAt returns the canonical vertex rep at lattice point (y, x),
// for y in [0, height] and x in [0, width] — the rim lattice points
// belong to the last row/column of squares.
// Complexity: O(1) plus one vertex orbit.
func (g *Grid) VertexAt(y, x int) (core.Dart, error) {
	if y < 0 || y > g.height || x < 0 || x > g.width {
		return 0, fmt.Errorf("VertexAt(%d, %d): %w", y, x, ErrOutOfBounds)
	}
	switch {
	case y == g.height && x == g.width:
		return g.VertexBR(y-1, x-1)
	case y == g.height:
		return g.VertexBL(y-1, x)
	case x == g.width:
		return g.VertexTR(y, x-1)
	default:
		return g.VertexTL(y, x)
	}
}
