// Package grid: explicit (mutable) square-grid construction.
//
// NewSquareMap assembles the same topology as the procedural Grid on a
// core.DartMap, square by square, gluing neighbors with Sew — use it
// when the grid is only the starting point of further topology edits.
package grid

import (
	"fmt"

	"github.com/katalvlaran/gmap/core"
)

// XY is a lattice position attached to cells of a grid map.
type XY struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewSquareMap builds an explicit n-row, m-column square grid on a
// fresh 2-dimensional DartMap. It returns the map and the anchor darts
// of all squares, row-major: squares[y][x] is the dart on the square's
// north edge at the northwest vertex.
// Returns ErrEmptyGrid when n < 1 or m < 1.
// Complexity: O(n·m) polygons and sews.
func NewSquareMap(n, m int) (*core.DartMap, [][]core.Dart, error) {
	if n < 1 || m < 1 {
		return nil, nil, fmt.Errorf("NewSquareMap(%d, %d): %w", n, m, ErrEmptyGrid)
	}
	g, err := core.NewDartMap(2)
	if err != nil {
		return nil, nil, fmt.Errorf("NewSquareMap: %w", err)
	}

	squares := make([][]core.Dart, n)
	for y := 0; y < n; y++ {
		squares[y] = make([]core.Dart, m)
		for x := 0; x < m; x++ {
			if squares[y][x], err = g.MakePolygon(4); err != nil {
				return nil, nil, fmt.Errorf("NewSquareMap: %w", err)
			}
		}
	}

	// Glue east neighbors within each row, then south neighbors.
	for y := 0; y < n; y++ {
		for x := 0; x+1 < m; x++ {
			s0, s1 := squares[y][x], squares[y][x+1]
			if _, err = g.Sew(2, core.Al(g, s0, 0, 1), core.Al(g, s1, 1)); err != nil {
				return nil, nil, fmt.Errorf("NewSquareMap: sew (%d,%d)→(%d,%d): %w", y, x, y, x+1, err)
			}
		}
	}
	for y := 0; y+1 < n; y++ {
		for x := 0; x < m; x++ {
			s0, s1 := squares[y][x], squares[y+1][x]
			if _, err = g.Sew(2, core.Al(g, s0, 1, 0, 1), s1); err != nil {
				return nil, nil, fmt.Errorf("NewSquareMap: sew (%d,%d)→(%d,%d): %w", y, x, y+1, x, err)
			}
		}
	}

	return g, squares, nil
}

// VertexGrid returns one dart per lattice point of a square grid built
// by NewSquareMap: rows of (n+1)×(m+1) darts, vertexGrid[y][x] lying on
// the vertex at lattice point (y, x).
// Complexity: O(n·m).
func VertexGrid(g *core.DartMap, squares [][]core.Dart) [][]core.Dart {
	out := make([][]core.Dart, 0, len(squares)+1)
	for _, row := range squares {
		vrow := make([]core.Dart, 0, len(row)+1)
		vrow = append(vrow, row...)
		vrow = append(vrow, core.Al(g, row[len(row)-1], 0))
		out = append(out, vrow)
	}
	last := squares[len(squares)-1]
	vrow := make([]core.Dart, 0, len(last)+1)
	for _, d := range last {
		vrow = append(vrow, core.Al(g, d, 1, 0, 1))
	}
	vrow = append(vrow, core.Al(g, last[len(last)-1], 1, 0, 1, 0))

	return append(out, vrow)
}

// VertexPositions labels every vertex of a square grid with its
// lattice position, as an OrbitDict over vertices holding XY values —
// the position lookup a renderer reads cell annotations through.
// Complexity: O(n·m) vertex orbits.
func VertexPositions(g *core.DartMap, squares [][]core.Dart) *core.OrbitDict {
	pos := core.NewOrbitDict(core.AlphasVertex)
	for y, row := range VertexGrid(g, squares) {
		for x, d := range row {
			pos.Set(g, d, XY{X: x, Y: y})
		}
	}

	return pos
}
