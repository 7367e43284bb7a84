// Package grid: explicit hexagonal-grid construction on axial
// coordinates (see https://www.redblobgames.com/grids/hexagons/):
// hexes at (0 <= r < n, 0 <= q < m).
package grid

import (
	"fmt"

	"github.com/katalvlaran/gmap/core"
)

// NewHexMap builds an explicit n×m hexagonal grid on a fresh
// 2-dimensional DartMap. It returns the map and the anchor darts of
// all hexes: hexes[r][q] is the dart on the hex's northeast edge at
// the north vertex.
// Returns ErrEmptyGrid when n < 1 or m < 1.
// Complexity: O(n·m) polygons and sews.
func NewHexMap(n, m int) (*core.DartMap, [][]core.Dart, error) {
	if n < 1 || m < 1 {
		return nil, nil, fmt.Errorf("NewHexMap(%d, %d): %w", n, m, ErrEmptyGrid)
	}
	g, err := core.NewDartMap(2)
	if err != nil {
		return nil, nil, fmt.Errorf("NewHexMap: %w", err)
	}

	hexes := make([][]core.Dart, n)
	for r := 0; r < n; r++ {
		hexes[r] = make([]core.Dart, m)
		for q := 0; q < m; q++ {
			if hexes[r][q], err = g.MakePolygon(6); err != nil {
				return nil, nil, fmt.Errorf("NewHexMap: %w", err)
			}
		}
	}

	// Glue east neighbors within each row.
	for r := 0; r < n; r++ {
		for q := 0; q+1 < m; q++ {
			s0, s1 := hexes[r][q], hexes[r][q+1]
			if _, err = g.Sew(2, core.Al(g, s0, 0, 1), core.Al(g, s1, 1, 0, 1)); err != nil {
				return nil, nil, fmt.Errorf("NewHexMap: sew (%d,%d)→(%d,%d): %w", r, q, r, q+1, err)
			}
		}
	}
	// Glue the two southern neighbors of each hex in the next row.
	for r := 0; r+1 < n; r++ {
		for q := 0; q < m; q++ {
			s0, s1 := hexes[r][q], hexes[r+1][q]
			if _, err = g.Sew(2, core.Al(g, s0, 0, 1, 0, 1), core.Al(g, s1, 1)); err != nil {
				return nil, nil, fmt.Errorf("NewHexMap: sew (%d,%d)↘(%d,%d): %w", r, q, r+1, q, err)
			}
		}
		for q := 1; q < m; q++ {
			s0, s1 := hexes[r][q], hexes[r+1][q-1]
			if _, err = g.Sew(2, core.Al(g, s0, 1, 0, 1, 0, 1), s1); err != nil {
				return nil, nil, fmt.Errorf("NewHexMap: sew (%d,%d)↙(%d,%d): %w", r, q, r+1, q-1, err)
			}
		}
	}

	return g, hexes, nil
}

// HexVertexCoords labels every vertex of a hex grid built by NewHexMap
// with coordinates along basis vectors (a, b), where a + b = (0, 1)
// and 2a - b = (1, 0): a and b are rotated 15° from the r- and q-axes
// and one vertex-distance long. Returned as an OrbitDict over vertices
// holding XY values (X carries a, Y carries b).
// Complexity: O(n·m) vertex orbits.
func HexVertexCoords(g *core.DartMap, hexes [][]core.Dart) *core.OrbitDict {
	coords := core.NewOrbitDict(core.AlphasVertex)
	for r, row := range hexes {
		for q, h := range row {
			a := r + 2*q
			b := r - q
			coords.Set(g, h, XY{X: a, Y: b - 1})
			coords.Set(g, core.Al(g, h, 0), XY{X: a + 1, Y: b - 1})
			coords.Set(g, core.Al(g, h, 0, 1, 0), XY{X: a + 1, Y: b})
			coords.Set(g, core.Al(g, h, 0, 1, 0, 1, 0), XY{X: a, Y: b + 1})
			coords.Set(g, core.Al(g, h, 0, 1, 0, 1, 0, 1, 0), XY{X: a - 1, Y: b + 1})
			coords.Set(g, core.Al(g, h, 0, 1, 0, 1, 0, 1, 0, 1, 0), XY{X: a - 1, Y: b})
		}
	}

	return coords
}
