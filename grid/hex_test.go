package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmap/core"
	"github.com/katalvlaran/gmap/grid"
)

func TestNewHexMap(t *testing.T) {
	g, hexes, err := grid.NewHexMap(2, 2)
	require.NoError(t, err)
	require.Len(t, hexes, 2)
	require.Len(t, hexes[0], 2)

	require.Equal(t, 2*2*12, g.NDarts())
	require.Len(t, core.OneDartPerCell(g, 2), 4, "faces")
	require.Len(t, core.OneDartPerOrbit(g, core.AlphasAll), 1)
	require.NoError(t, g.Validate())

	// A connected patch of the plane with no holes.
	v := len(core.OneDartPerCell(g, 0))
	e := len(core.OneDartPerCell(g, 1))
	f := len(core.OneDartPerCell(g, 2))
	require.Equal(t, 1, v-e+f, "Euler characteristic of a disk")

	// Each hex is a hexagon.
	for _, row := range hexes {
		for _, h := range row {
			require.Len(t, core.Orbit(g, h, core.AlphasFace), 12)
		}
	}
}

func TestNewHexMap_Empty(t *testing.T) {
	_, _, err := grid.NewHexMap(0, 1)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, _, err = grid.NewHexMap(1, -2)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNewHexMap_SingleHexagon(t *testing.T) {
	g, _, err := grid.NewHexMap(1, 1)
	require.NoError(t, err)

	require.Equal(t, 12, g.NDarts())
	require.Len(t, core.OneDartPerCell(g, 0), 6)
	require.Len(t, core.OneDartPerCell(g, 1), 6)
	require.Len(t, core.OneDartPerCell(g, 2), 1)
}

func TestHexVertexCoords(t *testing.T) {
	g, hexes, err := grid.NewHexMap(2, 3)
	require.NoError(t, err)

	coords := grid.HexVertexCoords(g, hexes)
	// One coordinate per vertex, every vertex covered.
	require.Len(t, coords.Darts(g), len(core.OneDartPerCell(g, 0)))

	// A vertex shared between neighboring hexes carries one agreed
	// coordinate: re-deriving each hex's corner coordinates must match
	// what the dictionary holds after all hexes wrote.
	for r, row := range hexes {
		for q, h := range row {
			a, b := r+2*q, r-q
			want := []struct {
				d  core.Dart
				xy grid.XY
			}{
				{h, grid.XY{X: a, Y: b - 1}},
				{core.Al(g, h, 0), grid.XY{X: a + 1, Y: b - 1}},
				{core.Al(g, h, 0, 1, 0), grid.XY{X: a + 1, Y: b}},
				{core.Al(g, h, 0, 1, 0, 1, 0), grid.XY{X: a, Y: b + 1}},
				{core.Al(g, h, 0, 1, 0, 1, 0, 1, 0), grid.XY{X: a - 1, Y: b + 1}},
				{core.Al(g, h, 0, 1, 0, 1, 0, 1, 0, 1, 0), grid.XY{X: a - 1, Y: b}},
			}
			for _, w := range want {
				v, ok := coords.Get(w.d)
				require.True(t, ok)
				require.Equal(t, w.xy, v, "hex (%d,%d)", r, q)
			}
		}
	}
}
