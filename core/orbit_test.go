package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmap/core"
)

// diagonalMap builds a fixed 12-dart 2-map: two squares, one of them
// cut along a diagonal, glued along a single edge. Small enough to
// enumerate by hand, irregular enough that every orbit kind differs.
func diagonalMap(t *testing.T) *core.DartMap {
	t.Helper()
	m, err := core.FromAlpha(2, []core.Dart{
		1, 5, 7,
		0, 2, 6,
		3, 1, 2,
		2, 4, 3,
		5, 3, 4,
		4, 0, 5,
		7, 11, 1,
		6, 8, 0,
		9, 7, 8,
		8, 10, 9,
		11, 9, 10,
		10, 6, 11,
	})
	require.NoError(t, err)

	return m
}

func sorted(l []core.Dart) []core.Dart {
	out := append([]core.Dart(nil), l...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func TestAl(t *testing.T) {
	m := diagonalMap(t)

	require.Equal(t, core.Dart(2), core.Al(m, 0, 0, 1))
	require.Equal(t, core.Dart(0), core.Al(m, 0))
	require.Equal(t, core.Dart(6), core.Al(m, 0, 2, 0))
}

func TestOrbit(t *testing.T) {
	m := diagonalMap(t)

	cases := []struct {
		name string
		a    core.Alphas
		want []core.Dart
	}{
		{"Vertex", core.AlphasVertex, []core.Dart{0, 5, 7, 8}},
		{"Edge", core.AlphasEdge, []core.Dart{0, 1, 6, 7}},
		{"Face", core.AlphasFace, []core.Dart{0, 1, 2, 3, 4, 5}},
		{"HalfEdge", core.AlphasHalfEdge, []core.Dart{0, 7}},
		{"Angle", core.AlphasAngle, []core.Dart{0, 5}},
		{"Side", core.AlphasSide, []core.Dart{0, 1}},
		{"Dart", core.AlphasDart, []core.Dart{0}},
		{"All", core.AlphasAll, []core.Dart{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, sorted(core.Orbit(m, 0, tc.a)))
		})
	}
}

func TestOrbitPaths(t *testing.T) {
	m := diagonalMap(t)

	steps := core.OrbitPaths(m, 0, core.AlphasEdge)
	require.Equal(t, core.PathDart{Path: "", Dart: 0}, steps[0],
		"seed must come first with the empty path")
	for _, s := range steps {
		require.Equal(t, s.Dart, core.Al(m, 0, s.Path.Indices()...),
			"path %v does not lead to dart %d", s.Path.Indices(), s.Dart)
	}
}

func TestOneDartPerCell(t *testing.T) {
	m := diagonalMap(t)

	require.Len(t, core.OneDartPerCell(m, 0), 4, "vertices")
	require.Len(t, core.OneDartPerCell(m, 1), 5, "edges")
	require.Len(t, core.OneDartPerCell(m, 2), 2, "faces")
	require.Len(t, core.OneDartPerOrbit(m, core.AlphasHalfEdge), 10, "half-edges")
	require.Len(t, core.OneDartPerOrbit(m, core.AlphasAll), 1, "components")
}

func TestAllCells(t *testing.T) {
	m := diagonalMap(t)

	faces := core.AllCells(m, 2)
	require.Len(t, faces, 2)
	require.Equal(t, []core.Dart{0, 1, 2, 3, 4, 5}, sorted(faces[0]))
	require.Equal(t, []core.Dart{6, 7, 8, 9, 10, 11}, sorted(faces[1]))

	total := 0
	for _, c := range core.AllCells(m, 0) {
		total += len(c)
	}
	require.Equal(t, m.NDarts(), total, "vertex cells must partition the darts")
}

func TestOneDartPerIncidentCell(t *testing.T) {
	m := diagonalMap(t)

	// Edges bounding dart 0's face: each returned dart lies in the face.
	edges := core.OneDartPerIncidentCell(m, 0, 1, 2)
	require.Len(t, edges, 3)
	face := map[core.Dart]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true}
	for _, d := range edges {
		require.True(t, face[d], "dart %d is not in the seed face", d)
	}

	// Vertices of dart 0's edge.
	require.Len(t, core.OneDartPerIncidentCell(m, 0, 0, 1), 2)
}

func TestRep(t *testing.T) {
	m := diagonalMap(t)

	// Every member of an orbit resolves to the same minimum dart.
	for _, d := range []core.Dart{0, 5, 7, 8} {
		require.Equal(t, core.Dart(0), core.VertexRep(m, d))
	}
	require.Equal(t, core.Dart(0), core.EdgeRep(m, 7))
	require.Equal(t, core.Dart(2), core.EdgeRep(m, 3))
	require.Equal(t, core.Dart(6), core.FaceRep(m, 11))
}

func TestRepPerIncidentOrbit(t *testing.T) {
	m := diagonalMap(t)

	reps := core.RepPerIncidentOrbit(m, 0, core.AlphasEdge, core.AlphasFace)
	require.Equal(t, []core.Dart{0, 2, 4}, sorted(reps))
}

func TestUniqueByOrbit(t *testing.T) {
	m := diagonalMap(t)

	got := core.UniqueByOrbit(m, []core.Dart{7, 0, 3, 2}, core.AlphasEdge)
	require.Equal(t, []core.Dart{7, 3}, got, "first-seen member of each orbit, in input order")
}

func TestOrbit_AfterIncreaseDimension(t *testing.T) {
	m := diagonalMap(t)
	require.NoError(t, m.IncreaseDimension(3))

	// New index is a self-loop everywhere, so every orbit is unchanged.
	require.Equal(t, []core.Dart{0, 1, 2, 3, 4, 5}, sorted(core.Orbit(m, 0, core.AlphasFace)))
	require.Len(t, core.OneDartPerCell(m, 0), 4)
	require.NoError(t, m.Validate())
}
