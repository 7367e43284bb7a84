package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmap/core"
)

func TestOrbitDict_SetGet(t *testing.T) {
	m := diagonalMap(t)
	labels := core.NewCellDict(0)

	labels.Set(m, 5, "corner")
	// Every member of dart 5's vertex reads the value.
	for _, d := range []core.Dart{0, 5, 7, 8} {
		v, ok := labels.Get(d)
		require.True(t, ok, "dart %d", d)
		require.Equal(t, "corner", v)
	}
	// Darts outside the vertex read nothing.
	_, ok := labels.Get(1)
	require.False(t, ok)

	require.Equal(t, []core.Dart{0}, labels.Darts(m))
	require.Equal(t, core.AlphasVertex, labels.Indices())
}

func TestOrbitDict_Overwrite(t *testing.T) {
	m := diagonalMap(t)
	labels := core.NewCellDict(2)

	labels.Set(m, 0, 1)
	labels.Set(m, 3, 2) // same face, entered elsewhere
	v, _ := labels.Get(5)
	require.Equal(t, 2, v)
}

func TestOrbitDict_Delete(t *testing.T) {
	m := diagonalMap(t)
	labels := core.NewCellDict(1)
	labels.Set(m, 0, "glued")
	labels.Set(m, 2, "cut")

	labels.Delete(m, 7) // same edge as dart 0
	_, ok := labels.Get(0)
	require.False(t, ok)
	v, ok := labels.Get(3)
	require.True(t, ok)
	require.Equal(t, "cut", v)
	require.Equal(t, []core.Dart{2}, labels.Darts(m))
}

func TestOrbitDict_ResolveSew(t *testing.T) {
	m := diagonalMap(t)
	labels := core.NewCellDict(1)
	labels.Set(m, 2, 10)
	labels.Set(m, 10, 32)

	pairs, err := m.Sew(2, 2, 10)
	require.NoError(t, err)
	labels.ResolveSew(pairs, nil)

	// Default merge keeps the left side on the whole glued edge.
	for _, d := range []core.Dart{2, 3, 10, 11} {
		v, ok := labels.Get(d)
		require.True(t, ok, "dart %d", d)
		require.Equal(t, 10, v)
	}
}

func TestOrbitDict_ResolveSewMerge(t *testing.T) {
	m := diagonalMap(t)
	weights := core.NewCellDict(1)
	weights.Set(m, 2, 10)
	weights.Set(m, 10, 32)

	pairs, err := m.Sew(2, 2, 10)
	require.NoError(t, err)
	weights.ResolveSew(pairs, func(left, right interface{}) interface{} {
		return left.(int) + right.(int)
	})

	v, _ := weights.Get(11)
	require.Equal(t, 42, v)
}

func TestOrbitDict_ResolveSewPropagates(t *testing.T) {
	m := diagonalMap(t)
	labels := core.NewCellDict(1)
	labels.Set(m, 10, "diagonal") // value on the right side only

	pairs, err := m.Sew(2, 2, 10)
	require.NoError(t, err)
	labels.ResolveSew(pairs, nil)

	v, ok := labels.Get(3)
	require.True(t, ok)
	require.Equal(t, "diagonal", v)
}

func TestRestoreOrbitDict(t *testing.T) {
	m := diagonalMap(t)
	od := core.RestoreOrbitDict(core.AlphasVertex, map[core.Dart]interface{}{
		0: "a", 5: "a", 7: "a", 8: "a",
	})

	v, ok := od.Get(7)
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, []core.Dart{0}, od.Darts(m))
	require.Len(t, od.InternalValues(), 4)
}

func TestOrbitReprs(t *testing.T) {
	m := diagonalMap(t)
	r := core.NewOrbitReprs()

	_, ok := r.Get(core.AlphasVertex, 5)
	require.False(t, ok, "lookup before Build")
	require.Nil(t, r.All(core.AlphasVertex))
	// GetOrSearch falls back to a direct orbit walk.
	require.Equal(t, core.Dart(0), r.GetOrSearch(m, core.AlphasVertex, 8))

	r.Build(m, core.AlphasVertex)
	for _, d := range []core.Dart{0, 5, 7, 8} {
		rep, ok := r.Get(core.AlphasVertex, d)
		require.True(t, ok)
		require.Equal(t, core.Dart(0), rep)
	}
	rep, _ := r.Get(core.AlphasVertex, 9)
	require.Equal(t, core.Dart(9), rep)

	table := r.EnsureAll(m, core.AlphasFace)
	require.Len(t, table, m.NDarts())
	require.Equal(t, core.Dart(0), table[4])
	require.Equal(t, core.Dart(6), table[11])
}
