package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmap/core"
)

// alphaSnapshot captures every alpha link of m for before/after
// comparison around operations that must not mutate on failure.
func alphaSnapshot(m *core.DartMap) []core.Dart {
	var out []core.Dart
	for _, d := range m.Darts() {
		for i := 0; i <= m.Dimension(); i++ {
			out = append(out, m.Alpha(d, i))
		}
	}

	return out
}

func TestSew_Surface(t *testing.T) {
	m := diagonalMap(t)

	// Darts 2 and 4 are already linked at 1.
	_, err := m.Sew(1, 2, 4)
	require.ErrorIs(t, err, core.ErrUnsewable)

	// Darts 2 and 3 share an edge, so the two sides overlap.
	_, err = m.Sew(2, 2, 3)
	require.ErrorIs(t, err, core.ErrUnsewable)
	require.True(t, m.IsFree(2, 2), "failed sew must not link anything")

	// Glue the diagonal: edge {2,3} onto edge {10,11}.
	pairs, err := m.Sew(2, 2, 10)
	require.NoError(t, err)
	require.Equal(t, []core.SewnPair{{Left: 2, Right: 10}, {Left: 3, Right: 11}}, pairs)
	require.Equal(t, core.Dart(10), m.Alpha(2, 2))
	require.Equal(t, core.Dart(11), m.Alpha(3, 2))
	require.NoError(t, m.Validate())
}

func TestSew_Volume(t *testing.T) {
	m, err := core.NewDartMap(3)
	require.NoError(t, err)

	x := m.MakeEdge()
	y, z := m.CreateDart(), m.CreateDart()

	_, err = m.Sew(1, y, z)
	require.NoError(t, err)

	// x's boundary under {alpha_0, alpha_1} is an edge, y's is a vertex
	// pair; same size, different path shapes.
	_, err = m.Sew(3, x, y)
	require.ErrorIs(t, err, core.ErrUnsewable)
	require.True(t, m.IsFree(x, 3))

	w := m.CreateDart()
	_, err = m.Sew(1, x, w)
	require.NoError(t, err)
	v := m.CreateDart()
	_, err = m.Sew(0, y, v)
	require.NoError(t, err)

	// Both boundaries now walk "", alpha_0, alpha_1.
	pairs, err := m.Sew(3, x, y)
	require.NoError(t, err)
	require.Equal(t, []core.SewnPair{{Left: 0, Right: 2}, {Left: 1, Right: 5}, {Left: 4, Right: 3}}, pairs)
	require.False(t, m.IsFree(x, 3))
	require.NoError(t, m.Validate())
}

func TestSew_MismatchedBoundariesAtomic(t *testing.T) {
	m, err := core.NewDartMap(3)
	require.NoError(t, err)
	square, err := m.MakePolygon(4)
	require.NoError(t, err)
	hexagon, err := m.MakePolygon(6)
	require.NoError(t, err)
	before := alphaSnapshot(m)

	// An 8-dart face boundary against a 12-dart one.
	_, err = m.Sew(3, square, hexagon)
	require.ErrorIs(t, err, core.ErrUnsewable)
	require.Equal(t, before, alphaSnapshot(m), "failed sew must leave both fragments untouched")
	require.NoError(t, m.Validate())
}

func TestSew_PanicsOnBadIndex(t *testing.T) {
	m, _ := core.NewDartMap(2)
	d0, d1 := m.CreateDart(), m.CreateDart()

	require.Panics(t, func() { _, _ = m.Sew(3, d0, d1) })
}

func TestUnsew(t *testing.T) {
	m := diagonalMap(t)

	// Dart 2 is free at 2.
	_, err := m.Unsew(2, 2)
	require.ErrorIs(t, err, core.ErrAlreadyFree)

	// An index-1 boundary is a single dart.
	pairs, err := m.Unsew(1, 2)
	require.NoError(t, err)
	require.Equal(t, []core.SewnPair{{Left: 2, Right: 1}}, pairs)
	require.True(t, m.IsFree(2, 1))
	require.True(t, m.IsFree(1, 1))
	require.NoError(t, m.Validate())
}

func TestUnsew_Boundaries(t *testing.T) {
	m := diagonalMap(t)

	// Separating at 0 walks the boundary under alpha_2.
	pairs, err := m.Unsew(0, 0)
	require.NoError(t, err)
	require.Equal(t, []core.SewnPair{{Left: 0, Right: 1}, {Left: 7, Right: 6}}, pairs)
	for _, d := range []core.Dart{0, 1, 6, 7} {
		require.True(t, m.IsFree(d, 0))
		require.False(t, m.IsFree(d, 2), "index 2 must stay linked")
	}
	require.NoError(t, m.Validate())

	m = diagonalMap(t)
	pairs, err = m.Unsew(2, 0)
	require.NoError(t, err)
	require.Equal(t, []core.SewnPair{{Left: 0, Right: 7}, {Left: 1, Right: 6}}, pairs)
	for _, d := range []core.Dart{0, 1, 6, 7} {
		require.True(t, m.IsFree(d, 2))
		require.False(t, m.IsFree(d, 0))
	}
	require.NoError(t, m.Validate())
}

func TestUnsew_SharedCoOrbit(t *testing.T) {
	// Two darts forming one edge whose both 2-sides are the same
	// co-orbit; tearing it apart would unlink each pair twice.
	m, err := core.FromAlpha(2, []core.Dart{
		1, 0, 1,
		0, 1, 0,
	})
	require.NoError(t, err)

	_, err = m.Unsew(2, 0)
	require.ErrorIs(t, err, core.ErrUnsewable)
	require.False(t, m.IsFree(0, 2), "failed unsew must not unlink anything")
}

func TestSewUnsew_Inverse(t *testing.T) {
	m, err := core.NewDartMap(2)
	require.NoError(t, err)
	a, err := m.MakePolygon(4)
	require.NoError(t, err)
	b, err := m.MakePolygon(4)
	require.NoError(t, err)
	before := alphaSnapshot(m)

	sewn, err := m.Sew(2, a, b)
	require.NoError(t, err)
	require.Len(t, sewn, 2)

	torn, err := m.Unsew(2, a)
	require.NoError(t, err)
	require.Len(t, torn, 2)
	require.Equal(t, before, alphaSnapshot(m), "unsew must invert the sew exactly")
	require.NoError(t, m.Validate())
}
