// Package core: the sew/unsew protocol.
//
// Sewing glues two i-cells of the same map along index i. The boundary
// shape of each side is its co-orbit: the orbit under every index at
// distance greater than one from i (alpha_{i-1} and alpha_{i+1} must
// stay out, since they are rewritten by the glue; at i=0 or i=d only
// the normal bounds apply). Two boundaries correspond exactly when
// their co-orbits have equal path-key sets, which also yields the
// dart-to-dart bijection to link.
package core

import "fmt"

// SewnPair records one dart pair linked by Sew or separated by Unsew.
type SewnPair struct {
	Left  Dart
	Right Dart
}

// coOrbitAlphas selects every index of [0, dim] at distance > 1 from i.
func coOrbitAlphas(i, dim int) Alphas {
	var a Alphas
	for j := 0; j <= dim; j++ {
		if j < i-1 || j > i+1 {
			a |= Alphas(uint32(1) << j)
		}
	}

	return a
}

// checkAlphaIndex panics on an alpha index outside [0, dim];
// mirroring Alpha, an out-of-range index is a programmer error.
func (m *DartMap) checkAlphaIndex(op string, i int) {
	if i < 0 || i > m.dimension {
		panic(fmt.Sprintf("core: %s index %d out of range [0,%d]", op, i, m.dimension))
	}
}

// Sew glues the i-cell at d0 to the i-cell at d1. The two boundary
// co-orbits must have identical path-key sets, be disjoint, and be
// entirely free at i; the whole precondition is checked before any
// mutation, so a failed sew leaves both fragments byte-for-byte
// unchanged (ErrUnsewable). On success every matched pair is linked at
// i and the full pair list is returned, in d0's traversal order — the
// correspondence consumed by OrbitDict.ResolveSew.
// Complexity: O(|co-orbit|·d).
func (m *DartMap) Sew(i int, d0, d1 Dart) ([]SewnPair, error) {
	m.checkAlphaIndex("Sew", i)
	a := coOrbitAlphas(i, m.dimension)

	side0 := OrbitPaths(m, d0, a)
	side1 := OrbitPaths(m, d1, a)
	if len(side0) != len(side1) {
		return nil, fmt.Errorf("Sew(%d, %d, %d): boundary sizes %d and %d: %w",
			i, d0, d1, len(side0), len(side1), ErrUnsewable)
	}
	byPath := make(map[Path]Dart, len(side1))
	other := make(map[Dart]struct{}, len(side1))
	for _, s := range side1 {
		byPath[s.Path] = s.Dart
		other[s.Dart] = struct{}{}
	}

	// Full precondition pass: matching keys, disjoint sides, all free at i.
	pairs := make([]SewnPair, 0, len(side0))
	for _, s := range side0 {
		partner, ok := byPath[s.Path]
		if !ok {
			return nil, fmt.Errorf("Sew(%d, %d, %d): boundary shapes differ at path %v: %w",
				i, d0, d1, s.Path.Indices(), ErrUnsewable)
		}
		if _, overlap := other[s.Dart]; overlap {
			return nil, fmt.Errorf("Sew(%d, %d, %d): cells share dart %d: %w",
				i, d0, d1, s.Dart, ErrUnsewable)
		}
		if !m.IsFree(s.Dart, i) || !m.IsFree(partner, i) {
			return nil, fmt.Errorf("Sew(%d, %d, %d): dart pair (%d, %d) not free at %d: %w",
				i, d0, d1, s.Dart, partner, i, ErrUnsewable)
		}
		pairs = append(pairs, SewnPair{Left: s.Dart, Right: partner})
	}

	for _, p := range pairs {
		// Freeness was established above; link cannot fail here.
		_ = m.link(i, p.Left, p.Right)
	}

	return pairs, nil
}

// Unsew separates the pair of i-cells glued at d, unlinking every dart
// of d's boundary co-orbit at index i, and returns the full list of
// separated pairs. Fails with ErrAlreadyFree if any co-orbit dart is
// free at i, and with ErrUnsewable if both glued sides share one
// co-orbit (unlinking would tear the same pairs twice); either failure
// leaves the map unchanged.
// Complexity: O(|co-orbit|·d).
func (m *DartMap) Unsew(i int, d Dart) ([]SewnPair, error) {
	m.checkAlphaIndex("Unsew", i)
	a := coOrbitAlphas(i, m.dimension)

	side := Orbit(m, d, a)
	inSide := make(map[Dart]struct{}, len(side))
	for _, d0 := range side {
		inSide[d0] = struct{}{}
	}
	pairs := make([]SewnPair, 0, len(side))
	for _, d0 := range side {
		d1 := m.Alpha(d0, i)
		if d1 == d0 {
			return nil, fmt.Errorf("Unsew(%d, %d): dart %d: %w", i, d, d0, ErrAlreadyFree)
		}
		if _, ok := inSide[d1]; ok {
			return nil, fmt.Errorf("Unsew(%d, %d): both sides share one co-orbit: %w",
				i, d, ErrUnsewable)
		}
		pairs = append(pairs, SewnPair{Left: d0, Right: d1})
	}

	for _, p := range pairs {
		// Every left dart was verified non-free at i; unlink cannot fail.
		_, _ = m.unlink(i, p.Left)
	}

	return pairs, nil
}
