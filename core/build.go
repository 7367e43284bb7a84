// Package core: construction helpers for common shapes.
//
// All helpers grow the map monotonically — fresh darts, then links or
// sews. The returned dart is a handle into the new shape; walk it with
// Al or Orbit.
package core

import "fmt"

// MakeEdge creates one edge: two fresh darts 0-linked to each other.
// Returns the lower-numbered dart. Complexity: O(d).
func (m *DartMap) MakeEdge() Dart {
	d0 := m.CreateDart()
	d1 := m.CreateDart()
	// Both darts are fresh, hence free at 0; link cannot fail.
	_ = m.link(0, d0, d1)

	return d0
}

// MakePolygon creates an n-sided polygon: n edges 1-linked into a
// cycle of 2n darts. Returns the first dart of the first edge, or
// ErrBadPolygon when n < 1. Complexity: O(n·d).
func (m *DartMap) MakePolygon(n int) (Dart, error) {
	if n < 1 {
		return 0, fmt.Errorf("MakePolygon(%d): %w", n, ErrBadPolygon)
	}
	start := m.MakeEdge()
	prev := m.Alpha(start, 0)
	for k := 1; k < n; k++ {
		c := m.MakeEdge()
		_ = m.link(1, c, prev)
		prev = m.Alpha(c, 0)
	}
	_ = m.link(1, start, prev)

	return start, nil
}

// MakeTetrahedron creates four triangles and sews them into a closed
// tetrahedron: 24 darts, 4 vertices, 6 edges, 4 faces. The map must
// have dimension at least 2. Returns a dart of the first face.
// Complexity: O(d).
func (m *DartMap) MakeTetrahedron() (Dart, error) {
	if m.dimension < 2 {
		return 0, fmt.Errorf("MakeTetrahedron on dimension %d: %w", m.dimension, ErrBadDimension)
	}
	faces := make([]Dart, 4)
	for k := range faces {
		d, err := m.MakePolygon(3)
		if err != nil {
			return 0, fmt.Errorf("MakeTetrahedron: %w", err)
		}
		faces[k] = d
	}
	d0, d1, d2, d3 := faces[0], faces[1], faces[2], faces[3]

	sews := []struct{ left, right Dart }{
		{d0, d1},
		{Al(m, d0, 0, 1), d2},
		{Al(m, d0, 1, 0), d3},
		{Al(m, d1, 0, 1), Al(m, d2, 1)},
		{Al(m, d2, 0, 1), Al(m, d3, 1)},
		{Al(m, d3, 0, 1), Al(m, d1, 1)},
	}
	for _, s := range sews {
		if _, err := m.Sew(2, s.left, s.right); err != nil {
			return 0, fmt.Errorf("MakeTetrahedron: %w", err)
		}
	}

	return d0, nil
}

// MakeCube creates six squares and sews them into a closed cube:
// 48 darts, 8 vertices, 12 edges, 6 faces. The map must have dimension
// at least 2. Returns a dart of the bottom face.
// Complexity: O(d).
func (m *DartMap) MakeCube() (Dart, error) {
	if m.dimension < 2 {
		return 0, fmt.Errorf("MakeCube on dimension %d: %w", m.dimension, ErrBadDimension)
	}
	bottom, err := m.MakePolygon(4)
	if err != nil {
		return 0, fmt.Errorf("MakeCube: %w", err)
	}
	top, err := m.MakePolygon(4)
	if err != nil {
		return 0, fmt.Errorf("MakeCube: %w", err)
	}
	sides := make([]Dart, 4)
	for k := range sides {
		if sides[k], err = m.MakePolygon(4); err != nil {
			return 0, fmt.Errorf("MakeCube: %w", err)
		}
	}

	b, t := bottom, top
	for _, s := range sides {
		if _, err = m.Sew(2, b, s); err != nil {
			return 0, fmt.Errorf("MakeCube: %w", err)
		}
		b = Al(m, b, 0, 1)
		if _, err = m.Sew(2, t, Al(m, s, 1, 0, 1)); err != nil {
			return 0, fmt.Errorf("MakeCube: %w", err)
		}
		t = Al(m, t, 0, 1)
	}

	for k, s0 := range sides {
		s1 := sides[(k+1)%len(sides)]
		if _, err = m.Sew(2, Al(m, s0, 0, 1), Al(m, s1, 1)); err != nil {
			return 0, fmt.Errorf("MakeCube: %w", err)
		}
	}

	return bottom, nil
}
