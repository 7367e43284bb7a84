// Package core: DartMap mutation primitives and the validity checker.
//
// link and unlink are the only two functions that ever touch alpha
// slots; each performs exactly one symmetric pair of writes guarded by
// a freeness check, so no half-linked state is ever observable.
package core

import "fmt"

// Dimension reports the map-wide dimension. Complexity: O(1).
func (m *DartMap) Dimension() int {
	return m.dimension
}

// NDarts reports the number of darts. Complexity: O(1).
func (m *DartMap) NDarts() int {
	return len(m.alpha) / (m.dimension + 1)
}

// Darts returns all darts in ascending order. Complexity: O(|darts|).
func (m *DartMap) Darts() []Dart {
	out := make([]Dart, m.NDarts())
	for k := range out {
		out[k] = Dart(k)
	}

	return out
}

// Alpha applies the i-th involution to d. Complexity: O(1).
func (m *DartMap) Alpha(d Dart, i int) Dart {
	if i < 0 || i > m.dimension {
		panic(fmt.Sprintf("core: alpha index %d out of range [0,%d]", i, m.dimension))
	}

	return m.alpha[int(d)*(m.dimension+1)+i]
}

// slot returns the flat index of alpha_i(d).
func (m *DartMap) slot(d Dart, i int) int {
	return int(d)*(m.dimension+1) + i
}

// IsFree reports whether d is free at index i, i.e. alpha_i(d) == d.
// Complexity: O(1).
func (m *DartMap) IsFree(d Dart, i int) bool {
	return m.Alpha(d, i) == d
}

// CreateDart appends a fresh dart, free at every index, and returns it.
// Complexity: O(d) amortized.
func (m *DartMap) CreateDart() Dart {
	d := Dart(m.NDarts())
	for i := 0; i <= m.dimension; i++ {
		m.alpha = append(m.alpha, d)
	}

	return d
}

// IncreaseDimension grows the map to dimension dim, extending every
// dart's alpha row with self-loops. Growth only: a target below the
// current dimension returns ErrDecreaseDimension, above MaxDimension
// returns ErrDimensionTooLarge.
// Complexity: O(|darts|·dim).
func (m *DartMap) IncreaseDimension(dim int) error {
	if dim < m.dimension {
		return fmt.Errorf("IncreaseDimension(%d) on dimension %d: %w", dim, m.dimension, ErrDecreaseDimension)
	}
	if dim > MaxDimension {
		return fmt.Errorf("IncreaseDimension(%d): %w", dim, ErrDimensionTooLarge)
	}
	n := m.NDarts()
	next := make([]Dart, 0, n*(dim+1))
	for d := 0; d < n; d++ {
		next = append(next, m.alpha[d*(m.dimension+1):(d+1)*(m.dimension+1)]...)
		for i := m.dimension + 1; i <= dim; i++ {
			next = append(next, Dart(d))
		}
	}
	m.alpha = next
	m.dimension = dim

	return nil
}

// link makes d0 and d1 each other's alpha_i image. Both darts must be
// free at i; otherwise ErrNotFree and no mutation. The pair is an
// involution by construction — two symmetric writes, no traversal.
func (m *DartMap) link(i int, d0, d1 Dart) error {
	if !m.IsFree(d0, i) || !m.IsFree(d1, i) {
		return fmt.Errorf("link(%d, %d, %d): %w", i, d0, d1, ErrNotFree)
	}
	m.alpha[m.slot(d0, i)] = d1
	m.alpha[m.slot(d1, i)] = d0

	return nil
}

// unlink restores d0 and its alpha_i partner to self-loops and returns
// the partner. Fails with ErrAlreadyFree if d0 is free at i.
func (m *DartMap) unlink(i int, d0 Dart) (Dart, error) {
	d1 := m.Alpha(d0, i)
	if d0 == d1 {
		return 0, fmt.Errorf("unlink(%d, %d): %w", i, d0, ErrAlreadyFree)
	}
	m.alpha[m.slot(d0, i)] = d0
	m.alpha[m.slot(d1, i)] = d1

	return d1, nil
}

// Validate runs the whole-map invariant check: every dart has exactly
// dimension+1 alpha slots referencing existing darts, every alpha_i is
// an involution, and alpha_i commutes with alpha_j whenever |i-j| >= 2.
// A violation returns ErrInvalidStructure wrapped with the failed law
// and indices; a map that fails Validate can no longer be trusted.
//
// Sew and Unsew preserve validity when their preconditions hold, so
// this is mandatory only after deserialization; it stays exported for
// direct use in tests and tools.
// Complexity: O(|darts|·d²).
func (m *DartMap) Validate() error {
	stride := m.dimension + 1
	if len(m.alpha)%stride != 0 {
		return fmt.Errorf("%w: alpha table length %d is not a multiple of %d",
			ErrInvalidStructure, len(m.alpha), stride)
	}
	n := m.NDarts()
	for d := 0; d < n; d++ {
		for i := 0; i <= m.dimension; i++ {
			if a := m.alpha[d*stride+i]; a < 0 || int(a) >= n {
				return fmt.Errorf("%w: dart %d alpha_%d references missing dart %d",
					ErrInvalidStructure, d, i, a)
			}
		}
	}

	for i := 0; i <= m.dimension; i++ {
		for d := 0; d < n; d++ {
			if m.Alpha(m.Alpha(Dart(d), i), i) != Dart(d) {
				return fmt.Errorf("%w: alpha_%d is not an involution at dart %d",
					ErrInvalidStructure, i, d)
			}
		}
	}

	for i := 0; i <= m.dimension-2; i++ {
		for j := i + 2; j <= m.dimension; j++ {
			for d := 0; d < n; d++ {
				if Al(m, Dart(d), i, j) != Al(m, Dart(d), j, i) {
					return fmt.Errorf("%w: alpha_%d and alpha_%d do not commute at dart %d",
						ErrInvalidStructure, i, j, d)
				}
			}
		}
	}

	return nil
}
