// Package core: central types for generalized combinatorial maps.
//
// This file declares Dart, the GMap read interface, the DartMap
// explicit realization, sentinel errors, and the NewDartMap / FromAlpha
// constructors. Alpha-subset bitsets live in alphas.go, orbit traversal
// in orbit.go, mutation primitives in dartmap.go and sew.go.
package core

import (
	"errors"
	"fmt"
)

// MaxDimension caps the dimension of any map. Orbit sizes grow
// exponentially with dimension, so 31 (one bit per index in an Alphas
// bitset) is far beyond practical use.
const MaxDimension = 31

// Sentinel errors for core map operations.
var (
	// ErrBadDimension indicates a map dimension unsuitable for the
	// operation: negative at construction, or too low for a shape
	// helper (MakeCube on a 1-map).
	ErrBadDimension = errors.New("core: unsuitable map dimension")

	// ErrDimensionTooLarge indicates a dimension above MaxDimension.
	ErrDimensionTooLarge = errors.New("core: dimension above MaxDimension")

	// ErrDecreaseDimension indicates IncreaseDimension was called with a
	// target below the current dimension; lowering would discard links.
	ErrDecreaseDimension = errors.New("core: cannot decrease dimension")

	// ErrNotFree indicates a link on a dart that is already linked at
	// that index. Silent overwrite would corrupt the involution.
	ErrNotFree = errors.New("core: dart is not free")

	// ErrAlreadyFree indicates an unlink on a dart that is free at that
	// index.
	ErrAlreadyFree = errors.New("core: dart is already free")

	// ErrUnsewable indicates the sew/unsew precondition failed: the two
	// boundary co-orbits do not correspond. The map was not modified.
	ErrUnsewable = errors.New("core: cells are not sewable")

	// ErrBadPolygon indicates MakePolygon was called with n < 1.
	ErrBadPolygon = errors.New("core: polygon needs at least one edge")

	// ErrInvalidStructure indicates a whole-map invariant is broken:
	// wrong alpha slot count, a non-involutive alpha, or two distant
	// alphas that fail to commute.
	ErrInvalidStructure = errors.New("core: invalid map structure")
)

// Dart is the atomic incidence element of a generalized map, identified
// by its stable index in the owning map. The integer order of darts is
// the map's total order; the minimum dart of an orbit is the orbit's
// canonical representative. In coordinate-derived realizations a Dart
// is an encoded coordinate value, so identity is structural and not
// comparable across distinct maps.
type Dart int

// GMap is the minimal read surface of any generalized map realization.
//
// Contract: Darts returns every dart exactly once, in ascending order,
// and Alpha(d, i) is an involution for each i in [0, Dimension()].
// Orbit traversal, cell abstraction and representatives (orbit.go) are
// implemented once against this interface.
type GMap interface {
	// Dimension reports the map-wide dimension d; every dart carries
	// alpha links for indices 0..d.
	Dimension() int

	// Darts returns all darts in ascending (stable) order.
	Darts() []Dart

	// Alpha applies the i-th involution to d. Alpha(d, i) == d means d
	// is free at i. i outside [0, Dimension()] is a programmer error
	// and panics.
	Alpha(d Dart, i int) Dart
}

// DartMap is the explicit mutable realization of GMap: a growable arena
// of darts whose alpha links are stored in one flat slice, indexed as
// dart*(dimension+1)+i. Storing indices instead of pointers keeps the
// cyclic dart graph free of ownership knots and makes the flat
// serialized form (codec package) a direct dump of the arena.
//
// The zero value is not usable; construct with NewDartMap or FromAlpha.
type DartMap struct {
	dimension int
	alpha     []Dart // flat, stride dimension+1
}

// NewDartMap creates an empty map of the given dimension.
// Returns ErrBadDimension or ErrDimensionTooLarge for out-of-range
// dimensions. Complexity: O(1).
func NewDartMap(dimension int) (*DartMap, error) {
	if dimension < 0 {
		return nil, fmt.Errorf("NewDartMap(%d): %w", dimension, ErrBadDimension)
	}
	if dimension > MaxDimension {
		return nil, fmt.Errorf("NewDartMap(%d): %w", dimension, ErrDimensionTooLarge)
	}

	return &DartMap{dimension: dimension}, nil
}

// FromAlpha wires a map directly from a flat alpha slice (stride
// dimension+1, one row per dart) and validates it before returning.
// The slice is copied; the caller keeps ownership of alpha.
// Returns ErrInvalidStructure (wrapped with the failed law) if the
// table does not describe a valid map.
// Complexity: O(|darts|·d²).
func FromAlpha(dimension int, alpha []Dart) (*DartMap, error) {
	if dimension < 0 {
		return nil, fmt.Errorf("FromAlpha(%d): %w", dimension, ErrBadDimension)
	}
	if dimension > MaxDimension {
		return nil, fmt.Errorf("FromAlpha(%d): %w", dimension, ErrDimensionTooLarge)
	}
	m := &DartMap{
		dimension: dimension,
		alpha:     append([]Dart(nil), alpha...),
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("FromAlpha: %w", err)
	}

	return m, nil
}
