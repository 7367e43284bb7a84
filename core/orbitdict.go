// Package core: per-cell associative storage.
//
// OrbitDict writes through whole orbits, so a value set via any member
// dart of a cell is readable through every other member in O(1).
// OrbitReprs is the representative-keyed alternative: it caches the
// canonical rep of every dart once and lets many dictionaries share
// one orbit scan.
package core

import "sort"

// OrbitDict is an external map from cells to values, keyed by member
// darts. Setting through any dart of a cell stores the value under the
// whole orbit; deletion is symmetric. Values use interface{} so one
// dictionary can carry clues, labels or arbitrary annotations.
//
// The dictionary references its map only during Set/Delete/Darts, so
// one OrbitDict may outlive several topology edits — after a Sew, call
// ResolveSew with the returned pair list to reconcile values keyed
// under the pre-sew topology.
type OrbitDict struct {
	indices Alphas
	values  map[Dart]interface{}
}

// NewOrbitDict creates an empty dictionary over a-orbits.
func NewOrbitDict(a Alphas) *OrbitDict {
	return &OrbitDict{indices: a, values: make(map[Dart]interface{})}
}

// NewCellDict creates an empty dictionary over i-cells.
func NewCellDict(i int) *OrbitDict {
	return NewOrbitDict(CellAlphas(i))
}

// RestoreOrbitDict wires a dictionary directly from raw per-dart
// entries, as produced by the codec package. The map is not copied.
func RestoreOrbitDict(a Alphas, values map[Dart]interface{}) *OrbitDict {
	if values == nil {
		values = make(map[Dart]interface{})
	}

	return &OrbitDict{indices: a, values: values}
}

// Indices returns the alpha subset whose orbits key this dictionary.
func (od *OrbitDict) Indices() Alphas {
	return od.indices
}

// Get reads the value stored for d's orbit. Complexity: O(1).
func (od *OrbitDict) Get(d Dart) (interface{}, bool) {
	v, ok := od.values[d]

	return v, ok
}

// Set stores v for the whole orbit of d: afterwards every member dart
// of the cell reads v. Complexity: O(|orbit|·|indices|).
func (od *OrbitDict) Set(g GMap, d Dart, v interface{}) {
	for _, n := range Orbit(g, d, od.indices) {
		od.values[n] = v
	}
}

// Delete removes the value stored for the whole orbit of d.
// Complexity: O(|orbit|·|indices|).
func (od *OrbitDict) Delete(g GMap, d Dart) {
	for _, n := range Orbit(g, d, od.indices) {
		delete(od.values, n)
	}
}

// Darts returns one dart per distinct stored orbit, in ascending order.
// Complexity: O(|entries|·log + Σ|orbit|).
func (od *OrbitDict) Darts(g GMap) []Dart {
	keys := make([]Dart, 0, len(od.values))
	for d := range od.values {
		keys = append(keys, d)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })

	return UniqueByOrbit(g, keys, od.indices)
}

// InternalValues exposes the raw per-dart entry map. It is the live
// map, not a copy; intended for serialization and read-only scans.
func (od *OrbitDict) InternalValues() map[Dart]interface{} {
	return od.values
}

// ResolveSew reconciles the dictionary after a sew, given the pair
// list Sew returned. For each linked pair holding two values, merge
// combines them (nil merge keeps the left value); a value held on one
// side only is propagated to the other; pairs with no values are
// untouched. Callers never need to track which darts a sew affected.
// Complexity: O(len(pairs)).
func (od *OrbitDict) ResolveSew(pairs []SewnPair, merge func(left, right interface{}) interface{}) {
	if merge == nil {
		merge = func(left, _ interface{}) interface{} { return left }
	}
	for _, p := range pairs {
		lv, lok := od.values[p.Left]
		rv, rok := od.values[p.Right]
		switch {
		case lok && rok:
			v := merge(lv, rv)
			od.values[p.Left] = v
			od.values[p.Right] = v
		case lok:
			od.values[p.Right] = lv
		case rok:
			od.values[p.Left] = rv
		}
	}
}

// OrbitReprs caches, per alpha subset, the canonical representative of
// every dart's orbit. One Build pays a full orbit scan; afterwards any
// number of rep lookups (and rep-keyed maps built on top) are O(1).
// The cache is a snapshot: rebuild after topology edits.
type OrbitReprs struct {
	reprs map[Alphas][]Dart
}

// NewOrbitReprs creates an empty representative cache.
func NewOrbitReprs() *OrbitReprs {
	return &OrbitReprs{reprs: make(map[Alphas][]Dart)}
}

// Build (re)computes the representative table for a-orbits: one full
// scan assigning every dart the minimum dart of its orbit.
// Complexity: O(|darts|·|indices|).
func (r *OrbitReprs) Build(g GMap, a Alphas) {
	darts := g.Darts()
	size := 0
	if n := len(darts); n > 0 {
		size = int(darts[n-1]) + 1
	}
	table := make([]Dart, size)
	seen := make(map[Dart]struct{}, size)
	for _, d := range darts {
		if _, ok := seen[d]; ok {
			continue
		}
		orbit := Orbit(g, d, a)
		best := d
		for _, n := range orbit {
			if n < best {
				best = n
			}
		}
		for _, n := range orbit {
			seen[n] = struct{}{}
			table[int(n)] = best
		}
	}
	r.reprs[a] = table
}

// Get returns the cached a-rep of d, or false when a was never built.
// Complexity: O(1).
func (r *OrbitReprs) Get(a Alphas, d Dart) (Dart, bool) {
	table, ok := r.reprs[a]
	if !ok {
		return 0, false
	}

	return table[int(d)], true
}

// GetOrSearch returns the a-rep of d from the cache, falling back to a
// direct orbit search when a was never built.
func (r *OrbitReprs) GetOrSearch(g GMap, a Alphas, d Dart) Dart {
	if rep, ok := r.Get(a, d); ok {
		return rep
	}

	return Rep(g, d, a)
}

// All returns the whole representative table for a (indexed by dart),
// or nil when a was never built.
func (r *OrbitReprs) All(a Alphas) []Dart {
	return r.reprs[a]
}

// EnsureAll returns the representative table for a, building it first
// if needed.
func (r *OrbitReprs) EnsureAll(g GMap, a Alphas) []Dart {
	if _, ok := r.reprs[a]; !ok {
		r.Build(g, a)
	}

	return r.reprs[a]
}
