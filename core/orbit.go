// Package core: generic orbit traversal over the GMap read interface.
//
// An orbit is the closure of a seed dart under repeated application of
// the indices in an Alphas subset. Everything here is pure reading —
// both DartMap and coordinate-derived realizations get cell
// abstraction, incidence queries and canonical representatives from
// this one file.
package core

// Path records the sequence of alpha indices applied to reach a dart
// from the seed of an orbit traversal, one byte per index. Paths are
// comparable and hashable, which is what makes the sew bijection
// possible: two boundary co-orbits correspond exactly when their path
// sets are equal.
type Path string

// Indices decodes the path back into its alpha-index sequence.
// Complexity: O(len(p)).
func (p Path) Indices() []int {
	out := make([]int, len(p))
	for k := 0; k < len(p); k++ {
		out[k] = int(p[k])
	}

	return out
}

// step extends the path by one applied index.
func (p Path) step(i int) Path {
	return p + Path([]byte{byte(i)})
}

// PathDart pairs a dart with the alpha-index path from the traversal
// seed to the dart.
type PathDart struct {
	Path Path
	Dart Dart
}

// Al applies the given alpha indices to d in sequence.
// Complexity: O(len(indices)).
func Al(g GMap, d Dart, indices ...int) Dart {
	for _, i := range indices {
		d = g.Alpha(d, i)
	}

	return d
}

// OrbitPaths computes the a-orbit of d by breadth-first closure,
// pairing every dart with the path of alpha indices via which it was
// first reached. The seed is always first, with the empty path; every
// dart appears exactly once.
// Complexity: O(|orbit|·|indices|), Memory: O(|orbit|).
func OrbitPaths(g GMap, d Dart, a Alphas) []PathDart {
	indices := a.Indices(g.Dimension())
	seen := make(map[Dart]struct{})
	frontier := []PathDart{{Path: "", Dart: d}}
	var out []PathDart
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if _, ok := seen[cur.Dart]; ok {
			continue
		}
		seen[cur.Dart] = struct{}{}
		out = append(out, cur)
		for _, i := range indices {
			frontier = append(frontier, PathDart{cur.Path.step(i), g.Alpha(cur.Dart, i)})
		}
	}

	return out
}

// Orbit computes the a-orbit of d: the seed first, then every dart
// reachable through the subset's indices, each exactly once.
// Complexity: O(|orbit|·|indices|).
func Orbit(g GMap, d Dart, a Alphas) []Dart {
	steps := OrbitPaths(g, d, a)
	out := make([]Dart, len(steps))
	for k, s := range steps {
		out[k] = s.Dart
	}

	return out
}

// UniqueByOrbit filters l down to one dart per a-orbit, keeping the
// first member of each orbit in l's order.
// Complexity: O(Σ|orbit|·|indices|).
func UniqueByOrbit(g GMap, l []Dart, a Alphas) []Dart {
	seen := make(map[Dart]struct{})
	var out []Dart
	for _, d := range l {
		if _, ok := seen[d]; ok {
			continue
		}
		out = append(out, d)
		for _, n := range Orbit(g, d, a) {
			seen[n] = struct{}{}
		}
	}

	return out
}

// OneDartPerOrbit scans all darts once and returns one dart per
// a-orbit, in first-seen (ascending) order.
// Complexity: O(|darts|·|indices|).
func OneDartPerOrbit(g GMap, a Alphas) []Dart {
	return UniqueByOrbit(g, g.Darts(), a)
}

// OneDartPerCell returns one dart per i-cell, in first-seen order.
// Complexity: O(|darts|·d).
func OneDartPerCell(g GMap, i int) []Dart {
	return OneDartPerOrbit(g, CellAlphas(i))
}

// OneDartPerIncidentOrbit returns one dart per a-orbit incident to d's
// b-orbit. Returned darts are guaranteed to lie in both orbits.
// Complexity: O(|b-orbit|·|a-orbit|).
func OneDartPerIncidentOrbit(g GMap, d Dart, a, b Alphas) []Dart {
	return UniqueByOrbit(g, Orbit(g, d, b), a)
}

// OneDartPerIncidentCell returns one dart per i-cell incident to d's
// j-cell — e.g. OneDartPerIncidentCell(g, d, 1, 2) walks the edges
// bounding d's face.
func OneDartPerIncidentCell(g GMap, d Dart, i, j int) []Dart {
	return OneDartPerIncidentOrbit(g, d, CellAlphas(i), CellAlphas(j))
}

// AllCells groups every dart of the map by i-cell: one slice of member
// darts per distinct cell, cells in first-seen order.
// Complexity: O(|darts|·d).
func AllCells(g GMap, i int) [][]Dart {
	a := CellAlphas(i)
	seen := make(map[Dart]struct{})
	var out [][]Dart
	for _, d := range g.Darts() {
		if _, ok := seen[d]; ok {
			continue
		}
		cell := Orbit(g, d, a)
		for _, n := range cell {
			seen[n] = struct{}{}
		}
		out = append(out, cell)
	}

	return out
}

// Rep returns d's a-rep: the minimum dart of d's a-orbit under the
// map's total order. Two darts of the same orbit always resolve to the
// same rep, regardless of traversal entry point, so the rep is a
// storage-free cell identity.
// Complexity: O(|orbit|·|indices|).
func Rep(g GMap, d Dart, a Alphas) Dart {
	best := d
	for _, n := range Orbit(g, d, a) {
		if n < best {
			best = n
		}
	}

	return best
}

// RepPerOrbit returns the a-rep of each dart in l, one entry per
// distinct a-orbit. Unlike UniqueByOrbit, the emitted dart is the
// canonical rep rather than the first-seen member, so two callers
// reaching the same cell from different darts agree on its identity.
// Complexity: O(Σ|orbit|·|indices|).
func RepPerOrbit(g GMap, l []Dart, a Alphas) []Dart {
	seen := make(map[Dart]struct{})
	var out []Dart
	for _, d := range l {
		if _, ok := seen[d]; ok {
			continue
		}
		best := d
		for _, n := range Orbit(g, d, a) {
			if n < best {
				best = n
			}
			seen[n] = struct{}{}
		}
		out = append(out, best)
	}

	return out
}

// RepPerIncidentOrbit returns the a-rep of each a-orbit incident to
// d's b-orbit — e.g. the canonical edge of every edge bounding a face.
func RepPerIncidentOrbit(g GMap, d Dart, a, b Alphas) []Dart {
	return RepPerOrbit(g, Orbit(g, d, b), a)
}

// VertexRep returns the canonical identity of d's vertex.
func VertexRep(g GMap, d Dart) Dart { return Rep(g, d, AlphasVertex) }

// EdgeRep returns the canonical identity of d's edge.
func EdgeRep(g GMap, d Dart) Dart { return Rep(g, d, AlphasEdge) }

// FaceRep returns the canonical identity of d's face.
func FaceRep(g GMap, d Dart) Dart { return Rep(g, d, AlphasFace) }
