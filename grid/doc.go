// Package grid provides grid-shaped generalized maps in two
// interchangeable realizations.
//
// What:
//
//   - Grid: a procedural n×m square grid implementing core.GMap with no
//     stored links. Darts are encoded coordinate values (square × one
//     of 8 corners) and every alpha is computed arithmetically, so the
//     map is always structurally valid and never needs checking.
//   - NewSquareMap / NewHexMap: explicit core.DartMap grids assembled
//     from polygons and Sew — the mutable counterparts, for callers who
//     need to keep editing the topology afterwards.
//   - Position helpers: face/vertex/edge locations in grid coordinates
//     (edges in doubled coordinates), and canonical cell lookups by
//     coordinate (EdgeTop, VertexAt, …) — the surface a renderer uses
//     to place per-cell annotations.
//
// Dart layout of one square (corner index inside the square):
//
//	    ·0──1·
//	    7    2
//	    6    3
//	    ·5──4·
//
//	alpha_0 flips within a side (0↔1, 2↔3, 4↔5, 6↔7),
//	alpha_1 pivots around a corner (1↔2, 3↔4, 5↔6, 7↔0),
//	alpha_2 crosses into the neighboring square, or is free on the rim.
//
// Rows increase from north to south, columns from west to east.
//
// Complexity:
//
//   - Alpha, all Loc helpers: O(1).
//   - Darts: O(n·m).
//   - NewSquareMap / NewHexMap: O(n·m) sews.
//
// Errors:
//
//   - ErrEmptyGrid: fewer than one row or one column requested.
//   - ErrOutOfBounds: coordinate lookup outside the grid.
package grid
