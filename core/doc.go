// Package core implements generalized combinatorial maps: darts linked
// by d+1 involutive alpha permutations, generic orbit traversal, cell
// abstraction, sewing, and per-cell dictionaries.
//
// What:
//
//   - Dart: atomic incidence element, identified by a stable integer.
//   - Alphas: immutable bitset selecting a family of alpha indices.
//   - GMap: minimal read surface (Dimension, Darts, Alpha) shared by the
//     explicit DartMap and coordinate-derived realizations such as
//     grid.Grid; all orbit/cell/representative logic is written once
//     against this interface.
//   - DartMap: explicit mutable realization — a growable arena of darts
//     whose alpha links are stored in a flat slice and mutated by
//     CreateDart, Sew, Unsew and the Make* shape helpers.
//   - OrbitDict: external per-cell map whose values propagate through
//     whole orbits and survive sewing via ResolveSew.
//   - OrbitReprs: cached canonical representatives for O(1) repeated
//     cell-identity queries.
//
// Why:
//
//   - Meshes, grids and puzzle boards: one structure covers vertices,
//     edges, faces and volumes at any dimension.
//   - Safe incremental edits: Sew checks its whole precondition before
//     mutating anything, so a failed glue never corrupts the map.
//   - Storage-free cell identity: the minimum dart of an orbit names the
//     cell, regardless of where traversal entered it.
//
// Complexity:
//
//   - Alpha / link / unlink:      O(1).
//   - OrbitPaths / Orbit:         O(|orbit|·|indices|), Memory: O(|orbit|).
//   - Sew / Unsew:                O(|co-orbit|·d).
//   - Validate:                   O(|darts|·d²).
//   - OneDartPerOrbit / AllCells: O(|darts|·d).
//
// Errors:
//
//   - ErrBadDimension: negative map dimension, or a dimension too low
//     for a shape helper.
//   - ErrDimensionTooLarge: dimension above MaxDimension.
//   - ErrDecreaseDimension: IncreaseDimension below current dimension.
//   - ErrNotFree: link attempted on a dart already linked at that index.
//   - ErrAlreadyFree: unlink attempted on an unlinked dart.
//   - ErrUnsewable: sew/unsew precondition failed; map left untouched.
//   - ErrBadPolygon: MakePolygon with fewer than one edge.
//   - ErrInvalidStructure: Validate found a broken involution or
//     commutation law; the map can no longer be trusted.
//
// All mutating operations are synchronous and single-owner; the package
// performs no locking. Darts are never deleted, so references held in
// OrbitDict values or by external consumers stay valid for the whole
// lifetime of a map.
package core
