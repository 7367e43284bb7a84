// Package gmap is an in-memory toolkit for generalized combinatorial
// maps — cell complexes (vertices, edges, faces, volumes, …) described
// purely by "darts" and d+1 involutive alpha links.
//
// 🚀 What is gmap?
//
//	A pure-Go library that brings together:
//		• Core primitives: darts, alpha involutions, atomic link/unlink
//		• Orbit traversal: generic closure over any alpha subset
//		• Cells: vertices/edges/faces as orbits, canonical representatives
//		• Sewing: boundary-matched, all-or-nothing gluing of i-cells
//		• OrbitDict: per-cell annotations that survive topology edits
//		• Grids: a procedural square grid plus sewn square/hex builders
//		• Codec & store: flat JSON round-trip and SQLite persistence
//
// ✨ Why choose gmap?
//
//   - Algebra first – every mutation preserves the involution and
//     commutation laws, or fails before touching the map
//   - Stable identity – darts are never deleted; cell representatives
//     stay valid for the whole lifetime of a map
//   - Pure Go library core – no cgo, no hidden deps in the algebra
//   - Two realizations – one read API over explicit dart arenas and
//     coordinate-derived grids
//
// Everything is organized under a few subpackages:
//
//	core/  — Dart, Alphas, DartMap, orbit engine, sew/unsew, OrbitDict
//	grid/  — procedural n×m square grid + explicit square/hex builders
//	codec/ — flat JSON (de)serialization with mandatory validity check
//	store/ — named-map persistence on SQLite
//
// Quick ASCII example (one square face, eight darts):
//
//	    ·0──1·
//	    7    2
//	    │    │
//	    6    3
//	    ·5──4·
//
//	alpha_0 swaps the two darts of each half-edge (0↔1, 2↔3, …),
//	alpha_1 pivots around each corner (1↔2, 3↔4, …),
//	alpha_2 is free everywhere until the square is sewn to a neighbor.
//
// Dive into each subpackage's doc.go for tutorials, error contracts and
// complexity notes.
//
//	go get github.com/katalvlaran/gmap/core
package gmap
