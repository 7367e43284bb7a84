// Package store persists named generalized maps and their orbit
// dictionaries in a SQLite database.
//
// What:
//
//   - Store: a thin repository over database/sql with the pure-Go
//     modernc.org/sqlite driver. Maps are stored in their flat codec
//     form under a unique name; any number of named orbit dictionaries
//     hang off each map.
//   - LoadMap goes through codec.UnmarshalMap, so every map read back
//     from disk is re-validated before a caller sees it — a corrupt
//     row surfaces as an error, never as a broken map.
//
// Why:
//
//   - Long-lived boards and meshes: construction is incremental and
//     monotonic, so snapshots between editing sessions are natural.
//   - One file, no server: SQLite keeps the persistence story as
//     self-contained as the in-memory library.
//
// All methods take a context.Context and honor its cancellation.
// Use Open(":memory:") for throwaway stores in tests.
//
// Errors:
//
//   - ErrNotFound: no map or dictionary under the requested name.
//   - codec/core errors propagate unchanged from LoadMap/LoadDict.
package store
