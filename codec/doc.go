// Package codec round-trips generalized maps and orbit dictionaries
// through their flat JSON forms.
//
// What:
//
//   - Map form:  {"dimension": d, "alpha": {"<dart>": [a0, …, ad], …}}
//     — one row of alpha images per dart, keyed by the dart's stable
//     number. Numbering must be contiguous from 0.
//   - Dict form: {"indices": [i, …], "map": {"<dart>": value, …}}
//     — the alpha subset as an index list plus raw per-dart entries.
//
// Why:
//
//   - The explicit realization stores alpha links as a dart-indexed
//     arena, so its serialized form is a direct dump — no pointer
//     chasing, no identity translation.
//   - Deserialization mandatorily re-validates: schema errors are
//     rejected first (codec sentinels), then core.Validate rejects any
//     table that parses but breaks the involution or commutation laws.
//     A corrupt table is a hard error, never a silently accepted map.
//
// Complexity:
//
//   - MarshalMap / UnmarshalMap: O(|darts|·d) plus the O(|darts|·d²)
//     validity check on the way in.
//   - MarshalOrbitDict / UnmarshalOrbitDict: O(|entries|).
//
// Errors:
//
//   - ErrBadTable: malformed JSON or a row of the wrong width.
//   - ErrBadNumbering: non-integer, negative, or non-contiguous dart
//     numbers.
//   - ErrDanglingDart: an alpha entry referencing a missing dart.
//   - core.ErrInvalidStructure: the table parsed but fails validation.
package codec
