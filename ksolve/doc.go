// Package ksolve loads a puzzle definition from the textual
// orbit-and-generator format described by spec.md §6.1 — the community
// lingua franca for describing twisty puzzles by their orbit ("set")
// structure and named generator moves, as used by KSolve and twsearch.
//
// What
//
//   - PuzzleDef is the validated, in-memory result of a Load call: a
//     name, a sorted orbit.SortedOrbitDefs, and a list of named Moves
//     whose transformations are flat slicepuzzle.Buffer values ready to
//     compose against.
//   - Load parses the text format, validates every move's transformation
//     (right set count, right piece count per orbit, in-range
//     orientation deltas, a bijective permutation vector), normalizes
//     1-indexed permutation entries to 0-indexed, sorts the orbits into
//     canonical order, and mints the orbit.Brand every downstream value
//     shares.
//
// Why
//
//   - Keeping text parsing and semantic validation as two separate
//     passes (Scan then validate) mirrors the source's KSolveFields ->
//     TryFrom<KSolveFields> -> KSolve split: a possibly-invalid
//     intermediate form, validated once into a type that every other
//     package can trust without re-checking.
//
// Errors
//
//   - ErrSyntax wraps textual parse failures (bad line shape, unparsable
//     integer). ErrSetCountMismatch, ErrPieceCountMismatch,
//     ErrOrientationDeltaOutOfRange, ErrNonBijectivePermutation,
//     ErrDuplicateName, ErrGeneratorOrderExceeded report semantic
//     validation failures, translated from the source's
//     KSolveConstructionError variants.
//
// Options
//
//   - WithMaxGeneratorOrder caps the order a single named generator's
//     move class may reach before Load rejects the definition
//     (spec.md §7: "generator order overflow" is a definition error).
package ksolve
