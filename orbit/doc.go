// Package orbit defines the primitive building block of a puzzle state: an
// OrbitDef (piece count, orientation count) and the free functions that
// compose, invert, and cycle-test a single orbit's raw (permutation,
// orientation) byte buffers.
//
// What
//
//   - OrbitDef describes one class of interchangeable pieces (corners,
//     edges, centers, ...): how many pieces it has and the modulus of each
//     piece's orientation state.
//   - Brand is a runtime token shared by every value derived from the same
//     sorted orbit ordering (a PuzzleDef). Functions that compose two
//     puzzle states, or test one against a cycle structure, only accept
//     operands that carry a matching Brand.
//   - Compose, Inverse, and InducesCycle operate directly on the flat
//     per-orbit byte layout described in spec.md §3: permutation bytes
//     followed by orientation bytes, one entry per piece.
//
// Why
//
//   - Isolating the per-orbit arithmetic here keeps slicepuzzle and cube3
//     thin: both call down into these functions (or a specialized
//     equivalent) rather than duplicating the composition algorithm.
//   - The Brand mechanism recovers, at runtime, the guarantee the source
//     codebase encodes at compile time with a generativity lifetime: two
//     values that did not come from the same loaded puzzle definition can
//     never be silently composed together.
//
// Complexity
//
//   - Compose, Inverse: O(piece_count) per orbit.
//   - InducesCycle: O(piece_count) amortized (every piece visited once).
//   - ExactHasherOrbit: O(piece_count^2) worst case (inversion counting);
//     piece_count is capped at 19 so this is never more than a few hundred
//     operations.
package orbit
