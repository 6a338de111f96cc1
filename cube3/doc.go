// Package cube3 is a fixed-shape puzzlestate.State specialization for the
// 3x3x3 Rubik's cube: 8 corners with orientation count 3 (orbit index 0)
// and 12 edges with orientation count 2 (orbit index 1), the sorted order
// OrbitDefs returns. Where slicepuzzle's Buffer
// walks a orbit.SortedOrbitDefs at runtime, cube3's two types hardcode the
// two orbit sizes so the compiler can keep both arrays on the stack and
// unroll their loops — the Go-idiomatic analog of the source's AVX2
// byte-lane specializations (there is no portable SIMD intrinsic surface
// in the standard library, so the win here is escape-analysis and
// loop-unrolling rather than vector instructions; Compose/Inverse on
// UnifiedCube3's packed lane are plain unpack-compute-repack, not a real
// byte-permute instruction).
//
// What
//
//   - PairedCube3 holds a [16]byte corners lane (8 perm, 8 ori) and a
//     [24]byte edges lane (12 perm, 12 ori) as plain arrays, permutation
//     bytes and orientation bytes in separate ranges of each lane.
//   - UnifiedCube3 holds one combined [32]byte lane instead: edges in the
//     low 16 bytes, corners in the high 16, one byte per piece packing
//     both its permutation index and its orientation together (low
//     nibble piece index, next two bits orientation), with unused slots
//     past each region's piece count holding their own index as identity
//     padding. This is spec.md §4.3's second required 3x3x3 layout.
//   - ReplaceInverse offers two strategies: the direct per-piece inverse
//     (orbit.Inverse, identical to slicepuzzle), and ExponentiateInverse,
//     which computes the same result by raising the state to the 27719th
//     power — the LCM of every element order in the cube group, minus one
//     (spec.md §4.1) — via a hand-rolled square-and-multiply over that
//     exponent's binary expansion (cube3/inverse.go). The
//     github.com/mmcloughlin/addchain module is tracked only as a
//     //go:build tools dev dependency (cube3/tools.go) for regenerating a
//     shorter chain out-of-band; it does no runtime work in this package.
//
// Why
//
//   - spec.md explicitly calls out the 3x3x3 path as allowed to compute
//     its inverse by exponentiation instead of direct index-flipping, and
//     requires both a paired and a unified byte layout; this package is
//     where both alternatives are exercised.
package cube3
