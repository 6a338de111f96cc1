// Package slicepuzzle is the default puzzlestate.State implementation: a
// puzzle state held as one flat byte buffer, orbit after orbit, each orbit
// stored as its permutation vector immediately followed by its orientation
// vector.
//
// What
//
//   - Buffer is a heap-allocated []byte state, sized once from a
//     orbit.SortedOrbitDefs and reused for the lifetime of a search.
//     Every puzzle this module loads through ksolve ends up represented
//     this way unless cube3's fixed-size specializations apply.
//
// Why
//
//   - A single contiguous buffer keeps Compose/Inverse/InducesCycle
//     (orbit package) operating on plain byte slices with no indirection,
//     and keeps Clone a single slice copy. This mirrors the source's
//     HeapPuzzle (a boxed byte slice) rather than StackPuzzle (a
//     const-generic array): Go has no const generics, and a fixed-size
//     array per distinct puzzle shape would require code generation for
//     no benefit Go's allocator doesn't already give a boxed slice.
//
// Usage
//
//	buf := slicepuzzle.Identity(orbitDefs)
//	next := slicepuzzle.Identity(orbitDefs)
//	next.ReplaceCompose(buf, move, orbitDefs)
package slicepuzzle
