// Package history holds the puzzle-state stack the solver recurses
// through: at depth d, the composed state reached after d moves, and the
// move index taken to reach it. It grows on push, shrinks on pop, and is
// preallocated to the current IDA* depth limit so the hot search loop
// never allocates.
//
// What
//
//   - History[S] is generic over puzzlestate.State[S], mirroring the
//     solver's own genericity.
//   - Last returns the top state by plain slice indexing with no check of
//     its own (an out-of-range stack pointer panics with Go's index
//     error); it stays in range under the "one push per one pop"
//     discipline the solver's recursion already maintains. CheckedLast is
//     the twin that returns ErrEmptyHistory instead of panicking, used by
//     tests.
//
// Why
//
//   - spec.md §9 calls out history as the place where eliminating bounds
//     checks on the hot path earns its keep, while still wanting a safe
//     variant for tests — the same split the teacher's packages draw
//     between a performance path and a checked path for the cases that
//     are contractually guaranteed, not accidentally correct.
package history
