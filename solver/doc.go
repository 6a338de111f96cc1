// Package solver implements the cycle-structure IDA* search: given a
// puzzle definition, a set of per-orbit pruning tables, and a target
// SortedCycleStructure, find the shortest generator sequence whose
// composed effect induces that cycle structure.
//
// What
//
//   - CycleStructureSolver[S] is generic over puzzlestate.State[S]
//     (slicepuzzle.Buffer, or cube3's *PairedCube3/*UnifiedCube3 3x3x3
//     specializations); the
//     search loop, pruning, and expansion logic are written once against
//     the interface.
//   - Solve runs the outer increasing-depth loop, returning a typed error
//     if no solution exists within the configured caps, or a SolutionIter
//     over every solution in the minimal-length conjugacy class (under
//     FirstSolution, only the first of them).
//   - The core recursive search applies, in order: an admissible-heuristic
//     cutoff, the canonical-form FSM (fsm package), sequence-symmetry
//     pruning, root/leaf move-class endpoint restriction, and pathmax.
//
// Why
//
//   - Splitting the core search (which finds one canonical representative
//     per equivalence class, fast) from expansion (which fans each
//     representative out to its full rotation/commuting-run class) keeps
//     the hot recursive loop free of the bookkeeping the expansion needs,
//     matching the source's producer/iterator split.
//
// Errors
//
//   - ErrSolutionDoesNotExist, ErrMaxSolutionLengthExceeded, and
//     ErrSearchCancelled are returned only from Solve, never mid-iteration
//     (spec.md §6.3): once Solve returns successfully every solution in
//     the iterator is already known to exist.
package solver
