// Package puzzlestate declares the polymorphic puzzle-state contract the
// rest of the module is generic over, plus the cycle structure the solver
// searches for.
//
// What
//
//   - State[S] is implemented by slicepuzzle's generic flat-buffer
//     representation and by cube3's two SIMD-style specializations.
//     history and solver are written against State, not against a
//     concrete representation; pruning works on raw orbit bytes instead.
//   - Orbits are addressed by a plain int index into orbitDefs.Defs, in
//     sorted order, for every representation (in cube3, 0 is corners and
//     1 is edges); there is no separate orbit-identifier type.
//   - SortedCycleStructure is the target of the search: for each orbit, a
//     sorted list of (cycle_length, oriented) pairs a solved search must
//     produce.
//
// Why
//
//   - A trait/interface boundary here is what lets solver, history, and
//     pruning stay representation-agnostic, matching the source's design
//     (spec.md §9: "Implement as a trait/interface with associated
//     scratch-buffer type; the slice implementation is the default").
//
// Errors
//
//   - ErrOrbitCountMismatch, ErrTooManyPieces, ErrZeroLengthCycle: returned
//     by NewSortedCycleStructure when a target cycle structure does not
//     match the puzzle definition it will be checked against.
package puzzlestate
