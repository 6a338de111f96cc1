// Package pruning builds and serves the admissible-heuristic lookup
// tables spec.md §4.6 describes: per orbit, a backward breadth-first
// search from every orbit-state that already induces the target cycle
// structure, recording at each exact-hash index the minimum number of
// moves back to a goal state.
//
// What
//
//   - Table is the per-orbit lookup surface, with four backends: Zero
//     (always 0, for puzzles too large to table), ExactUncompressed (one
//     byte per hash index), ExactPacked (one nibble per hash index, for
//     roughly half the memory at the cost of a shift-and-mask per lookup;
//     github.com/icza/bitio streams the nibbles for Save/Load), and
//     Approximate (a sparse map keyed by
//     State.ApproximateHashOrbit, for orbits too large to hash exactly).
//   - Tables aggregates one Table per orbit and computes
//     AdmissibleHeuristic(state) as the max over orbits of that orbit's
//     table lookup — admissible because each orbit's distance alone is a
//     lower bound on the moves needed to fix every orbit simultaneously.
//   - Build runs the backward BFS. The initial goal-frontier scan (which
//     orbit-states already satisfy the target cycle structure) is
//     sharded across workers with golang.org/x/sync/errgroup, and so is
//     each BFS layer's expansion; a layer's results are merged into the
//     table sequentially before the next layer starts.
//
// Why
//
//   - Capping stored depth at 254 and saturating above (spec.md §4.6)
//     keeps one byte per table entry sufficient regardless of search
//     depth (ExactPacked saturates at 14 instead). 255 (0xF in a nibble)
//     marks "unreached" during construction; an entry still unreached
//     after the BFS completes is an orbit-state no goal state reaches,
//     and Lookup reports it as 0, the trivially admissible bound, rather
//     than as an error.
package pruning
