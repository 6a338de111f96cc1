// Package fsm builds and queries the canonical-form finite-state machine
// that restricts the solver to one representative sequence per class of
// move-reordering induced by commuting generators (e.g. "U D" and "D U"
// compose to the same state, so only one is searched).
//
// What
//
//   - Build computes the commutativity graph over move classes (pairwise,
//     from one representative move per class) and compiles it into a
//     transition table: one github.com/bits-and-blooms/bitset.BitSet per
//     "last class taken" (plus one for the initial, unconstrained state)
//     recording which classes may legally follow.
//   - State is an opaque handle into that table. NextState consults it in
//     O(1) plus a bitset test; the solver's hot loop walks every move and
//     tests its class against AllowedClasses' bitset with BitSet.Test.
//
// Why
//
//   - The FSM's states are exactly {initial} ∪ {move classes}: whether
//     class j may follow class i depends only on i and j (commute(i,j)
//     and the increasing-index tie-break), never on anything earlier in
//     the sequence. That collapses what might look like an exponential
//     "subset of classes" state space (spec.md §4.5's bitmask framing) to
//     a transition table sized numClasses+1, matching the "finite"
//     guarantee spec.md promises: representing each state as the fixed
//     allowed-set of its source class, rather than re-deriving it from
//     history, is what makes every lookup constant-time.
package fsm
