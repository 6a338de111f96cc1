package fsm

import "github.com/bits-and-blooms/bitset"

// State identifies a node in the canonical-form automaton: either the
// distinguished initial state (every class legal) or "the last class
// taken was i", 0-indexed. Initial (-1) is a sentinel distinct from every
// valid class index; the zero value State(0) means "last class was 0".
type State int

// Initial is the FSM's starting state, before any move has been taken.
const Initial State = -1

// FSM is the compiled canonical-form automaton for one puzzle's set of
// move classes.
type FSM struct {
	numClasses int
	// allowed[i+1] is the set of classes permitted to follow class i;
	// allowed[0] is the initial state's set (every class).
	allowed []*bitset.BitSet
}

// Build compiles the automaton from numClasses move classes and a
// commute predicate: commute(i, j) must report whether every
// representative of class i commutes with every representative of class
// j (i.e. whether, for the puzzle's generators, m_i . m_j == m_j . m_i).
// commute is expected to be symmetric; Build only ever calls it with i<j
// or i>j, never i==j.
func Build(numClasses int, commute func(i, j int) bool) *FSM {
	f := &FSM{
		numClasses: numClasses,
		allowed:    make([]*bitset.BitSet, numClasses+1),
	}

	initial := bitset.New(uint(numClasses))
	for j := 0; j < numClasses; j++ {
		initial.Set(uint(j))
	}
	f.allowed[0] = initial

	for i := 0; i < numClasses; i++ {
		set := bitset.New(uint(numClasses))
		for j := 0; j < numClasses; j++ {
			if j == i {
				continue // a class may not immediately repeat.
			}
			if commute(i, j) && j < i {
				continue // within a commuting clique, classes must increase.
			}
			set.Set(uint(j))
		}
		f.allowed[i+1] = set
	}
	return f
}

// NumClasses returns the number of move classes the automaton was built
// over.
func (f *FSM) NumClasses() int {
	return f.numClasses
}

// NextState reports whether class may legally follow state, and if so the
// state to transition into (always State(class)).
func (f *FSM) NextState(state State, class int) (next State, ok bool) {
	if !f.allowed[state+1].Test(uint(class)) {
		return 0, false
	}
	return State(class), true
}

// AllowedClasses returns the bitset of classes permitted to follow state.
// The solver tests each candidate move's class against it with
// BitSet.Test.
func (f *FSM) AllowedClasses(state State) *bitset.BitSet {
	return f.allowed[state+1]
}

// ReverseState returns the FSM state to check a sequence's final move
// against, given the move class taken at the root of that sequence. The
// solver calls it at each non-root leaf, with the class recorded at the
// root (spec.md §4.8 step 4a: "a shortest solution cannot begin and
// end in the same class").
func (f *FSM) ReverseState(rootClass int) State {
	return State(rootClass)
}

// ReverseAllowed reports whether class may legally be the final move of a
// sequence whose first move belonged to the class reverseState was built
// from.
func (f *FSM) ReverseAllowed(reverseState State, class int) bool {
	return int(reverseState) != class
}
