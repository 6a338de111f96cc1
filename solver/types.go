package solver

import "github.com/qter-dev/ccs/puzzlestate"

// Strategy selects how many canonical-representative solutions the core
// search collects at the minimal depth before returning.
type Strategy int

const (
	// FirstSolution stops the search as soon as one solution is found at
	// the minimal depth.
	FirstSolution Strategy = iota

	// AllSolutions collects every canonical-representative solution at
	// the minimal depth before returning.
	AllSolutions
)

// Move is one named generator in representation S: the state applying it
// once to the solved puzzle produces, its printable name, the order of
// its base generator, and the move-class index it shares with every other
// power of that generator.
type Move[S puzzlestate.State[S]] struct {
	Name  string
	State S
	Order int
	Class int
}

// Solution is one full move sequence found and expanded by a search, in
// the order the moves must be applied.
type Solution[S puzzlestate.State[S]] []Move[S]
