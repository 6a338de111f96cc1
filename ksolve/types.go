package ksolve

import (
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/slicepuzzle"
)

// Move is a named generator: a puzzle state (the transformation applying
// the move once has on the solved state) paired with the printable name
// its base generator was declared under.
type Move struct {
	Name           string
	Transformation slicepuzzle.Buffer
	Order          int
	// Class groups moves that are powers of the same base generator (for
	// example "U", "U2", "U'" all share a class): the solver's canonical
	// FSM and sequence-symmetry pruning operate on move classes, not
	// individual moves, since choosing "U" then "U2" is never shorter than
	// choosing "U" then "U3" directly reached some other way but both
	// still "turn the same face". See BaseMoveName.
	Class int
}

// PuzzleDef is a fully validated puzzle definition: a name, the canonical
// sorted orbit layout every state and move shares a Brand with, and the
// named generator moves available to the solver.
type PuzzleDef struct {
	Name       string
	OrbitDefs  orbit.SortedOrbitDefs
	OrbitNames []string
	Moves      []Move
	Symmetries []Move
}

// MoveByName returns the move with the given name, and whether it was
// found.
func (p PuzzleDef) MoveByName(name string) (Move, bool) {
	for _, m := range p.Moves {
		if m.Name == name {
			return m, true
		}
	}
	return Move{}, false
}

// Identity returns the solved state of the puzzle.
func (p PuzzleDef) Identity() slicepuzzle.Buffer {
	return slicepuzzle.Identity(p.OrbitDefs)
}
