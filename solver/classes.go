package solver

import (
	"github.com/qter-dev/ccs/fsm"
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

// classRepresentatives picks, for each move class, the state of the first
// move in moves belonging to that class. Commutativity depends only on
// the class (spec.md §4.5: "two classes commute iff, for any two
// representatives, m1 . m2 = m2 . m1"), so one representative per class is
// enough to decide it for every power of that generator.
func classRepresentatives[S puzzlestate.State[S]](moves []Move[S], numClasses int) []S {
	reps := make([]S, numClasses)
	seen := make([]bool, numClasses)
	for _, m := range moves {
		if !seen[m.Class] {
			reps[m.Class] = m.State
			seen[m.Class] = true
		}
	}
	return reps
}

// buildClassRelations computes the numClasses x numClasses commutativity
// matrix between move classes and the canonical-form FSM compiled from
// it. It returns the matrix as well as the FSM because the
// solution-expansion stage needs raw symmetric commute queries the FSM's
// increasing-index-within-a-clique transition table does not expose
// directly: New keeps only the FSM, and newSolutionIter calls this again
// for the matrix.
func buildClassRelations[S puzzlestate.State[S]](moves []Move[S], numClasses int, identity S, orbitDefs orbit.SortedOrbitDefs) ([][]bool, *fsm.FSM) {
	reps := classRepresentatives(moves, numClasses)

	matrix := make([][]bool, numClasses)
	for i := range matrix {
		matrix[i] = make([]bool, numClasses)
	}

	ab := identity.Clone()
	ba := identity.Clone()
	for i := 0; i < numClasses; i++ {
		for j := i + 1; j < numClasses; j++ {
			ab.ReplaceCompose(reps[i], reps[j], orbitDefs)
			ba.ReplaceCompose(reps[j], reps[i], orbitDefs)
			commute := ab.Equal(ba)
			matrix[i][j] = commute
			matrix[j][i] = commute
		}
	}

	f := fsm.Build(numClasses, func(i, j int) bool { return matrix[i][j] })
	return matrix, f
}
