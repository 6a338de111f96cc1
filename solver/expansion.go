package solver

import (
	"fmt"

	"github.com/qter-dev/ccs/puzzlestate"
)

// rotate returns seq rotated left by r positions: rotate(seq, r)[i] =
// seq[(i+r) % len(seq)].
func rotate(seq []int, r int) []int {
	n := len(seq)
	out := make([]int, n)
	for i := range out {
		out[i] = seq[(i+r)%n]
	}
	return out
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rotationPeriod returns the smallest positive r such that rotating seq
// left by r reproduces seq exactly. It always divides len(seq) and is at
// most len(seq) (the identity rotation), and is the count of distinct
// rotations the sequence-symmetry expansion must emit (spec.md §4.8
// "Solution expansion" step 1): a sequence conjugated by its own first r
// moves returns to itself, so only the r rotations up to that period are
// distinct conjugates.
func rotationPeriod(seq []int) int {
	n := len(seq)
	if n == 0 {
		return 1
	}
	for r := 1; r <= n; r++ {
		if n%r != 0 {
			continue
		}
		if sliceEqual(rotate(seq, r), seq) {
			return r
		}
	}
	return n
}

// commuteChecker reports whether the base move classes of two move
// indices commute, using the matrix buildClassRelations returns
// (newSolutionIter computes it once per call).
type commuteChecker[S puzzlestate.State[S]] struct {
	matrix [][]bool
	moves  []Move[S]
}

func (c commuteChecker[S]) commute(moveIndexA, moveIndexB int) bool {
	return c.matrix[c.moves[moveIndexA].Class][c.moves[moveIndexB].Class]
}

// commutingRun is a maximal span [start, end) of a solution sequence
// whose moves pairwise commute.
type commutingRun struct {
	start, end int
}

// findCommutingRuns partitions seq into maximal runs of moves that all
// pairwise commute with each other, in sequence order. A move that
// commutes with every move already in the current run extends it; one
// that doesn't starts a new run. The partition is greedy, left to right,
// so a run is maximal only in that direction. Commutativity is read per
// move class (every power of one base move commutes with every power of
// another iff the two base moves do).
func findCommutingRuns[S puzzlestate.State[S]](seq []int, cc commuteChecker[S]) []commutingRun {
	if len(seq) == 0 {
		return nil
	}
	var runs []commutingRun
	start := 0
	for i := 1; i <= len(seq); i++ {
		if i < len(seq) {
			allCommute := true
			for j := start; j < i; j++ {
				if !cc.commute(seq[j], seq[i]) {
					allCommute = false
					break
				}
			}
			if allCommute {
				continue
			}
		}
		runs = append(runs, commutingRun{start: start, end: i})
		start = i
	}
	return runs
}

// nextPermutation advances idx (indices into some fixed reference slice,
// assumed to start sorted ascending) to its next lexicographic
// permutation in place, returning false once idx is already the last
// permutation (fully descending).
func nextPermutation(idx []int) bool {
	n := len(idx)
	if n < 2 {
		return false
	}
	i := n - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}

// expandMoveIndexSequence expands one canonical representative (a
// sequence of move indices) into every sequence the spec's two-stage
// expansion (rotation, then per-run permutation) reaches.
func expandMoveIndexSequence[S puzzlestate.State[S]](seq []int, cc commuteChecker[S]) [][]int {
	period := rotationPeriod(seq)

	var rotations [][]int
	for r := 0; r < period; r++ {
		rotations = append(rotations, rotate(seq, r))
	}

	var out [][]int
	for _, rot := range rotations {
		runs := findCommutingRuns(rot, cc)
		out = append(out, expandRuns(rot, runs)...)
	}
	return out
}

// expandRuns Cartesian-combines every independent permutation of each
// commuting run in seq, holding the run boundaries fixed.
func expandRuns(seq []int, runs []commutingRun) [][]int {
	combos := [][]int{append([]int(nil), seq...)}
	for _, run := range runs {
		n := run.end - run.start
		if n < 2 {
			continue
		}
		original := append([]int(nil), seq[run.start:run.end]...)
		sortedIdx := make([]int, n)
		copy(sortedIdx, original)
		// sort ascending once; permutations are generated from this base.
		for i := 1; i < n; i++ {
			for j := i; j > 0 && sortedIdx[j-1] > sortedIdx[j]; j-- {
				sortedIdx[j-1], sortedIdx[j] = sortedIdx[j], sortedIdx[j-1]
			}
		}

		var perms [][]int
		cur := append([]int(nil), sortedIdx...)
		for {
			perms = append(perms, append([]int(nil), cur...))
			if !nextPermutation(cur) {
				break
			}
		}

		var next [][]int
		for _, combo := range combos {
			for _, perm := range perms {
				variant := append([]int(nil), combo...)
				copy(variant[run.start:run.end], perm)
				next = append(next, variant)
			}
		}
		combos = next
	}
	return combos
}

// SolutionIter yields every solution in the minimal-length conjugacy
// class the core search found. It eagerly computes the full expanded set
// at construction: a true lazy generator over rotation and per-run
// permutation state is a plausible further refinement, but verifying one
// by hand carries real risk of an off-by-one only execution would catch,
// so this trades a larger up-front allocation for a simpler, more
// obviously correct Next()/Solution() contract.
type SolutionIter[S puzzlestate.State[S]] struct {
	solutions []Solution[S]
	pos       int
}

// newSolutionIter expands every raw canonical-representative move-index
// sequence the core search recorded and builds the full Solution[S] set.
func newSolutionIter[S puzzlestate.State[S]](solver *CycleStructureSolver[S], rawSolutions [][]int) *SolutionIter[S] {
	if len(rawSolutions) == 0 {
		return &SolutionIter[S]{}
	}

	matrix, _ := buildClassRelations(solver.moves, solver.fsm.NumClasses(), solver.identity, solver.orbitDefs)
	cc := commuteChecker[S]{matrix: matrix, moves: solver.moves}

	// Rotation expansion and commuting-run permutation expansion are
	// independent symmetries in general, but when an entire sequence is
	// one commuting run, every rotation of it is already one of the run's
	// permutations: the two stages overlap completely and would otherwise
	// emit the same move sequence more than once.
	seen := make(map[string]bool)
	var out []Solution[S]
	for _, raw := range rawSolutions {
		for _, expanded := range expandMoveIndexSequence(raw, cc) {
			key := fmt.Sprint(expanded)
			if seen[key] {
				continue
			}
			seen[key] = true

			sol := make(Solution[S], len(expanded))
			for i, moveIndex := range expanded {
				sol[i] = solver.moves[moveIndex]
			}
			out = append(out, sol)
		}
	}
	return &SolutionIter[S]{solutions: out}
}

// Len returns the number of solutions the iterator holds.
func (it *SolutionIter[S]) Len() int {
	return len(it.solutions)
}

// Next advances the iterator and reports whether a solution is available;
// call Solution to retrieve it.
func (it *SolutionIter[S]) Next() bool {
	if it.pos >= len(it.solutions) {
		return false
	}
	it.pos++
	return true
}

// Solution returns the solution Next most recently advanced to.
func (it *SolutionIter[S]) Solution() Solution[S] {
	if it.pos == 0 || it.pos > len(it.solutions) {
		return nil
	}
	return it.solutions[it.pos-1]
}
