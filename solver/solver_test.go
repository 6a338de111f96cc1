package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/pruning"
	"github.com/qter-dev/ccs/puzzlestate"
	"github.com/qter-dev/ccs/slicepuzzle"
)

// testPuzzle builds a single-orbit, four-piece, no-orientation puzzle with
// two disjoint, commuting, order-2 generators: A swaps pieces (0 1), B
// swaps pieces (2 3). Small and fully hand-traceable: the only depth-2
// solution is "A then B" (or its commuting permutation "B then A"), since
// neither move alone reaches the two-transposition target.
func testPuzzle(t *testing.T) (orbit.SortedOrbitDefs, []Move[slicepuzzle.Buffer]) {
	t.Helper()
	def, err := orbit.NewOrbitDef(4, 1)
	require.NoError(t, err)
	defs := orbit.NewSortedOrbitDefs([]orbit.OrbitDef{def})

	a := slicepuzzle.FromOrbitBytes([][2][]byte{
		{{1, 0, 2, 3}, {0, 0, 0, 0}},
	}, defs)
	b := slicepuzzle.FromOrbitBytes([][2][]byte{
		{{0, 1, 3, 2}, {0, 0, 0, 0}},
	}, defs)

	moves := []Move[slicepuzzle.Buffer]{
		{Name: "A", State: a, Order: 2, Class: 0},
		{Name: "B", State: b, Order: 2, Class: 1},
	}
	return defs, moves
}

func testZeroTables(t *testing.T, defs orbit.SortedOrbitDefs) *pruning.Tables {
	t.Helper()
	perOrbit := make([]pruning.Table, len(defs.Defs))
	for i, def := range defs.Defs {
		table, err := pruning.Build(def, nil, nil, pruning.BackendZero, 0, nil, 0)
		require.NoError(t, err)
		perOrbit[i] = table
	}
	return pruning.NewTables(perOrbit)
}

func TestSolveFindsBothCommutingOrders(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)
	tables := testZeroTables(t, defs)

	target, err := puzzlestate.NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 2, Oriented: false}, {Length: 2, Oriented: false}},
	}, defs)
	require.NoError(t, err)

	solver, err := New(identity, defs, moves, 2, tables)
	require.NoError(t, err)

	iter, err := solver.Solve(target, AllSolutions)
	require.NoError(t, err)
	require.Equal(t, 2, iter.Len())

	var names [][]string
	for iter.Next() {
		sol := iter.Solution()
		var seq []string
		for _, m := range sol {
			seq = append(seq, m.Name)
		}
		names = append(names, seq)
	}
	require.ElementsMatch(t, [][]string{{"A", "B"}, {"B", "A"}}, names)
}

func TestSolveFirstSolutionReturnsOne(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)
	tables := testZeroTables(t, defs)

	target, err := puzzlestate.NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 2, Oriented: false}, {Length: 2, Oriented: false}},
	}, defs)
	require.NoError(t, err)

	solver, err := New(identity, defs, moves, 2, tables)
	require.NoError(t, err)

	iter, err := solver.Solve(target, FirstSolution)
	require.NoError(t, err)
	require.Equal(t, 1, iter.Len())
}

func TestSolveIdentityTargetYieldsEmptySolution(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)
	tables := testZeroTables(t, defs)

	target, err := puzzlestate.NewSortedCycleStructure([][]orbit.CycleEntry{{}}, defs)
	require.NoError(t, err)

	solver, err := New(identity, defs, moves, 2, tables)
	require.NoError(t, err)

	iter, err := solver.Solve(target, FirstSolution)
	require.NoError(t, err)
	require.Equal(t, 1, iter.Len())
	require.True(t, iter.Next())
	require.Empty(t, iter.Solution())
}

func TestSolveRejectsMismatchedBrand(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)
	tables := testZeroTables(t, defs)

	otherDefs, _ := testPuzzle(t)
	target, err := puzzlestate.NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 2, Oriented: false}, {Length: 2, Oriented: false}},
	}, otherDefs)
	require.NoError(t, err)

	solver, err := New(identity, defs, moves, 2, tables)
	require.NoError(t, err)

	_, err = solver.Solve(target, FirstSolution)
	require.ErrorIs(t, err, ErrInvalidCycleStructure)
}

func TestNewRejectsOrbitCountMismatch(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)

	_, err := New(identity, defs, moves, 2, pruning.NewTables(nil))
	require.ErrorIs(t, err, ErrInvalidCycleStructure)
}

func TestWithMaxSolutionLengthExceeded(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)
	tables := testZeroTables(t, defs)

	target, err := puzzlestate.NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 2, Oriented: false}, {Length: 2, Oriented: false}},
	}, defs)
	require.NoError(t, err)

	solver, err := New(identity, defs, moves, 2, tables, WithMaxSolutionLength(1))
	require.NoError(t, err)

	_, err = solver.Solve(target, FirstSolution)
	require.ErrorIs(t, err, ErrMaxSolutionLengthExceeded)
}

func TestWithMaxSolutionLengthNegativeIsOptionViolation(t *testing.T) {
	defs, moves := testPuzzle(t)
	identity := slicepuzzle.Identity(defs)
	tables := testZeroTables(t, defs)

	_, err := New(identity, defs, moves, 2, tables, WithMaxSolutionLength(-1))
	require.ErrorIs(t, err, ErrOptionViolation)
}

func TestRotationPeriodSingleMove(t *testing.T) {
	require.Equal(t, 1, rotationPeriod([]int{5}))
}

func TestRotationPeriodFullPeriodWhenNoProperRotationMatches(t *testing.T) {
	require.Equal(t, 3, rotationPeriod([]int{1, 2, 3}))
}

func TestNextPermutationExhaustsAllOrderings(t *testing.T) {
	idx := []int{1, 2, 3}
	var all [][]int
	for {
		all = append(all, append([]int(nil), idx...))
		if !nextPermutation(idx) {
			break
		}
	}
	require.Len(t, all, 6)
}

func TestPrintableName(t *testing.T) {
	require.Equal(t, "U", PrintableName("U", 1, 4))
	require.Equal(t, "U2", PrintableName("U", 2, 4))
	require.Equal(t, "U'", PrintableName("U", 3, 4))
	require.Equal(t, "F", PrintableName("F", 0, 2))
	require.Equal(t, "F", PrintableName("F", 1, 2))
}
