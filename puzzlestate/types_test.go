package puzzlestate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qter-dev/ccs/orbit"
)

func testOrbitDefs(t *testing.T) orbit.SortedOrbitDefs {
	t.Helper()
	a, err := orbit.NewOrbitDef(4, 2)
	require.NoError(t, err)
	b, err := orbit.NewOrbitDef(8, 3)
	require.NoError(t, err)
	return orbit.NewSortedOrbitDefs([]orbit.OrbitDef{a, b})
}

func TestNewSortedCycleStructureValid(t *testing.T) {
	defs := testOrbitDefs(t)
	cs, err := NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 4, Oriented: false}},
		{{Length: 3, Oriented: true}, {Length: 5, Oriented: false}},
	}, defs)
	require.NoError(t, err)
	require.False(t, cs.IsIdentity())
	require.True(t, defs.Brand.Same(cs.Brand))
}

func TestNewSortedCycleStructureIdentity(t *testing.T) {
	defs := testOrbitDefs(t)
	cs, err := NewSortedCycleStructure([][]orbit.CycleEntry{{}, {}}, defs)
	require.NoError(t, err)
	require.True(t, cs.IsIdentity())
}

func TestNewSortedCycleStructureOrbitCountMismatch(t *testing.T) {
	defs := testOrbitDefs(t)
	_, err := NewSortedCycleStructure([][]orbit.CycleEntry{{}}, defs)
	require.ErrorIs(t, err, ErrOrbitCountMismatch)
}

func TestNewSortedCycleStructureZeroLengthCycle(t *testing.T) {
	defs := testOrbitDefs(t)
	_, err := NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 0}},
		{},
	}, defs)
	require.ErrorIs(t, err, ErrZeroLengthCycle)
}

func TestNewSortedCycleStructureTooManyPieces(t *testing.T) {
	defs := testOrbitDefs(t)
	_, err := NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 4}, {Length: 1, Oriented: true}},
		{},
	}, defs)
	require.ErrorIs(t, err, ErrTooManyPieces)
}

func TestNewScratchSizesToLargestOrbit(t *testing.T) {
	defs := testOrbitDefs(t)
	scratch := NewScratch(defs)
	require.Len(t, scratch, orbit.ScratchLen(8))
}
