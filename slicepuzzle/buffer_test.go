package slicepuzzle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

func testDefs(t *testing.T) orbit.SortedOrbitDefs {
	t.Helper()
	a, err := orbit.NewOrbitDef(4, 3)
	require.NoError(t, err)
	b, err := orbit.NewOrbitDef(6, 2)
	require.NoError(t, err)
	return orbit.NewSortedOrbitDefs([]orbit.OrbitDef{a, b})
}

func TestIdentityComposeRoundTrip(t *testing.T) {
	defs := testDefs(t)
	id := Identity(defs)

	move := FromOrbitBytes([][2][]byte{
		{{1, 2, 3, 0}, {1, 0, 0, 0}},
		{{0, 1, 2, 3, 5, 4}, {0, 0, 0, 0, 0, 0}},
	}, defs)

	got := Identity(defs)
	got.ReplaceCompose(id, move, defs)
	require.True(t, got.Equal(move))
}

func TestReplaceInverseRoundTrip(t *testing.T) {
	defs := testDefs(t)
	move := FromOrbitBytes([][2][]byte{
		{{1, 2, 3, 0}, {1, 0, 0, 0}},
		{{0, 1, 2, 3, 5, 4}, {0, 0, 0, 0, 0, 0}},
	}, defs)

	inv := Identity(defs)
	inv.ReplaceInverse(move, defs)

	product := Identity(defs)
	product.ReplaceCompose(move, inv, defs)
	require.True(t, product.Equal(Identity(defs)))
}

func TestInducesSortedCycleStructure(t *testing.T) {
	defs := testDefs(t)
	move := FromOrbitBytes([][2][]byte{
		{{1, 2, 3, 0}, {0, 0, 0, 0}},
		{{0, 1, 2, 3, 5, 4}, {0, 0, 0, 0, 0, 0}},
	}, defs)

	target, err := puzzlestate.NewSortedCycleStructure([][]orbit.CycleEntry{
		{{Length: 4, Oriented: false}},
		{{Length: 2, Oriented: false}},
	}, defs)
	require.NoError(t, err)

	scratch := puzzlestate.NewScratch(defs)
	require.True(t, move.InducesSortedCycleStructure(target, defs, scratch))
}

func TestExactHasherOrbitIdentityIsZero(t *testing.T) {
	defs := testDefs(t)
	id := Identity(defs)
	h, err := id.ExactHasherOrbit(0, defs)
	require.NoError(t, err)
	require.Zero(t, h)
}

func TestMismatchedBrandPanics(t *testing.T) {
	defs := testDefs(t)
	other := testDefs(t)
	a := Identity(defs)
	b := Identity(other)
	require.Panics(t, func() {
		a.ReplaceCompose(a, b, defs)
	})
}
