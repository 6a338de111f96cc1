package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/slicepuzzle"
)

func testDefs(t *testing.T) orbit.SortedOrbitDefs {
	t.Helper()
	d, err := orbit.NewOrbitDef(4, 2)
	require.NoError(t, err)
	return orbit.NewSortedOrbitDefs([]orbit.OrbitDef{d})
}

func TestPushPopRoundTrip(t *testing.T) {
	defs := testDefs(t)
	id := slicepuzzle.Identity(defs)
	move := slicepuzzle.FromOrbitBytes([][2][]byte{{{1, 2, 3, 0}, {1, 0, 0, 0}}}, defs)

	h := New[slicepuzzle.Buffer](id, defs, 4)
	require.Equal(t, 0, h.Depth())

	h.Push(0, move)
	require.Equal(t, 1, h.Depth())
	require.True(t, h.Last().Equal(move))

	h.Pop()
	require.Equal(t, 0, h.Depth())
	require.True(t, h.Last().Equal(id))
}

func TestCreateMoveHistoryAndMoveIndex(t *testing.T) {
	defs := testDefs(t)
	id := slicepuzzle.Identity(defs)
	move := slicepuzzle.FromOrbitBytes([][2][]byte{{{1, 2, 3, 0}, {1, 0, 0, 0}}}, defs)

	h := New[slicepuzzle.Buffer](id, defs, 4)
	h.Push(5, move)
	h.Push(2, move)

	require.Equal(t, []int{5, 2}, h.CreateMoveHistory())
	require.Equal(t, 5, h.MoveIndex(1))
	require.Equal(t, 2, h.MoveIndex(2))
}

func TestResizeIfNeededPreservesContent(t *testing.T) {
	defs := testDefs(t)
	id := slicepuzzle.Identity(defs)
	move := slicepuzzle.FromOrbitBytes([][2][]byte{{{1, 2, 3, 0}, {1, 0, 0, 0}}}, defs)

	h := New[slicepuzzle.Buffer](id, defs, 1)
	h.Push(0, move)
	h.ResizeIfNeeded(8)
	require.True(t, h.Last().Equal(move))
}

func TestCheckedLastOnEmptyHistory(t *testing.T) {
	defs := testDefs(t)
	id := slicepuzzle.Identity(defs)
	h := New[slicepuzzle.Buffer](id, defs, 2)
	got, err := h.CheckedLast()
	require.NoError(t, err)
	require.True(t, got.Equal(id))
}
