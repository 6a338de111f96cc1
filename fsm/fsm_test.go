package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Three classes: 0 and 1 commute with each other, 2 commutes with
// neither.
func testCommute(i, j int) bool {
	return (i == 0 && j == 1) || (i == 1 && j == 0)
}

func TestInitialAllowsEverything(t *testing.T) {
	f := Build(3, testCommute)
	for c := 0; c < 3; c++ {
		_, ok := f.NextState(Initial, c)
		require.True(t, ok, "class %d should be allowed at the initial state", c)
	}
}

func TestNoImmediateRepeat(t *testing.T) {
	f := Build(3, testCommute)
	state, ok := f.NextState(Initial, 0)
	require.True(t, ok)
	_, ok = f.NextState(state, 0)
	require.False(t, ok, "class 0 must not immediately repeat")
}

func TestCommutingClassesRequireIncreasingOrder(t *testing.T) {
	f := Build(3, testCommute)
	afterD, ok := f.NextState(Initial, 1)
	require.True(t, ok)
	_, ok = f.NextState(afterD, 0)
	require.False(t, ok, "class 0 must not follow class 1 when they commute and 0 < 1")

	afterU, ok := f.NextState(Initial, 0)
	require.True(t, ok)
	_, ok = f.NextState(afterU, 1)
	require.True(t, ok, "class 1 may follow class 0 when they commute and 1 > 0")
}

func TestNonCommutingClassCanReappear(t *testing.T) {
	f := Build(3, testCommute)
	afterU, ok := f.NextState(Initial, 0)
	require.True(t, ok)
	afterUF, ok := f.NextState(afterU, 2)
	require.True(t, ok)
	// Class 0 does not commute with class 2, so it is allowed to
	// reappear once something else has intervened.
	_, ok = f.NextState(afterUF, 0)
	require.True(t, ok)
}

func TestAllowedClassesIterates(t *testing.T) {
	f := Build(3, testCommute)
	mask := f.AllowedClasses(Initial)
	require.EqualValues(t, 3, mask.Count())
}

func TestReverseAllowedRejectsSameClassAsRoot(t *testing.T) {
	f := Build(3, testCommute)
	root := f.ReverseState(0)
	require.False(t, f.ReverseAllowed(root, 0))
	require.True(t, f.ReverseAllowed(root, 1))
	require.True(t, f.ReverseAllowed(root, 2))
}
