package ksolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// A tiny 2-set puzzle: a 3-cycle orbit (no orientation) and a 2-piece
// flip orbit, with one generator per orbit and one that touches both.
const tinyPuzzle = `
Name tiny
Set Trio 3 1
Set Pair 2 2
Move cycle
Trio
2 3 1
0 0 0
Pair
1 2
0 0
End
Move flip
Trio
1 2 3
0 0 0
Pair
2 1
1 1
End
`

func TestLoadValidPuzzle(t *testing.T) {
	def, err := Load(strings.NewReader(tinyPuzzle))
	require.NoError(t, err)
	require.Equal(t, "tiny", def.Name)
	require.Len(t, def.OrbitDefs.Defs, 2)
	// "cycle" has order 3 and expands to two moves ("cycle", "cycle'");
	// "flip" has order 2 and expands to one ("flip", power 1 has no
	// separate inverse notation). 3 moves total, not 2 declared generators.
	require.Len(t, def.Moves, 3)

	cycle, ok := def.MoveByName("cycle")
	require.True(t, ok)
	require.Equal(t, 3, cycle.Order)

	cycleInv, ok := def.MoveByName("cycle'")
	require.True(t, ok)
	require.Equal(t, 3, cycleInv.Order)
	require.Equal(t, cycle.Class, cycleInv.Class)

	flip, ok := def.MoveByName("flip")
	require.True(t, ok)
	require.Equal(t, 2, flip.Order)
	require.NotEqual(t, cycle.Class, flip.Class)
}

func TestLoadRejectsSetCountMismatch(t *testing.T) {
	bad := `
Name bad
Set Trio 3 1
Move cycle
Trio
2 3 1
0 0 0
End
Set Pair 2 2
`
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadRejectsNonBijectivePermutation(t *testing.T) {
	bad := `
Name bad
Set Trio 3 1
Move broken
Trio
1 1 3
0 0 0
End
`
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrNonBijectivePermutation)
}

func TestLoadRejectsOrientationDeltaOutOfRange(t *testing.T) {
	bad := `
Name bad
Set Pair 2 2
Move broken
Pair
1 2
0 5
End
`
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrOrientationDeltaOutOfRange)
}

func TestLoadRejectsDuplicateMoveName(t *testing.T) {
	bad := `
Name bad
Set Pair 2 2
Move same
Pair
1 2
0 0
End
Move same
Pair
2 1
1 1
End
`
	_, err := Load(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestLoadRejectsGeneratorOrderExceeded(t *testing.T) {
	bad := `
Name bad
Set Pair 2 2
Move flip
Pair
2 1
1 1
End
`
	_, err := Load(strings.NewReader(bad), WithMaxGeneratorOrder(1))
	require.ErrorIs(t, err, ErrGeneratorOrderExceeded)
}

func TestWithMaxGeneratorOrderPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() {
		WithMaxGeneratorOrder(0)
	})
}
