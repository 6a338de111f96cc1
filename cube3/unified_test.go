package cube3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdentityComposeIsNoOp(t *testing.T) {
	defs := OrbitDefs()
	id := UnifiedIdentity(defs)
	cp, co, ep, eo := testF()
	move := UnifiedFromOrbitBytes(cp, co, ep, eo, defs)

	got := UnifiedIdentity(defs)
	got.ReplaceCompose(id, move, defs)
	require.True(t, got.Equal(move))
}

func TestUnifiedReplaceInverseRoundTrip(t *testing.T) {
	defs := OrbitDefs()
	cp, co, ep, eo := testF()
	move := UnifiedFromOrbitBytes(cp, co, ep, eo, defs)

	inv := UnifiedIdentity(defs)
	inv.ReplaceInverse(move, defs)

	product := UnifiedIdentity(defs)
	product.ReplaceCompose(move, inv, defs)
	require.True(t, product.Equal(UnifiedIdentity(defs)))
}

func TestUnifiedFHasOrderFour(t *testing.T) {
	defs := OrbitDefs()
	cp, co, ep, eo := testF()
	move := UnifiedFromOrbitBytes(cp, co, ep, eo, defs)

	cur := move
	for i := 1; i < 4; i++ {
		next := UnifiedIdentity(defs)
		next.ReplaceCompose(cur, move, defs)
		cur = next
		require.False(t, cur.Equal(UnifiedIdentity(defs)), "F should not return to identity before the 4th application")
	}
	fourth := UnifiedIdentity(defs)
	fourth.ReplaceCompose(cur, move, defs)
	require.True(t, fourth.Equal(UnifiedIdentity(defs)))
}

func TestUnifiedCloneIsIndependent(t *testing.T) {
	defs := OrbitDefs()
	cp, co, ep, eo := testF()
	move := UnifiedFromOrbitBytes(cp, co, ep, eo, defs)

	clone := move.Clone()
	id := UnifiedIdentity(defs)
	clone.ReplaceCompose(id, id, defs)
	require.True(t, move.Equal(UnifiedFromOrbitBytes(cp, co, ep, eo, defs)), "mutating the clone must not affect the original")
}

// TestUnifiedMatchesPairedAcrossCompose checks the two layouts agree: the
// same generator applied in both representations must induce the same
// orbit bytes, so either can back the same search without changing which
// cycle structures are reachable.
func TestUnifiedMatchesPairedAcrossCompose(t *testing.T) {
	defs := OrbitDefs()
	cp, co, ep, eo := testF()

	paired := FromOrbitBytes(cp, co, ep, eo, defs)
	unified := UnifiedFromOrbitBytes(cp, co, ep, eo, defs)

	pairedSq := Identity(defs)
	pairedSq.ReplaceCompose(paired, paired, defs)
	unifiedSq := UnifiedIdentity(defs)
	unifiedSq.ReplaceCompose(unified, unified, defs)

	pCornersPerm, pCornersOri := pairedSq.OrbitBytes(0, defs)
	uCornersPerm, uCornersOri := unifiedSq.OrbitBytes(0, defs)
	require.Equal(t, pCornersPerm, uCornersPerm)
	require.Equal(t, pCornersOri, uCornersOri)

	pEdgesPerm, pEdgesOri := pairedSq.OrbitBytes(1, defs)
	uEdgesPerm, uEdgesOri := unifiedSq.OrbitBytes(1, defs)
	require.Equal(t, pEdgesPerm, uEdgesPerm)
	require.Equal(t, pEdgesOri, uEdgesOri)
}
