package orbit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeIdentity(t *testing.T) {
	def := OrbitDef{PieceCount: 5, OrientationCount: 3}
	a := []byte{2, 0, 4, 1, 3, 1, 0, 2, 0, 1}
	id := make([]byte, def.StateLen())
	Identity(id, def)

	got := make([]byte, def.StateLen())
	Compose(got, id, a, def)
	require.Equal(t, a, got, "compose(identity, a) == a")

	Compose(got, a, id, def)
	require.Equal(t, a, got, "compose(a, identity) == a")
}

func TestInverseRoundTrip(t *testing.T) {
	def := OrbitDef{PieceCount: 5, OrientationCount: 3}
	a := []byte{2, 0, 4, 1, 3, 1, 0, 2, 0, 1}

	inv := make([]byte, def.StateLen())
	Inverse(inv, a, def)

	id := make([]byte, def.StateLen())
	Identity(id, def)

	got := make([]byte, def.StateLen())
	Compose(got, a, inv, def)
	require.Equal(t, id, got, "compose(a, inverse(a)) == identity")

	Compose(got, inv, a, def)
	require.Equal(t, id, got, "compose(inverse(a), a) == identity")
}

func TestInverseOrientationCountOne(t *testing.T) {
	def := OrbitDef{PieceCount: 4, OrientationCount: 1}
	a := []byte{3, 1, 0, 2, 0, 0, 0, 0}
	inv := make([]byte, def.StateLen())
	Inverse(inv, a, def)
	for i := 4; i < 8; i++ {
		require.Zero(t, inv[i])
	}
}
