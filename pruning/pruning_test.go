package pruning

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qter-dev/ccs/orbit"
)

// threeCycleDef is a 3-piece, pure-permutation orbit (orientation count 1)
// generated by a single 3-cycle g = (0 1 2), i.e. perm [1,2,0]. g generates
// only the 3 even permutations of S3 (identity, g, g^2); the 3 odd
// permutations (transpositions) are unreachable from this generator set
// alone, which is exactly the "hash index outside the reachable subgroup"
// case Table.Lookup's zero-for-unreached convention exists for.
func threeCycleDef() (orbit.OrbitDef, []byte) {
	def := orbit.OrbitDef{PieceCount: 3, OrientationCount: 1}
	g := []byte{1, 2, 0, 0, 0, 0}
	return def, g
}

func hashOf(perm []byte, def orbit.OrbitDef) uint64 {
	ori := make([]byte, def.PieceCount)
	h, err := orbit.ExactHasherOrbit(perm, ori, def)
	if err != nil {
		panic(err)
	}
	return h
}

func TestBuildExactUncompressedDistances(t *testing.T) {
	def, g := threeCycleDef()
	table, err := Build(def, [][]byte{g}, nil, BackendExactUncompressed, 1<<20, nil, 0)
	require.NoError(t, err)
	require.Equal(t, BackendExactUncompressed, table.Backend())

	idHash := hashOf([]byte{0, 1, 2}, def)
	gHash := hashOf([]byte{1, 2, 0}, def)
	gInvHash := hashOf([]byte{2, 0, 1}, def)
	oddHash := hashOf([]byte{1, 0, 2}, def)

	require.Equal(t, uint8(0), table.Lookup(idHash))
	require.Equal(t, uint8(1), table.Lookup(gInvHash))
	require.Equal(t, uint8(2), table.Lookup(gHash))
	require.Equal(t, uint8(0), table.Lookup(oddHash), "unreached permutation falls back to the safe 0 bound")
}

func TestBuildExactPackedMatchesUncompressed(t *testing.T) {
	def, g := threeCycleDef()
	uncompressed, err := Build(def, [][]byte{g}, nil, BackendExactUncompressed, 1<<20, nil, 0)
	require.NoError(t, err)
	packed, err := Build(def, [][]byte{g}, nil, BackendExactPacked, 1<<20, nil, 0)
	require.NoError(t, err)

	space, err := exactSpace(def)
	require.NoError(t, err)
	for h := uint64(0); h < space; h++ {
		require.Equal(t, uncompressed.Lookup(h), packed.Lookup(h), "hash %d", h)
	}
}

func TestBuildExactBudgetExceeded(t *testing.T) {
	def, g := threeCycleDef()
	_, err := Build(def, [][]byte{g}, nil, BackendExactUncompressed, 2, nil, 0)
	require.ErrorIs(t, err, ErrBudgetExceeded)
}

func TestBuildExactNoGoalStates(t *testing.T) {
	def, g := threeCycleDef()
	impossible := []orbit.CycleEntry{{Length: 3, Oriented: true}} // orientation_count=1 can never be oriented
	_, err := Build(def, [][]byte{g}, impossible, BackendExactUncompressed, 1<<20, nil, 0)
	require.ErrorIs(t, err, ErrNoGoalStates)
}

func TestBuildZeroBackendAlwaysZero(t *testing.T) {
	def, g := threeCycleDef()
	table, err := Build(def, [][]byte{g}, nil, BackendZero, 0, nil, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0), table.Lookup(12345))
}

func TestBuildApproximateFromSeed(t *testing.T) {
	def, g := threeCycleDef()
	id := []byte{0, 1, 2, 0, 0, 0}
	table, err := Build(def, [][]byte{g}, nil, BackendApproximate, 0, [][]byte{id}, 100)
	require.NoError(t, err)
	require.Equal(t, BackendApproximate, table.Backend())

	at := table.(*ApproximateTable)
	require.Equal(t, uint8(0), at.Lookup(fnv1a([]byte{0, 1, 2}, []byte{0, 0, 0})))
	require.Equal(t, uint8(1), at.Lookup(fnv1a([]byte{2, 0, 1}, []byte{0, 0, 0})))
}

func TestBuildApproximateRequiresSeeds(t *testing.T) {
	def, g := threeCycleDef()
	_, err := Build(def, [][]byte{g}, nil, BackendApproximate, 0, nil, 0)
	require.ErrorIs(t, err, ErrNoGoalStates)
}

func TestTablesAdmissibleHeuristicTakesMax(t *testing.T) {
	tables := NewTables([]Table{
		fakeTable{3},
		fakeTable{7},
		fakeTable{1},
	})
	require.Equal(t, uint8(7), tables.AdmissibleHeuristic([]uint64{0, 0, 0}))
}

type fakeTable struct{ d uint8 }

func (f fakeTable) Lookup(uint64) uint8 { return f.d }
func (f fakeTable) Backend() Backend    { return BackendZero }

func TestBuildAllRejectsMismatchedLengths(t *testing.T) {
	defs := orbit.NewSortedOrbitDefs([]orbit.OrbitDef{{PieceCount: 3, OrientationCount: 1}})
	_, err := BuildAll(defs, nil, nil, BackendZero, 0)
	require.Error(t, err)
}

func TestSaveLoadRoundTripExact(t *testing.T) {
	def, g := threeCycleDef()
	original, err := Build(def, [][]byte{g}, nil, BackendExactUncompressed, 1<<20, nil, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, original))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, BackendExactUncompressed, loaded.Backend())

	space, err := exactSpace(def)
	require.NoError(t, err)
	for h := uint64(0); h < space; h++ {
		require.Equal(t, original.Lookup(h), loaded.Lookup(h))
	}
}

func TestSaveLoadRoundTripPacked(t *testing.T) {
	def, g := threeCycleDef()
	original, err := Build(def, [][]byte{g}, nil, BackendExactPacked, 1<<20, nil, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, original))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, BackendExactPacked, loaded.Backend())

	space, err := exactSpace(def)
	require.NoError(t, err)
	for h := uint64(0); h < space; h++ {
		require.Equal(t, original.Lookup(h), loaded.Lookup(h))
	}
}

func TestSaveLoadRoundTripZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, NewZeroTable()))
	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, BackendZero, loaded.Backend())
	require.Equal(t, uint8(0), loaded.Lookup(999))
}

func TestSaveLoadRoundTripApproximate(t *testing.T) {
	at := NewApproximateTable()
	at.Set(42, 3)
	at.Set(7, 1)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, at))
	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, BackendApproximate, loaded.Backend())
	require.Equal(t, uint8(3), loaded.Lookup(42))
	require.Equal(t, uint8(1), loaded.Lookup(7))
	require.Equal(t, uint8(0), loaded.Lookup(999))
}

func TestDecodeOrbitRoundTripsExactHasher(t *testing.T) {
	def := orbit.OrbitDef{PieceCount: 4, OrientationCount: 3}
	perm := []byte{2, 0, 3, 1}
	ori := []byte{1, 2, 0, 0} // sum mod 3 == 0, a valid conserved orientation
	h, err := orbit.ExactHasherOrbit(perm, ori, def)
	require.NoError(t, err)

	buf := decodeOrbit(h, def.PieceCount, def.OrientationCount)
	require.Equal(t, perm, buf[:4])
	require.Equal(t, ori, buf[4:])
}
