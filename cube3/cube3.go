package cube3

import (
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

const (
	edgeCount    = 12
	edgeOris     = 2
	cornerCount  = 8
	cornerOris   = 3
	edgeLaneLen  = edgeCount * 2
	cornerLane   = cornerCount * 2
)

// EdgesDef and CornersDef are the two fixed orbit definitions every PairedCube3
// value is defined over, in canonical sorted order: ascending by
// piece_count puts corners (8 pieces) before edges (12 pieces), so orbit
// index 0 is always corners and orbit index 1 is always edges.
var (
	CornersDef = orbit.OrbitDef{PieceCount: cornerCount, OrientationCount: cornerOris}
	EdgesDef   = orbit.OrbitDef{PieceCount: edgeCount, OrientationCount: edgeOris}
)

// OrbitDefs is the shared orbit.SortedOrbitDefs every PairedCube3 value in one
// search is branded against.
func OrbitDefs() orbit.SortedOrbitDefs {
	return orbit.NewSortedOrbitDefs([]orbit.OrbitDef{CornersDef, EdgesDef})
}

// PairedCube3 is a 3x3x3 cube state: a corners lane followed by an edges lane,
// each permutation bytes then orientation bytes, matching OrbitDefs'
// order.
type PairedCube3 struct {
	corners [cornerLane]byte
	edges   [edgeLaneLen]byte
	brand   orbit.Brand
}

// Every puzzlestate.State[*PairedCube3] method takes a *PairedCube3 receiver, and every
// parameter that names the state type is *PairedCube3 too — not just the
// mutating methods. Unlike slicepuzzle.Buffer, whose backing array is
// reached through a slice header that copies by reference, PairedCube3 holds its
// lanes as plain fixed-size arrays: a value receiver would let the
// mutating methods silently fail to write back to the caller's state, so
// the whole method set is kept on the pointer for one consistent
// generic-instantiation story (History[*PairedCube3], solver use *PairedCube3 as S,
// never PairedCube3).
var _ puzzlestate.State[*PairedCube3] = &PairedCube3{}

// Identity returns the solved cube.
func Identity(orbitDefs orbit.SortedOrbitDefs) *PairedCube3 {
	c := &PairedCube3{brand: orbitDefs.Brand}
	orbit.Identity(c.corners[:], CornersDef)
	orbit.Identity(c.edges[:], EdgesDef)
	return c
}

// FromOrbitBytes builds a PairedCube3 from (corners perm, corners ori, edges
// perm, edges ori).
func FromOrbitBytes(cornersPerm, cornersOri, edgesPerm, edgesOri []byte, orbitDefs orbit.SortedOrbitDefs) *PairedCube3 {
	c := &PairedCube3{brand: orbitDefs.Brand}
	copy(c.corners[:cornerCount], cornersPerm)
	copy(c.corners[cornerCount:], cornersOri)
	copy(c.edges[:edgeCount], edgesPerm)
	copy(c.edges[edgeCount:], edgesOri)
	return c
}

func (c *PairedCube3) Clone() *PairedCube3 {
	cp := *c
	return &cp
}

func (c *PairedCube3) Equal(other *PairedCube3) bool {
	return c.corners == other.corners && c.edges == other.edges
}

func (dst *PairedCube3) ReplaceCompose(a, b *PairedCube3, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)
	orbit.MustSame(b.brand, orbitDefs.Brand)
	orbit.Compose(dst.corners[:], a.corners[:], b.corners[:], CornersDef)
	orbit.Compose(dst.edges[:], a.edges[:], b.edges[:], EdgesDef)
}

// ReplaceInverse writes the direct per-piece inverse of a into the
// receiver. Equivalent to, but cheaper for a single call than,
// ExponentiateInverse.
func (dst *PairedCube3) ReplaceInverse(a *PairedCube3, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)
	orbit.Inverse(dst.corners[:], a.corners[:], CornersDef)
	orbit.Inverse(dst.edges[:], a.edges[:], EdgesDef)
}

func (c *PairedCube3) InducesSortedCycleStructure(target puzzlestate.SortedCycleStructure, orbitDefs orbit.SortedOrbitDefs, scratch puzzlestate.Scratch) bool {
	orbit.MustSame(c.brand, orbitDefs.Brand)
	orbit.MustSame(target.Brand, orbitDefs.Brand)
	if !orbit.InducesCycleScratch(c.corners[:], target.Orbits[0], CornersDef, scratch[:orbit.ScratchLen(CornersDef.PieceCount)]) {
		return false
	}
	return orbit.InducesCycleScratch(c.edges[:], target.Orbits[1], EdgesDef, scratch[:orbit.ScratchLen(EdgesDef.PieceCount)])
}

// OrbitBytes returns the (perm, ori) view for orbitIndex 0 (corners) or 1
// (edges).
func (c *PairedCube3) OrbitBytes(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (perm, ori []byte) {
	orbit.MustSame(c.brand, orbitDefs.Brand)
	switch orbitIndex {
	case 0:
		return c.corners[:cornerCount], c.corners[cornerCount:]
	case 1:
		return c.edges[:edgeCount], c.edges[edgeCount:]
	default:
		panic("cube3: orbit index out of range")
	}
}

func (c *PairedCube3) ExactHasherOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (uint64, error) {
	perm, ori := c.OrbitBytes(orbitIndex, orbitDefs)
	def := CornersDef
	if orbitIndex == 1 {
		def = EdgesDef
	}
	return orbit.ExactHasherOrbit(perm, ori, def)
}

func (c *PairedCube3) ApproximateHashOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) uint64 {
	perm, ori := c.OrbitBytes(orbitIndex, orbitDefs)
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, b := range perm {
		h ^= uint64(b)
		h *= prime64
	}
	for _, b := range ori {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}
