package cube3

import (
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

// unifiedLaneLen is the 256-bit lane spec.md §4.3's "unified" layout packs
// both orbits into: a 16-byte region for edges (12 pieces + 4 padding
// slots) followed by a 16-byte region for corners (8 pieces + 8 padding
// slots).
const (
	unifiedLaneLen     = 2 * (edgeRegionLen)
	edgeRegionLen      = 16
	cornerRegionLen    = 16
	edgeRegionOffset   = 0
	cornerRegionOffset = edgeRegionLen
)

// UnifiedCube3 is the second of spec.md §4.3's two 3x3x3-specialized
// layouts: PairedCube3 keeps corners and edges in separate lanes, each
// with permutation bytes and orientation bytes in separate ranges;
// UnifiedCube3 instead packs every piece's index and orientation into a
// single byte (low nibble piece index, next two bits orientation) inside
// one combined 256-bit lane, edges in the low half, corners in the high
// half. Slots past a region's piece count hold their own index (identity
// padding), matching spec.md's "a byte-permute intrinsic is a no-op on
// them" requirement for the slots a real move never touches.
//
// Go has no portable byte-permute intrinsic outside assembly, so unlike
// the source's AVX2 lane, Compose/Inverse here unpack to plain (perm,
// ori) byte slices, delegate to orbit.Compose/orbit.Inverse, and repack —
// the storage shape matches the spec exactly, the arithmetic is ordinary
// Go rather than a vector instruction.
type UnifiedCube3 struct {
	lane  [unifiedLaneLen]byte
	brand orbit.Brand
}

var _ puzzlestate.State[*UnifiedCube3] = &UnifiedCube3{}

func packByte(piece, ori byte) byte {
	return (piece & 0x0F) | ((ori & 0x03) << 4)
}

func unpackPiece(b byte) byte { return b & 0x0F }
func unpackOri(b byte) byte   { return (b >> 4) & 0x03 }

// UnifiedIdentity returns the solved cube in unified layout.
func UnifiedIdentity(orbitDefs orbit.SortedOrbitDefs) *UnifiedCube3 {
	c := &UnifiedCube3{brand: orbitDefs.Brand}
	for i := 0; i < edgeRegionLen; i++ {
		if i < edgeCount {
			c.lane[edgeRegionOffset+i] = packByte(byte(i), 0)
		} else {
			c.lane[edgeRegionOffset+i] = byte(i)
		}
	}
	for i := 0; i < cornerRegionLen; i++ {
		if i < cornerCount {
			c.lane[cornerRegionOffset+i] = packByte(byte(i), 0)
		} else {
			c.lane[cornerRegionOffset+i] = byte(i)
		}
	}
	return c
}

// UnifiedFromOrbitBytes builds a UnifiedCube3 from (corners perm, corners
// ori, edges perm, edges ori) — the same argument shape FromOrbitBytes
// takes for PairedCube3.
func UnifiedFromOrbitBytes(cornersPerm, cornersOri, edgesPerm, edgesOri []byte, orbitDefs orbit.SortedOrbitDefs) *UnifiedCube3 {
	c := UnifiedIdentity(orbitDefs)
	for i := 0; i < edgeCount; i++ {
		c.lane[edgeRegionOffset+i] = packByte(edgesPerm[i], edgesOri[i])
	}
	for i := 0; i < cornerCount; i++ {
		c.lane[cornerRegionOffset+i] = packByte(cornersPerm[i], cornersOri[i])
	}
	return c
}

// unpackRegion returns the (perm, ori) byte slices the region starting at
// offset, covering pieceCount pieces, currently encodes.
func (c *UnifiedCube3) unpackRegion(offset, pieceCount int) (perm, ori []byte) {
	perm = make([]byte, pieceCount)
	ori = make([]byte, pieceCount)
	for i := 0; i < pieceCount; i++ {
		b := c.lane[offset+i]
		perm[i] = unpackPiece(b)
		ori[i] = unpackOri(b)
	}
	return perm, ori
}

func (c *UnifiedCube3) repackRegion(offset, pieceCount int, perm, ori []byte) {
	for i := 0; i < pieceCount; i++ {
		c.lane[offset+i] = packByte(perm[i], ori[i])
	}
}

func (c *UnifiedCube3) Clone() *UnifiedCube3 {
	cp := *c
	return &cp
}

func (c *UnifiedCube3) Equal(other *UnifiedCube3) bool {
	return c.lane == other.lane
}

// composeRegion writes a∘b for one region (corners or edges) of dst,
// unpacking both operands, delegating to orbit.Compose, and repacking.
func composeRegion(dst, a, b *UnifiedCube3, offset, pieceCount int, def orbit.OrbitDef) {
	aPerm, aOri := a.unpackRegion(offset, pieceCount)
	bPerm, bOri := b.unpackRegion(offset, pieceCount)
	aBuf := make([]byte, pieceCount*2)
	copy(aBuf, aPerm)
	copy(aBuf[pieceCount:], aOri)
	bBuf := make([]byte, pieceCount*2)
	copy(bBuf, bPerm)
	copy(bBuf[pieceCount:], bOri)
	rBuf := make([]byte, pieceCount*2)
	orbit.Compose(rBuf, aBuf, bBuf, def)
	dst.repackRegion(offset, pieceCount, rBuf[:pieceCount], rBuf[pieceCount:])
}

func (dst *UnifiedCube3) ReplaceCompose(a, b *UnifiedCube3, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)
	orbit.MustSame(b.brand, orbitDefs.Brand)
	composeRegion(dst, a, b, cornerRegionOffset, cornerCount, CornersDef)
	composeRegion(dst, a, b, edgeRegionOffset, edgeCount, EdgesDef)
}

func (dst *UnifiedCube3) ReplaceInverse(a *UnifiedCube3, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)

	cornersPerm, cornersOri := a.unpackRegion(cornerRegionOffset, cornerCount)
	aCorners := make([]byte, cornerCount*2)
	copy(aCorners, cornersPerm)
	copy(aCorners[cornerCount:], cornersOri)
	rCorners := make([]byte, cornerCount*2)
	orbit.Inverse(rCorners, aCorners, CornersDef)
	dst.repackRegion(cornerRegionOffset, cornerCount, rCorners[:cornerCount], rCorners[cornerCount:])

	edgesPerm, edgesOri := a.unpackRegion(edgeRegionOffset, edgeCount)
	aEdges := make([]byte, edgeCount*2)
	copy(aEdges, edgesPerm)
	copy(aEdges[edgeCount:], edgesOri)
	rEdges := make([]byte, edgeCount*2)
	orbit.Inverse(rEdges, aEdges, EdgesDef)
	dst.repackRegion(edgeRegionOffset, edgeCount, rEdges[:edgeCount], rEdges[edgeCount:])
}

func (c *UnifiedCube3) InducesSortedCycleStructure(target puzzlestate.SortedCycleStructure, orbitDefs orbit.SortedOrbitDefs, scratch puzzlestate.Scratch) bool {
	orbit.MustSame(c.brand, orbitDefs.Brand)
	orbit.MustSame(target.Brand, orbitDefs.Brand)

	cornersPerm, cornersOri := c.unpackRegion(cornerRegionOffset, cornerCount)
	corners := make([]byte, cornerCount*2)
	copy(corners, cornersPerm)
	copy(corners[cornerCount:], cornersOri)
	if !orbit.InducesCycleScratch(corners, target.Orbits[0], CornersDef, scratch[:orbit.ScratchLen(CornersDef.PieceCount)]) {
		return false
	}

	edgesPerm, edgesOri := c.unpackRegion(edgeRegionOffset, edgeCount)
	edges := make([]byte, edgeCount*2)
	copy(edges, edgesPerm)
	copy(edges[edgeCount:], edgesOri)
	return orbit.InducesCycleScratch(edges, target.Orbits[1], EdgesDef, scratch[:orbit.ScratchLen(EdgesDef.PieceCount)])
}

// OrbitBytes returns the (perm, ori) view for orbitIndex 0 (corners) or 1
// (edges), unpacked from the combined lane into freshly allocated slices
// (unlike PairedCube3's zero-copy sub-slices — the packed layout has no
// contiguous perm-then-ori range to slice directly).
func (c *UnifiedCube3) OrbitBytes(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (perm, ori []byte) {
	orbit.MustSame(c.brand, orbitDefs.Brand)
	switch orbitIndex {
	case 0:
		return c.unpackRegion(cornerRegionOffset, cornerCount)
	case 1:
		return c.unpackRegion(edgeRegionOffset, edgeCount)
	default:
		panic("cube3: orbit index out of range")
	}
}

func (c *UnifiedCube3) ExactHasherOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (uint64, error) {
	perm, ori := c.OrbitBytes(orbitIndex, orbitDefs)
	def := CornersDef
	if orbitIndex == 1 {
		def = EdgesDef
	}
	return orbit.ExactHasherOrbit(perm, ori, def)
}

func (c *UnifiedCube3) ApproximateHashOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) uint64 {
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
