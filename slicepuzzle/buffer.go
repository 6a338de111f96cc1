package slicepuzzle

import (
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

// Buffer is a flat byte-slice puzzle state: orbit after orbit, each orbit
// its permutation bytes followed by its orientation bytes, in the order
// given by a orbit.SortedOrbitDefs.
type Buffer struct {
	bytes []byte
	brand orbit.Brand
}

var _ puzzlestate.State[Buffer] = Buffer{}

// Identity returns the identity puzzle state for orbitDefs: every piece
// fixed, every orientation zero.
func Identity(orbitDefs orbit.SortedOrbitDefs) Buffer {
	buf := Buffer{bytes: make([]byte, orbitDefs.StateLen()), brand: orbitDefs.Brand}
	base := 0
	for _, def := range orbitDefs.Defs {
		orbit.Identity(buf.bytes[base:base+def.StateLen()], def)
		base += def.StateLen()
	}
	return buf
}

// FromOrbitBytes builds a Buffer from one flattened (perm, ori) pair per
// orbit, in orbitDefs order. Each entry's perm and ori must each have
// length orbitDefs.Defs[i].PieceCount. This is how the ksolve loader turns
// a parsed generator's per-orbit transformation into a puzzle state.
func FromOrbitBytes(perOrbit [][2][]byte, orbitDefs orbit.SortedOrbitDefs) Buffer {
	buf := Buffer{bytes: make([]byte, orbitDefs.StateLen()), brand: orbitDefs.Brand}
	base := 0
	for i, def := range orbitDefs.Defs {
		n := int(def.PieceCount)
		copy(buf.bytes[base:base+n], perOrbit[i][0])
		copy(buf.bytes[base+n:base+2*n], perOrbit[i][1])
		base += def.StateLen()
	}
	return buf
}

// Clone returns an independent copy of the receiver.
func (b Buffer) Clone() Buffer {
	cp := make([]byte, len(b.bytes))
	copy(cp, b.bytes)
	return Buffer{bytes: cp, brand: b.brand}
}

// Equal reports whether b and other hold the same state bytes.
func (b Buffer) Equal(other Buffer) bool {
	if len(b.bytes) != len(other.bytes) {
		return false
	}
	for i := range b.bytes {
		if b.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// ReplaceCompose writes a . b into the receiver, orbit by orbit.
func (dst Buffer) ReplaceCompose(a, b Buffer, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)
	orbit.MustSame(b.brand, orbitDefs.Brand)
	base := 0
	for _, def := range orbitDefs.Defs {
		n := def.StateLen()
		orbit.Compose(dst.bytes[base:base+n], a.bytes[base:base+n], b.bytes[base:base+n], def)
		base += n
	}
}

// ReplaceInverse writes the inverse of a into the receiver.
func (dst Buffer) ReplaceInverse(a Buffer, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)
	base := 0
	for _, def := range orbitDefs.Defs {
		n := def.StateLen()
		orbit.Inverse(dst.bytes[base:base+n], a.bytes[base:base+n], def)
		base += n
	}
}

// InducesSortedCycleStructure reports whether b's cycle decomposition
// matches target orbit by orbit, reusing scratch across orbits.
func (b Buffer) InducesSortedCycleStructure(target puzzlestate.SortedCycleStructure, orbitDefs orbit.SortedOrbitDefs, scratch puzzlestate.Scratch) bool {
	orbit.MustSame(b.brand, orbitDefs.Brand)
	orbit.MustSame(target.Brand, orbitDefs.Brand)
	base := 0
	for i, def := range orbitDefs.Defs {
		n := def.StateLen()
		if !orbit.InducesCycleScratch(b.bytes[base:base+n], target.Orbits[i], def, scratch[:orbit.ScratchLen(def.PieceCount)]) {
			return false
		}
		base += n
	}
	return true
}

// OrbitBytes returns the (perm, ori) byte views for the orbit at orbitIndex.
func (b Buffer) OrbitBytes(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (perm, ori []byte) {
	orbit.MustSame(b.brand, orbitDefs.Brand)
	def := orbitDefs.Defs[orbitIndex]
	base := orbitDefs.Base(orbitIndex)
	n := int(def.PieceCount)
	return b.bytes[base : base+n], b.bytes[base+n : base+2*n]
}

// ExactHasherOrbit ranks the orbit at orbitIndex exactly.
func (b Buffer) ExactHasherOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (uint64, error) {
	perm, ori := b.OrbitBytes(orbitIndex, orbitDefs)
	return orbit.ExactHasherOrbit(perm, ori, orbitDefs.Defs[orbitIndex])
}

// ApproximateHashOrbit returns the 64-bit FNV-1a hash of the orbit's perm
// then ori bytes, a cheap key for approximate pruning-table backends.
func (b Buffer) ApproximateHashOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) uint64 {
	perm, ori := b.OrbitBytes(orbitIndex, orbitDefs)
	return fnv1a(perm, ori)
}

// fnv1a is a 64-bit FNV-1a hash over perm then ori, used where a
// pruning-table backend needs a cheap approximate key rather than an exact
// factorial-base rank.
func fnv1a(perm, ori []byte) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, by := range perm {
		h ^= uint64(by)
		h *= prime64
	}
	for _, by := range ori {
		h ^= uint64(by)
		h *= prime64
	}
	return h
}
