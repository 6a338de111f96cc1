package orbit

import (
	"errors"
	"fmt"
)

// Sentinel errors for orbit construction and validation.
var (
	// ErrZeroPieceCount indicates an OrbitDef was built with piece_count == 0.
	ErrZeroPieceCount = errors.New("orbit: piece count must be nonzero")

	// ErrZeroOrientationCount indicates an OrbitDef was built with
	// orientation_count == 0.
	ErrZeroOrientationCount = errors.New("orbit: orientation count must be nonzero")

	// ErrPieceCountTooLarge indicates a piece count exceeding 255, the
	// maximum a single byte in the flat orbit-state layout can address.
	ErrPieceCountTooLarge = errors.New("orbit: piece count exceeds 255")

	// ErrMismatchedBrand indicates two values passed to the same call were
	// not derived from the same sorted-orbit ordering (see Brand).
	ErrMismatchedBrand = errors.New("orbit: values come from different puzzle definitions")
)

// OrbitDef is a pair (piece_count, orientation_count). Both fields are
// nonzero; piece_count never exceeds 255 so that a piece index fits one
// byte, and exact hashing (ExactHasherOrbit) additionally requires
// piece_count <= 19.
type OrbitDef struct {
	PieceCount       uint8
	OrientationCount uint8
}

// NewOrbitDef validates and constructs an OrbitDef.
func NewOrbitDef(pieceCount, orientationCount int) (OrbitDef, error) {
	if pieceCount <= 0 {
		return OrbitDef{}, ErrZeroPieceCount
	}
	if pieceCount > 255 {
		return OrbitDef{}, fmt.Errorf("%w: got %d", ErrPieceCountTooLarge, pieceCount)
	}
	if orientationCount <= 0 {
		return OrbitDef{}, ErrZeroOrientationCount
	}
	return OrbitDef{
		PieceCount:       uint8(pieceCount),
		OrientationCount: uint8(orientationCount),
	}, nil
}

// Less implements the repo-wide canonical ordering: ascending by
// (piece_count, orientation_count).
func (d OrbitDef) Less(other OrbitDef) bool {
	if d.PieceCount != other.PieceCount {
		return d.PieceCount < other.PieceCount
	}
	return d.OrientationCount < other.OrientationCount
}

// StateLen returns the number of bytes one orbit occupies in a flat
// puzzle-state buffer: piece_count permutation bytes plus piece_count
// orientation bytes.
func (d OrbitDef) StateLen() int {
	return int(d.PieceCount) * 2
}

// brandToken is an unexported, uniquely-allocated value. Its address is the
// only thing that matters: two Brands compare equal iff they point at the
// same token, i.e. iff they were minted by the same call to NewBrand.
type brandToken struct{}

// Brand is a runtime-checked substitute for the source implementation's
// generativity lifetime. Every SortedOrbitDefs, and every puzzle state and
// cycle structure built against it, carries the same Brand. The state
// methods in slicepuzzle and cube3 that combine two such values assert the
// brands match before touching the data, and the solver checks them at
// construction, so that a puzzle state from one PuzzleDef can never be
// silently composed with one from another. The byte-level Compose, Inverse
// and InducesCycle in this package take no Brand and check nothing.
type Brand struct {
	tok *brandToken
}

// NewBrand mints a fresh Brand, distinct from every other Brand ever
// minted in the process. Call once per loaded puzzle definition.
func NewBrand() Brand {
	return Brand{tok: new(brandToken)}
}

// Same reports whether b and other were minted by the same NewBrand call.
func (b Brand) Same(other Brand) bool {
	return b.tok == other.tok
}

// MustSame panics with ErrMismatchedBrand if b and other differ. It is the
// runtime analog of the compile-time brand check the source performs with
// generativity lifetimes; the cross-referencing state methods in
// slicepuzzle and cube3 call it first (the solver uses Same and returns an
// error instead).
func MustSame(a, b Brand) {
	if !a.Same(b) {
		panic(ErrMismatchedBrand)
	}
}

// SortedOrbitDefs is the repo-wide canonical ordering of a puzzle's orbits,
// sorted ascending by (piece_count, orientation_count). It is produced once
// by the ksolve loader and shared, by reference, with every puzzle state,
// move, and cycle structure built from the same PuzzleDef.
type SortedOrbitDefs struct {
	Defs  []OrbitDef
	Brand Brand
}

// NewSortedOrbitDefs mints a fresh Brand and wraps already-sorted defs.
// Callers (the ksolve loader) are responsible for sorting defs first; this
// constructor does not re-sort, since doing so would silently invalidate
// any generator-vector remapping already performed against the input order.
func NewSortedOrbitDefs(defs []OrbitDef) SortedOrbitDefs {
	return SortedOrbitDefs{Defs: defs, Brand: NewBrand()}
}

// StateLen returns the total number of bytes a puzzle state buffer needs
// across all orbits.
func (s SortedOrbitDefs) StateLen() int {
	total := 0
	for _, d := range s.Defs {
		total += d.StateLen()
	}
	return total
}

// Base returns the byte offset of orbit index i within a flat state buffer.
func (s SortedOrbitDefs) Base(i int) int {
	base := 0
	for j := 0; j < i; j++ {
		base += s.Defs[j].StateLen()
	}
	return base
}
