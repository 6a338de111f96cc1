package puzzlestate

import (
	"errors"
	"fmt"

	"github.com/qter-dev/ccs/orbit"
)

// Sentinel errors for SortedCycleStructure construction.
var (
	// ErrOrbitCountMismatch indicates a cycle structure was built with a
	// different number of per-orbit entries than the puzzle has orbits.
	ErrOrbitCountMismatch = errors.New("puzzlestate: cycle structure orbit count does not match puzzle")

	// ErrTooManyPieces indicates an orbit's cycle entries sum to more
	// pieces than that orbit actually has.
	ErrTooManyPieces = errors.New("puzzlestate: cycle structure uses more pieces than the orbit has")

	// ErrZeroLengthCycle indicates a CycleEntry with Length == 0 was
	// supplied; zero-length cycles are meaningless.
	ErrZeroLengthCycle = errors.New("puzzlestate: cycle structure contains a zero-length cycle")
)

// State is the polymorphic puzzle-state contract every search algorithm in
// this module is generic over. S is the concrete representation
// implementing State[S] (slicepuzzle's Buffer, or one of cube3's two
// specializations) — the self-referential type parameter lets methods like
// ReplaceCompose take same-typed operands without an interface-to-interface
// type assertion on every call.
type State[S any] interface {
	// Clone returns an independent copy of the receiver.
	Clone() S

	// ReplaceCompose composes a then b in place into the receiver:
	// receiver = a . b. orbitDefs must share a Brand with every puzzle
	// state involved.
	ReplaceCompose(a, b S, orbitDefs orbit.SortedOrbitDefs)

	// ReplaceInverse writes the inverse of a into the receiver.
	ReplaceInverse(a S, orbitDefs orbit.SortedOrbitDefs)

	// Equal reports whether the receiver and other hold the same state.
	Equal(other S) bool

	// InducesSortedCycleStructure reports whether the receiver's cycle
	// decomposition matches target, orbit by orbit. scratch must be sized
	// by NewScratch(orbitDefs) and is clobbered on every call; reusing one
	// scratch buffer across the search keeps the leaf-node test
	// allocation-free.
	InducesSortedCycleStructure(target SortedCycleStructure, orbitDefs orbit.SortedOrbitDefs, scratch Scratch) bool

	// OrbitBytes returns the (permutation, orientation) byte views for the
	// orbit at orbitIndex (an index into orbitDefs.Defs, in sorted order).
	OrbitBytes(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (perm, ori []byte)

	// ExactHasherOrbit ranks the orbit at orbitIndex into
	// [0, piece_count! * orientation_count^(piece_count-1)).
	ExactHasherOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) (uint64, error)

	// ApproximateHashOrbit returns a cheaply-hashable value for the orbit
	// at orbitIndex, for use by approximate pruning-table backends that
	// cannot afford an exact factorial-base rank (spec.md §3's
	// "Approximate: sparse or minimum-of-two" backend).
	ApproximateHashOrbit(orbitIndex int, orbitDefs orbit.SortedOrbitDefs) uint64
}

// Scratch is the reusable multi-bit-vector buffer InducesSortedCycleStructure
// needs. Its size depends only on the largest orbit (the last one, since
// orbits are sorted ascending by piece count), matching the source's
// default_multi_bv_slice sizing.
type Scratch []byte

// NewScratch allocates a Scratch sized for orbitDefs.
func NewScratch(orbitDefs orbit.SortedOrbitDefs) Scratch {
	if len(orbitDefs.Defs) == 0 {
		return nil
	}
	largest := orbitDefs.Defs[len(orbitDefs.Defs)-1]
	return make(Scratch, orbit.ScratchLen(largest.PieceCount))
}

// SortedCycleStructure is, per orbit (in the same sorted order as
// orbit.SortedOrbitDefs), the sorted list of (cycle_length, oriented) pairs
// a solved search must induce. It shares the Brand of the SortedOrbitDefs
// it was validated against.
type SortedCycleStructure struct {
	Orbits [][]orbit.CycleEntry
	Brand  orbit.Brand
}

// NewSortedCycleStructure validates orbits against orbitDefs (same orbit
// count, no zero-length cycles, no orbit's cycles summing to more pieces
// than it has), drops (length 1, unoriented) entries, sorts each orbit's
// entries, and returns a
// SortedCycleStructure branded to match.
func NewSortedCycleStructure(orbits [][]orbit.CycleEntry, orbitDefs orbit.SortedOrbitDefs) (SortedCycleStructure, error) {
	if len(orbits) != len(orbitDefs.Defs) {
		return SortedCycleStructure{}, fmt.Errorf("%w: expected %d, got %d", ErrOrbitCountMismatch, len(orbitDefs.Defs), len(orbits))
	}
	out := make([][]orbit.CycleEntry, len(orbits))
	for i, entries := range orbits {
		var total int
		for _, e := range entries {
			if e.Length == 0 {
				return SortedCycleStructure{}, ErrZeroLengthCycle
			}
			total += int(e.Length)
		}
		if total > int(orbitDefs.Defs[i].PieceCount) {
			return SortedCycleStructure{}, fmt.Errorf("%w: orbit %d expects at most %d pieces, got %d", ErrTooManyPieces, i, orbitDefs.Defs[i].PieceCount, total)
		}
		cp := make([]orbit.CycleEntry, 0, len(entries))
		for _, e := range entries {
			if e.Length == 1 && !e.Oriented {
				continue // a fixed, unoriented piece is no cycle at all.
			}
			cp = append(cp, e)
		}
		orbit.SortCycleEntries(cp)
		out[i] = cp
	}
	return SortedCycleStructure{Orbits: out, Brand: orbitDefs.Brand}, nil
}

// IsIdentity reports whether every orbit's cycle list is empty — the
// target describing the identity permutation.
func (s SortedCycleStructure) IsIdentity() bool {
	for _, entries := range s.Orbits {
		if len(entries) != 0 {
			return false
		}
	}
	return true
}
