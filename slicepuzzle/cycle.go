package slicepuzzle

import (
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

// CycleStructure computes the SortedCycleStructure b actually induces,
// orbit by orbit. Not used on the solver's hot path (which only needs to
// test against a known target via InducesSortedCycleStructure), but useful
// for turning an example move sequence into a solver target, e.g. "the
// state after U R U R' induces this cycle structure; find every sequence
// of the same minimal length reaching it."
func CycleStructure(b Buffer, orbitDefs orbit.SortedOrbitDefs) puzzlestate.SortedCycleStructure {
	orbit.MustSame(b.brand, orbitDefs.Brand)
	orbits := make([][]orbit.CycleEntry, len(orbitDefs.Defs))
	base := 0
	for i, def := range orbitDefs.Defs {
		n := def.StateLen()
		orbits[i] = orbit.CycleStructureOf(b.bytes[base:base+n], def)
		base += n
	}
	return puzzlestate.SortedCycleStructure{Orbits: orbits, Brand: orbitDefs.Brand}
}
