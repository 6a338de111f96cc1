package pruning

import (
	"fmt"

	"github.com/qter-dev/ccs/orbit"
)

// Tables aggregates one Table per orbit, in the same order as the
// puzzle's SortedOrbitDefs, and computes the combined admissible
// heuristic spec.md §4.6 defines.
type Tables struct {
	perOrbit []Table
}

// NewTables wraps one already-built Table per orbit. len(perOrbit) must
// equal the puzzle's orbit count; callers (the solver's setup path) are
// responsible for building or loading each orbit's table first.
func NewTables(perOrbit []Table) *Tables {
	return &Tables{perOrbit: perOrbit}
}

// AdmissibleHeuristic returns the maximum, across all orbits, of that
// orbit's table distance for the given per-orbit hashes. The max (rather
// than sum) is what keeps the combined estimate admissible: fixing every
// orbit simultaneously can never take fewer moves than fixing the single
// hardest orbit alone, but summing independent per-orbit lower bounds
// would double-count moves that happen to fix more than one orbit at once.
func (t *Tables) AdmissibleHeuristic(hashes []uint64) uint8 {
	var best uint8
	for i, h := range hashes {
		if i >= len(t.perOrbit) {
			break
		}
		if d := t.perOrbit[i].Lookup(h); d > best {
			best = d
		}
	}
	return best
}

// Orbit returns the Table for orbitIndex.
func (t *Tables) Orbit(orbitIndex int) (Table, error) {
	if orbitIndex < 0 || orbitIndex >= len(t.perOrbit) {
		return nil, fmt.Errorf("pruning: orbit index %d out of range [0,%d)", orbitIndex, len(t.perOrbit))
	}
	return t.perOrbit[orbitIndex], nil
}

// Len returns the number of orbit tables aggregated.
func (t *Tables) Len() int { return len(t.perOrbit) }

// BuildAll builds one Table per orbit in defs, using generators (the
// orbit-projected move set for each orbit index, in the same order) and
// targets (the per-orbit cycle structure each table searches for), with a
// uniform backend and per-orbit budget. It is the common case the solver's
// setup path uses; callers needing per-orbit backend choices (some orbits
// exact, some approximate) should call Build directly per orbit instead.
func BuildAll(defs orbit.SortedOrbitDefs, generators [][][]byte, targets [][]orbit.CycleEntry, backend Backend, budgetBytesPerOrbit uint64) (*Tables, error) {
	if len(generators) != len(defs.Defs) || len(targets) != len(defs.Defs) {
		return nil, fmt.Errorf("pruning: BuildAll requires one generator set and target per orbit (got %d orbits, %d generator sets, %d targets)", len(defs.Defs), len(generators), len(targets))
	}
	perOrbit := make([]Table, len(defs.Defs))
	for i, def := range defs.Defs {
		table, err := Build(def, generators[i], targets[i], backend, budgetBytesPerOrbit, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("pruning: building table for orbit %d: %w", i, err)
		}
		perOrbit[i] = table
	}
	return NewTables(perOrbit), nil
}
