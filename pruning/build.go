package pruning

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/qter-dev/ccs/internal/fact"
	"github.com/qter-dev/ccs/orbit"
)

// stateRecord pairs a hash with the raw orbit bytes (perm then ori,
// def.StateLen() long) it decodes to, carried through BFS expansion so
// each layer composes against real bytes instead of re-decoding its
// parent's hash every time.
type stateRecord struct {
	hash  uint64
	bytes []byte
}

// settable is the subset of the exact backends' write surface BFS
// construction needs: Set to record a distance, isSet to tell "never
// visited" apart from "visited at distance 0" (Table.Lookup alone cannot,
// since it translates Unreached to 0).
type settable interface {
	Table
	Set(hash uint64, dist uint8)
	isSet(hash uint64) bool
}

// Build runs the backward breadth-first search described in doc.go and
// returns a Table for def's orbit, targeting cycle structure target.
// generators is the orbit-projected byte view (def.StateLen() bytes each)
// of every move that moves this orbit; Build inverts each internally, since
// the search expands backward from goal states. budgetBytes bounds the
// exact backends' allocation; BackendZero and BackendApproximate ignore it
// (BackendApproximate instead expands outward from seeds up to
// approxMaxStates, since its hash space cannot be enumerated at all).
func Build(def orbit.OrbitDef, generators [][]byte, target []orbit.CycleEntry, backend Backend, budgetBytes uint64, seeds [][]byte, approxMaxStates int) (Table, error) {
	switch backend {
	case BackendZero:
		return NewZeroTable(), nil
	case BackendExactUncompressed, BackendExactPacked:
		return buildExact(def, generators, target, backend, budgetBytes)
	case BackendApproximate:
		return buildApproximate(def, generators, seeds, approxMaxStates)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, backend)
	}
}

func exactSpace(def orbit.OrbitDef) (uint64, error) {
	n := int(def.PieceCount)
	if n > len(fact.Table)-1 {
		return 0, fmt.Errorf("%w: got %d", ErrPieceCountTooLarge, n)
	}
	return fact.Table[n] * pow(uint64(def.OrientationCount), uint64(n-1)), nil
}

func buildExact(def orbit.OrbitDef, generators [][]byte, target []orbit.CycleEntry, backend Backend, budgetBytes uint64) (Table, error) {
	space, err := exactSpace(def)
	if err != nil {
		return nil, err
	}

	var needBytes uint64
	switch backend {
	case BackendExactUncompressed:
		needBytes = space
	case BackendExactPacked:
		needBytes = (space + 1) / 2
	}
	if needBytes > budgetBytes {
		return nil, fmt.Errorf("%w: need %d bytes, budget %d", ErrBudgetExceeded, needBytes, budgetBytes)
	}

	var table settable
	switch backend {
	case BackendExactUncompressed:
		table = NewExactTable(space)
	case BackendExactPacked:
		table = NewPackedTable(space)
	}

	frontier, err := scanGoalFrontier(def, target, space)
	if err != nil {
		return nil, err
	}
	for _, s := range frontier {
		table.Set(s.hash, 0)
	}

	inverted := invertGenerators(generators, def)
	bfsExpand(table, def, frontier, inverted)

	return table, nil
}

// scanGoalFrontier shards the hash space [0, space) across workers to find
// every orbit-state already satisfying target, the BFS's distance-0
// frontier.
func scanGoalFrontier(def orbit.OrbitDef, target []orbit.CycleEntry, space uint64) ([]stateRecord, error) {
	workers := 8
	if space < uint64(workers) {
		workers = 1
	}
	chunk := space / uint64(workers)

	results := make([][]stateRecord, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := uint64(w) * chunk
		end := start + chunk
		if w == workers-1 {
			end = space
		}
		g.Go(func() error {
			scratch := make([]byte, orbit.ScratchLen(def.PieceCount))
			var local []stateRecord
			for h := start; h < end; h++ {
				buf := decodeOrbit(h, def.PieceCount, def.OrientationCount)
				if orbit.InducesCycleScratch(buf, target, def, scratch) {
					local = append(local, stateRecord{hash: h, bytes: buf})
				}
			}
			results[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var frontier []stateRecord
	for _, r := range results {
		frontier = append(frontier, r...)
	}
	if len(frontier) == 0 {
		return nil, ErrNoGoalStates
	}
	return frontier, nil
}

// invertGenerators computes orbit.Inverse of every generator once, up
// front, so BFS expansion never repeats the work.
func invertGenerators(generators [][]byte, def orbit.OrbitDef) [][]byte {
	inverted := make([][]byte, len(generators))
	for i, g := range generators {
		inv := make([]byte, def.StateLen())
		orbit.Inverse(inv, g, def)
		inverted[i] = inv
	}
	return inverted
}

// bfsExpand runs the layer-by-layer backward expansion: for each state in
// the current layer, compose it with every inverted generator to find
// predecessors one move further from goal, recording the first (shortest)
// distance found. Each layer's expansion is computed in parallel across
// workers into private local slices, then merged sequentially against
// table so no two goroutines ever race on the same Set call.
func bfsExpand(table settable, def orbit.OrbitDef, frontier []stateRecord, inverted [][]byte) {
	depth := uint8(1)
	current := frontier
	for len(current) > 0 {
		next := expandLayer(def, current, inverted, table, depth)
		current = next
		if depth < MaxDepth {
			depth++
		}
	}
}

func expandLayer(def orbit.OrbitDef, current []stateRecord, inverted [][]byte, table settable, depth uint8) []stateRecord {
	workers := 8
	if len(current) < workers {
		workers = len(current)
	}
	chunk := len(current) / workers

	results := make([][]stateRecord, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = len(current)
		}
		g.Go(func() error {
			var local []stateRecord
			scratchBuf := make([]byte, def.StateLen())
			for _, s := range current[start:end] {
				for _, inv := range inverted {
					orbit.Compose(scratchBuf, s.bytes, inv, def)
					n := int(def.PieceCount)
					h, err := orbit.ExactHasherOrbit(scratchBuf[:n], scratchBuf[n:], def)
					if err != nil {
						continue
					}
					buf := make([]byte, def.StateLen())
					copy(buf, scratchBuf)
					local = append(local, stateRecord{hash: h, bytes: buf})
				}
			}
			results[w] = local
			return nil
		})
	}
	_ = g.Wait()

	var next []stateRecord
	for _, r := range results {
		for _, s := range r {
			next = append(next, s)
		}
	}
	return dedupeUnset(table, next, depth)
}

// dedupeUnset keeps only the records in candidates whose hash table has not
// already recorded (distance 0, from an earlier BFS layer visiting the same
// hash via a shorter path, or a duplicate discovered within this layer),
// setting depth for the ones that are new. table access here is strictly
// sequential, so no Set call races another.
func dedupeUnset(table settable, candidates []stateRecord, depth uint8) []stateRecord {
	seen := make(map[uint64]struct{}, len(candidates))
	var kept []stateRecord
	for _, c := range candidates {
		if _, dup := seen[c.hash]; dup {
			continue
		}
		seen[c.hash] = struct{}{}
		if table.isSet(c.hash) {
			continue
		}
		table.Set(c.hash, depth)
		kept = append(kept, c)
	}
	return kept
}
