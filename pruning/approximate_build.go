package pruning

import "github.com/qter-dev/ccs/orbit"

// fnv1a is the 64-bit FNV-1a hash, duplicated here rather than imported
// from slicepuzzle or cube3 to keep pruning independent of any one
// puzzlestate.State implementation — it operates directly on raw orbit
// bytes, the same layout orbit.Compose/Inverse use.
func fnv1a(perm, ori []byte) uint64 {
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

// buildApproximate runs the same backward expansion buildExact does, but
// keyed by the lossy fnv1a hash instead of an exact rank, and bounded by
// approxMaxStates rather than a full hash-space enumeration — the only
// construction strategy available once piece_count exceeds 19 (or the
// exact hash space exceeds budget), since decodeOrbit's enumeration has no
// equivalent without an exact bijection to invert.
func buildApproximate(def orbit.OrbitDef, generators [][]byte, seeds [][]byte, approxMaxStates int) (Table, error) {
	if len(seeds) == 0 {
		return nil, ErrNoGoalStates
	}
	if approxMaxStates <= 0 {
		approxMaxStates = 1 << 20
	}

	table := NewApproximateTable()
	inverted := invertGenerators(generators, def)
	n := int(def.PieceCount)

	type rec struct {
		hash  uint64
		bytes []byte
	}
	var current []rec
	for _, s := range seeds {
		h := fnv1a(s[:n], s[n:])
		if table.Lookup(h) == 0 {
			table.Set(h, 0)
			current = append(current, rec{hash: h, bytes: s})
		}
	}

	depth := uint8(1)
	recorded := len(current)
	for len(current) > 0 && recorded < approxMaxStates {
		var next []rec
		scratch := make([]byte, def.StateLen())
		for _, s := range current {
			for _, inv := range inverted {
				orbit.Compose(scratch, s.bytes, inv, def)
				h := fnv1a(scratch[:n], scratch[n:])
				if _, ok := table.entries[h]; ok {
					continue
				}
				buf := make([]byte, def.StateLen())
				copy(buf, scratch)
				table.Set(h, depth)
				next = append(next, rec{hash: h, bytes: buf})
				recorded++
				if recorded >= approxMaxStates {
					break
				}
			}
			if recorded >= approxMaxStates {
				break
			}
		}
		current = next
		if depth < MaxDepth {
			depth++
		}
	}

	return table, nil
}
