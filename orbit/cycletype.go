package orbit

import "sort"

// CycleEntry is one (cycle_length, oriented) pair within a per-orbit sorted
// cycle structure. cycle_length is always >= 1; a cycle of length 1 that is
// not oriented is normalized away entirely (it denotes a fixed, unoriented
// piece — the absence of a cycle), so CycleEntry never represents that case.
type CycleEntry struct {
	Length   uint8
	Oriented bool
}

// ScratchLen returns the number of scratch bytes InducesCycle needs for an
// orbit of the given piece count: one nibble-pair per piece, four pieces
// per byte (piece_count divided by 4, rounded up).
func ScratchLen(pieceCount uint8) int {
	return (int(pieceCount) + 3) / 4
}

// InducesCycle reports whether orbitBytes (def.StateLen() bytes: perm then
// ori) decomposes into exactly the cycles named by target, a sorted
// (length, oriented) partition for this orbit. scratch must be at least
// ScratchLen(def.PieceCount) bytes and is clobbered; its low nibble per
// piece index tracks which pieces have been visited while walking cycles,
// and its high nibble per partition-entry index tracks which target cycle
// entries have already been matched to a discovered cycle — packing both
// into one scratch buffer, rather than two separate bool slices, keeps the
// hot loop allocation-free (see SPEC_FULL.md §5 on the scratch contract).
//
// A cycle is "oriented" iff the sum of orientation values of its member
// pieces is nonzero modulo the orbit's orientation count.
func InducesCycle(orbitBytes []byte, target []CycleEntry, def OrbitDef) bool {
	scratch := make([]byte, ScratchLen(def.PieceCount))
	return InducesCycleScratch(orbitBytes, target, def, scratch)
}

// InducesCycleScratch is InducesCycle with a caller-supplied scratch buffer,
// for hot paths (the solver's leaf-node test) that cannot afford an
// allocation per call.
func InducesCycleScratch(orbitBytes []byte, target []CycleEntry, def OrbitDef, scratch []byte) bool {
	n := int(def.PieceCount)
	oriCount := def.OrientationCount
	for i := range scratch {
		scratch[i] = 0
	}
	matchedCount := 0
	for i := 0; i < n; i++ {
		div, rem := i/4, i%4
		if scratch[div]&(1<<uint(rem)) != 0 {
			continue
		}
		scratch[div] |= 1 << uint(rem)

		length := 1
		piece := int(orbitBytes[i])
		oriSum := orbitBytes[piece+n]
		for piece != i {
			length++
			div, rem := piece/4, piece%4
			scratch[div] |= 1 << uint(rem)
			piece = int(orbitBytes[piece])
			oriSum += orbitBytes[piece+n]
		}

		oriented := oriSum%oriCount != 0
		if length == 1 && !oriented {
			continue
		}

		matchIdx := -1
		for j, entry := range target {
			div, rem := j/4, j%4
			if int(entry.Length) == length && entry.Oriented == oriented && scratch[div]&(1<<uint(rem+4)) == 0 {
				matchIdx = j
				break
			}
		}
		if matchIdx < 0 {
			return false
		}
		div, rem = matchIdx/4, matchIdx%4
		scratch[div] |= 1 << uint(rem+4)
		matchedCount++
		if matchedCount > len(target) {
			return false
		}
	}
	return matchedCount == len(target)
}

// CycleStructureOf computes the sorted (length, oriented) partition induced
// by orbitBytes. It is not used on the search hot path (InducesCycleScratch
// avoids building this slice at all) but is useful for turning an example
// move sequence into a target cycle structure, as spec.md §8 scenario 6
// does ("sequence U R U R' produces a state whose cycle structure ... is
// passed back as the target").
func CycleStructureOf(orbitBytes []byte, def OrbitDef) []CycleEntry {
	n := int(def.PieceCount)
	oriCount := def.OrientationCount
	scratch := make([]byte, ScratchLen(def.PieceCount))
	var entries []CycleEntry
	for i := 0; i < n; i++ {
		div, rem := i/4, i%4
		if scratch[div]&(1<<uint(rem)) != 0 {
			continue
		}
		scratch[div] |= 1 << uint(rem)

		length := 1
		piece := int(orbitBytes[i])
		oriSum := orbitBytes[piece+n]
		for piece != i {
			length++
			div, rem := piece/4, piece%4
			scratch[div] |= 1 << uint(rem)
			piece = int(orbitBytes[piece])
			oriSum += orbitBytes[piece+n]
		}

		oriented := oriSum%oriCount != 0
		if length == 1 && !oriented {
			continue
		}
		entries = append(entries, CycleEntry{Length: uint8(length), Oriented: oriented})
	}
	SortCycleEntries(entries)
	return entries
}

// SortCycleEntries sorts entries ascending by length, and within equal
// length places unoriented before oriented — the canonical order a sorted
// cycle structure is compared and displayed in.
func SortCycleEntries(entries []CycleEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Length != b.Length {
			return a.Length < b.Length
		}
		return !a.Oriented && b.Oriented
	})
}
