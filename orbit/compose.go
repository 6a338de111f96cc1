package orbit

// Compose writes, into dst, the result of composing a then b for a single
// orbit described by def: dst.perm[i] = a.perm[b.perm[i]] and
// dst.ori[i] = (a.ori[b.perm[i]] + b.ori[i]) mod orientation_count.
//
// a, b, and dst are each def.StateLen() bytes: the first piece_count bytes
// hold the permutation, the next piece_count bytes hold orientation. dst
// must not alias a or b. No caller in this module aliases them: history
// composes each depth into the next slot, and UnifiedCube3 composes into a
// fresh buffer before repacking.
//
// Orientation-count-1 orbits (centers with no meaningful rotation) skip the
// modulo, matching the source's specialization for that case.
func Compose(dst, a, b []byte, def OrbitDef) {
	n := int(def.PieceCount)
	oriCount := def.OrientationCount
	if oriCount == 1 {
		for i := 0; i < n; i++ {
			dst[i] = a[int(b[i])]
			dst[i+n] = 0
		}
		return
	}
	for i := 0; i < n; i++ {
		bp := int(b[i])
		dst[i] = a[bp]
		dst[i+n] = (a[bp+n] + b[i+n]) % oriCount
	}
}

// Inverse writes into dst the inverse of a for a single orbit: for every i,
// dst.perm[a.perm[i]] = i and dst.ori[a.perm[i]] = (orientation_count -
// a.ori[i]) mod orientation_count. dst must not alias a.
func Inverse(dst, a []byte, def OrbitDef) {
	n := int(def.PieceCount)
	oriCount := def.OrientationCount
	if oriCount == 1 {
		for i := 0; i < n; i++ {
			dst[int(a[i])] = byte(i)
			dst[int(a[i])+n] = 0
		}
		return
	}
	for i := 0; i < n; i++ {
		p := int(a[i])
		dst[p] = byte(i)
		dst[p+n] = (oriCount - a[i+n]) % oriCount
	}
}

// Identity fills dst (def.StateLen() bytes) with the identity state:
// perm[i] = i, ori[i] = 0.
func Identity(dst []byte, def OrbitDef) {
	n := int(def.PieceCount)
	for i := 0; i < n; i++ {
		dst[i] = byte(i)
		dst[i+n] = 0
	}
}
