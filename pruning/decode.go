package pruning

import "github.com/qter-dev/ccs/internal/fact"

// decodeOrbit is orbit.ExactHasherOrbit's inverse: given a combined hash and
// an OrbitDef, it reconstructs the flat (perm bytes, then ori bytes) buffer
// orbit.Compose/orbit.Inverse operate on. It exists only to drive the exact
// backends' initial goal-frontier scan (decide, for every hash in
// [0, space), whether the orbit-state it names already satisfies the
// target cycle structure) — nothing on the search hot path calls it.
func decodeOrbit(hash uint64, pieceCount, orientationCount uint8) []byte {
	n := int(pieceCount)
	oriCount := uint64(orientationCount)

	oriSpace := pow(oriCount, uint64(n-1))
	permHash := hash / oriSpace
	oriHash := hash % oriSpace

	perm := decodePermutation(permHash, n)
	ori := decodeOrientation(oriHash, oriCount, n)
	buf := make([]byte, 2*n)
	copy(buf[:n], perm)
	copy(buf[n:], ori)
	return buf
}

// decodePermutation reconstructs the permutation whose Lehmer code (the
// inversion-count-per-position encoding orbit.ExactHasherOrbit computes) is
// permHash, for n pieces.
func decodePermutation(permHash uint64, n int) []byte {
	available := make([]byte, n)
	for i := range available {
		available[i] = byte(i)
	}
	perm := make([]byte, n)
	for i := 0; i < n; i++ {
		f := fact.Table[n-1-i]
		idx := permHash / f
		permHash %= f
		perm[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return perm
}

// decodeOrientation reconstructs the first n-1 orientation bytes from the
// base-oriCount number oriHash (most significant digit first, matching
// ExactHasherOrbit's Horner-form accumulation), then fills in the nth
// orientation value as whatever makes the full orbit's orientation sum zero
// modulo oriCount — the conservation law ExactHasherOrbit relies on to skip
// encoding it at all.
func decodeOrientation(oriHash uint64, oriCount uint64, n int) []byte {
	ori := make([]byte, n)
	digits := make([]byte, n-1)
	for i := n - 2; i >= 0; i-- {
		digits[i] = byte(oriHash % oriCount)
		oriHash /= oriCount
	}
	copy(ori, digits)

	var sum uint64
	for i := 0; i < n-1; i++ {
		sum += uint64(ori[i])
	}
	ori[n-1] = byte((oriCount - sum%oriCount) % oriCount)
	return ori
}

func pow(base, exp uint64) uint64 {
	result := uint64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
