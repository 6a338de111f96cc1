package orbit

import (
	"errors"
	"fmt"

	"github.com/qter-dev/ccs/internal/fact"
)

// ErrPieceCountTooLargeForHash indicates ExactHasherOrbit was called on an
// orbit with more than 19 pieces, the largest orbit the factorial-base
// ranking covers (internal/fact.Table stops at 19!).
var ErrPieceCountTooLargeForHash = errors.New("orbit: exact hashing requires piece count <= 19")

// ExactHasherOrbit computes a bijection from (perm, ori) to
// [0, piece_count! * orientation_count^(piece_count-1)). perm and ori are
// each def.PieceCount bytes (the split view orbit.Compose/Inverse work on
// as one contiguous buffer; callers that hold the combined layout should
// slice it first).
//
// perm_hash = sum_i (count of j>i with perm[j]<perm[i])*(piece_count-1-i)!
// ori_hash   = sum_{i<piece_count-1} ori[i] * orientation_count^(piece_count-2-i)
// combined   = perm_hash*orientation_count^(piece_count-1) + ori_hash
//
// The final orientation byte is not read: in every orbit this module
// supports, the sum of orientation values around a full orbit is
// conserved, so the last entry is always determined by the others and
// carries no additional information to rank.
func ExactHasherOrbit(perm, ori []byte, def OrbitDef) (uint64, error) {
	n := int(def.PieceCount)
	if n > len(fact.Table)-1 {
		return 0, fmt.Errorf("%w: got %d", ErrPieceCountTooLargeForHash, n)
	}

	var permHash uint64
	for i := 0; i < n; i++ {
		var inversions uint64
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				inversions++
			}
		}
		permHash += inversions * fact.Table[n-i-1]
	}

	oriCount := uint64(def.OrientationCount)
	var oriHash uint64
	for i := 0; i < n-1; i++ {
		oriHash += uint64(ori[i])
		if i != n-2 {
			oriHash *= oriCount
		}
	}

	return permHash*pow(oriCount, uint64(n-1)) + oriHash, nil
}

func pow(base, exp uint64) uint64 {
	result := uint64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
