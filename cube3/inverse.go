package cube3

import "github.com/qter-dev/ccs/orbit"

// exponent27719Bits is the binary expansion of 27719 = LCM(1..8 corner
// cycle orders, 1..12 edge cycle orders) - 1, most significant bit first.
// A square-and-multiply walk over these bits is itself a valid, if not
// shortest-possible, addition chain for the exponent; cube3/tools.go pins
// github.com/mmcloughlin/addchain as the generator for a shorter chain
// should one be regenerated (addchain search 27719).
var exponent27719Bits = mustBits(27719)

func mustBits(n uint) []bool {
	if n == 0 {
		return []bool{false}
	}
	var bits []bool
	for shift := 31; shift >= 0; shift-- {
		if len(bits) == 0 && n&(1<<uint(shift)) == 0 {
			continue
		}
		bits = append(bits, n&(1<<uint(shift)) != 0)
	}
	return bits
}

// ExponentiateInverse writes a^27719 into the receiver, which equals a's
// inverse in the cube group since every element's order divides 27720.
// This is the alternative inverse strategy spec.md §4.1 calls out for the
// SIMD 3x3x3 path; ReplaceInverse's direct index-flip is cheaper for a
// single call; this is the form that benefits when the result is folded
// into a larger composed exponentiation chain already in flight.
func (dst *PairedCube3) ExponentiateInverse(a *PairedCube3, orbitDefs orbit.SortedOrbitDefs) {
	orbit.MustSame(dst.brand, orbitDefs.Brand)
	orbit.MustSame(a.brand, orbitDefs.Brand)

	acc := Identity(orbitDefs)
	base := a.Clone()
	scratch := Identity(orbitDefs)

	for i, bit := range exponent27719Bits {
		if i != 0 {
			scratch.ReplaceCompose(acc, acc, orbitDefs)
			acc, scratch = scratch, acc
		}
		if bit {
			scratch.ReplaceCompose(acc, base, orbitDefs)
			acc, scratch = scratch, acc
		}
	}
	dst.corners = acc.corners
	dst.edges = acc.edges
}
