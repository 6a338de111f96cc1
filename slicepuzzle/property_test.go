package slicepuzzle

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/qter-dev/ccs/orbit"
)

// randomBuffer builds a Buffer for defs whose every orbit is an
// independently random (permutation, orientation) pair, deterministically
// from seed.
func randomBuffer(defs orbit.SortedOrbitDefs, seed int64) Buffer {
	r := rand.New(rand.NewSource(seed))
	perOrbit := make([][2][]byte, len(defs.Defs))
	for i, def := range defs.Defs {
		n := int(def.PieceCount)
		perm := make([]byte, n)
		for j := 0; j < n; j++ {
			perm[j] = byte(j)
		}
		for j := n - 1; j > 0; j-- {
			k := r.Intn(j + 1)
			perm[j], perm[k] = perm[k], perm[j]
		}
		ori := make([]byte, n)
		for j := 0; j < n; j++ {
			ori[j] = byte(r.Intn(int(def.OrientationCount)))
		}
		perOrbit[i] = [2][]byte{perm, ori}
	}
	return FromOrbitBytes(perOrbit, defs)
}

func genBuffer(defs orbit.SortedOrbitDefs) gopter.Gen {
	return gen.Int64Range(0, 1<<40).Map(func(seed int64) Buffer {
		return randomBuffer(defs, seed)
	})
}

// TestConjugationPreservesCycleStructure checks the invariant
// sequence-symmetry pruning depends on: conjugating a state by any other
// state never changes the cycle structure it induces (spec.md §4.8,
// "conjugate elements induce the same cycle structure").
func TestConjugationPreservesCycleStructure(t *testing.T) {
	defs := testDefs(t)

	properties := gopter.NewProperties(nil)
	properties.Property("cycle_structure(x . g . x^-1) == cycle_structure(g)", prop.ForAll(
		func(g, x Buffer) bool {
			xInv := Identity(defs)
			xInv.ReplaceInverse(x, defs)

			xg := Identity(defs)
			xg.ReplaceCompose(x, g, defs)
			conjugate := Identity(defs)
			conjugate.ReplaceCompose(xg, xInv, defs)

			want := CycleStructure(g, defs)
			got := CycleStructure(conjugate, defs)
			return cmp.Equal(want, got, cmp.AllowUnexported(orbit.Brand{}))
		},
		genBuffer(defs),
		genBuffer(defs),
	))
	properties.TestingRun(t)
}

// TestInverseIsInvolution checks (a^-1)^-1 == a.
func TestInverseIsInvolution(t *testing.T) {
	defs := testDefs(t)

	properties := gopter.NewProperties(nil)
	properties.Property("inverse(inverse(a)) == a", prop.ForAll(
		func(a Buffer) bool {
			inv := Identity(defs)
			inv.ReplaceInverse(a, defs)
			invInv := Identity(defs)
			invInv.ReplaceInverse(inv, defs)
			return invInv.Equal(a)
		},
		genBuffer(defs),
	))
	properties.TestingRun(t)
}
