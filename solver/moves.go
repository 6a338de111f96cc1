package solver

import (
	"github.com/qter-dev/ccs/ksolve"
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

// BuildMoves converts a ksolve.PuzzleDef's generator set, which is
// concrete to slicepuzzle.Buffer, into the representation S a solver
// actually searches over. ksolve.Load has already expanded each declared
// generator into one Move per power (named via ksolve.PrintableName,
// sharing one Class per base generator), so BuildMoves is a straight
// per-entry conversion, not an expansion step itself. build receives,
// per orbit in orbitDefs order, the (permutation, orientation) byte pair
// a single ksolve move induces, and must return the S constructed from
// them (typically representation S's own FromOrbitBytes). This
// indirection is what lets the same text-format puzzle definitions drive
// both slicepuzzle's generic solver and cube3's specialized one.
func BuildMoves[S puzzlestate.State[S]](moves []ksolve.Move, orbitDefs orbit.SortedOrbitDefs, build func(perOrbit [][2][]byte) S) []Move[S] {
	out := make([]Move[S], len(moves))
	for i, m := range moves {
		perOrbit := make([][2][]byte, len(orbitDefs.Defs))
		for o := range orbitDefs.Defs {
			perm, ori := m.Transformation.OrbitBytes(o, orbitDefs)
			perOrbit[o] = [2][]byte{perm, ori}
		}
		out[i] = Move[S]{
			Name:  m.Name,
			State: build(perOrbit),
			Order: m.Order,
			Class: m.Class,
		}
	}
	return out
}
