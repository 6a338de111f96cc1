package solver

import (
	"fmt"

	"github.com/qter-dev/ccs/fsm"
	"github.com/qter-dev/ccs/history"
	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/pruning"
	"github.com/qter-dev/ccs/puzzlestate"
)

// hardDepthCeiling is the largest depth the search will ever try: a
// per-node heuristic is stored in a uint8, so 255 is the value an
// unreachable cell's lookup can never legitimately return, and is the
// natural ceiling for the outer loop too (spec.md §4.6, §4.8).
const hardDepthCeiling = 255

// CycleStructureSolver finds the shortest move sequence inducing a target
// SortedCycleStructure, via IDA* guided by per-orbit pruning tables.
type CycleStructureSolver[S puzzlestate.State[S]] struct {
	identity  S
	orbitDefs orbit.SortedOrbitDefs
	moves     []Move[S]
	numOrbits int

	tables  *pruning.Tables
	fsm     *fsm.FSM
	options Options

	scratch puzzlestate.Scratch
}

// New constructs a CycleStructureSolver. identity is the solved state,
// moves is the full generator set (every power of every base move, each
// tagged with its move class), tables holds one pruning table per orbit in
// orbitDefs order, and numClasses is the number of distinct move classes
// moves uses. A mismatched orbit count is reported as
// ErrInvalidCycleStructure rather than panicking, since a caller wiring a
// solver from independently-loaded pieces is an ordinary construction-time
// mistake, not a programming-invariant violation (spec.md §7).
func New[S puzzlestate.State[S]](identity S, orbitDefs orbit.SortedOrbitDefs, moves []Move[S], numClasses int, tables *pruning.Tables, opts ...Option) (*CycleStructureSolver[S], error) {
	if tables.Len() != len(orbitDefs.Defs) {
		return nil, fmt.Errorf("%w: puzzle has %d orbits, tables cover %d", ErrInvalidCycleStructure, len(orbitDefs.Defs), tables.Len())
	}

	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	_, f := buildClassRelations(moves, numClasses, identity, orbitDefs)

	return &CycleStructureSolver[S]{
		identity:  identity,
		orbitDefs: orbitDefs,
		moves:     moves,
		numOrbits: len(orbitDefs.Defs),
		tables:    tables,
		fsm:       f,
		options:   options,
		scratch:   puzzlestate.NewScratch(orbitDefs),
	}, nil
}

// hashes computes the per-orbit hash vector a pruning-table lookup or
// admissible-heuristic estimate needs for state. Orbits whose table is
// BackendApproximate, or whose exact hasher is unavailable (piece_count >
// 19, per ExactHasherOrbit's documented limit), get the approximate hash;
// every other orbit gets its exact hash, the key the exact backends are
// built with.
func (c *CycleStructureSolver[S]) hashes(state S) []uint64 {
	out := make([]uint64, c.numOrbits)
	for i := range out {
		if t, err := c.tables.Orbit(i); err == nil && t.Backend() == pruning.BackendApproximate {
			out[i] = state.ApproximateHashOrbit(i, c.orbitDefs)
			continue
		}
		h, err := state.ExactHasherOrbit(i, c.orbitDefs)
		if err != nil {
			out[i] = state.ApproximateHashOrbit(i, c.orbitDefs)
			continue
		}
		out[i] = h
	}
	return out
}

func (c *CycleStructureSolver[S]) admissibleHeuristic(state S) int {
	return int(c.tables.AdmissibleHeuristic(c.hashes(state)))
}

// searchState carries the per-search mutable bookkeeping a recursive
// search call needs; Solve makes a fresh one for each depth. The leaf
// test's scratch buffer lives on CycleStructureSolver and is shared, so
// one solver runs one search at a time.
type searchState[S puzzlestate.State[S]] struct {
	solver   *CycleStructureSolver[S]
	target   puzzlestate.SortedCycleStructure
	history  *history.History[S]
	strategy Strategy

	nodesVisited uint64
	rootClass    int
	stopped      bool    // FirstSolution already recorded one; unwind immediately.
	cancelled    bool
	solutions    [][]int // each entry is a move-index sequence, root to leaf.
}

// Solve runs the outer IDA* depth-increasing loop and returns an iterator
// over every solution at the minimal depth found.
func (c *CycleStructureSolver[S]) Solve(target puzzlestate.SortedCycleStructure, strategy Strategy) (*SolutionIter[S], error) {
	if !c.orbitDefs.Brand.Same(target.Brand) {
		return nil, ErrInvalidCycleStructure
	}

	if target.IsIdentity() {
		// The empty move sequence already induces the identity: one
		// solution (do nothing), not zero.
		return newSolutionIter(c, [][]int{{}}), nil
	}

	ceiling := hardDepthCeiling
	if c.options.MaxSolutionLength > 0 && c.options.MaxSolutionLength < ceiling {
		ceiling = c.options.MaxSolutionLength
	}

	startDepth := c.admissibleHeuristic(c.identity)
	if startDepth < 1 {
		startDepth = 1
	}

	h := history.New(c.identity, c.orbitDefs, ceiling)

	for depth := startDepth; depth <= ceiling; depth++ {
		select {
		case <-c.options.Ctx.Done():
			return nil, ErrSearchCancelled
		default:
		}

		c.options.Logger.Debug().Int("depth", depth).Msg("searching depth")

		h.ResizeIfNeeded(depth)
		st := &searchState[S]{solver: c, target: target, history: h, strategy: strategy}

		st.search(fsm.Initial, 0, depth, true)

		c.options.Logger.Debug().Uint64("nodes", st.nodesVisited).Int("depth", depth).Msg("depth exhausted")

		if st.cancelled {
			return nil, ErrSearchCancelled
		}
		if len(st.solutions) > 0 {
			iter := newSolutionIter(c, st.solutions)
			if strategy == FirstSolution && len(iter.solutions) > 1 {
				iter.solutions = iter.solutions[:1]
			}
			return iter, nil
		}
	}

	if c.options.MaxSolutionLength > 0 {
		return nil, ErrMaxSolutionLengthExceeded
	}
	return nil, ErrSolutionDoesNotExist
}

// search is the core recursive IDA* step, operating on st.history's
// current top-of-stack state. fsmState is the canonical-form automaton's
// current state; entryIndex is the 1-based sequence-symmetry cursor (0 at
// the root, where history has nothing to compare against yet);
// permittedCost is the remaining move budget at this node; isRoot marks
// the top call, where every move class is a candidate root class.
//
// It returns an admissible heuristic value for this node: either the
// lower bound computed on entry (when no child improves on it), or a
// pathmax-tightened bound derived from a child whose own heuristic
// exceeded what this node's remaining budget could justify.
func (st *searchState[S]) search(fsmState fsm.State, entryIndex, permittedCost int, isRoot bool) int {
	if st.stopped || st.cancelled {
		return 0
	}
	st.nodesVisited++
	c := st.solver
	current := st.history.Last()

	h := c.admissibleHeuristic(current)
	if h > permittedCost {
		return h
	}
	permittedCost-- // the cost charged for the move about to be chosen.

	moveIndexPruneLt := 0
	if entryIndex > 0 {
		moveIndexPruneLt = st.history.MoveIndex(entryIndex)
	}

	allowed := c.fsm.AllowedClasses(fsmState)
	for moveIndex := moveIndexPruneLt; moveIndex < len(c.moves); moveIndex++ {
		move := c.moves[moveIndex]
		if !allowed.Test(uint(move.Class)) {
			continue
		}
		if isRoot {
			st.rootClass = move.Class
		} else if permittedCost == 0 && !c.fsm.ReverseAllowed(c.fsm.ReverseState(st.rootClass), move.Class) {
			continue
		}

		nextFsmState, ok := c.fsm.NextState(fsmState, move.Class)
		if !ok {
			continue
		}

		st.history.Push(moveIndex, move.State)

		var childHeuristic int
		if permittedCost == 0 {
			child := st.history.Last()
			if child.InducesSortedCycleStructure(st.target, c.orbitDefs, c.scratch) {
				st.solutions = append(st.solutions, st.history.CreateMoveHistory())
				if st.strategy == FirstSolution {
					st.stopped = true
				}
			} else {
				childHeuristic = 1
			}
		} else {
			nextEntryIndex := 1
			if moveIndex == moveIndexPruneLt {
				nextEntryIndex = entryIndex + 1
			}
			childHeuristic = st.search(nextFsmState, nextEntryIndex, permittedCost, false)
		}

		st.history.Pop()

		if st.nodesVisited%4096 == 0 {
			select {
			case <-c.options.Ctx.Done():
				st.cancelled = true
			default:
			}
		}
		if st.stopped || st.cancelled {
			return h
		}

		if childHeuristic > permittedCost+2 {
			return childHeuristic - 1
		}
	}

	if h < 1 {
		return 1
	}
	return h
}
