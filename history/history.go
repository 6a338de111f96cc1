package history

import (
	"errors"
	"fmt"

	"github.com/qter-dev/ccs/orbit"
	"github.com/qter-dev/ccs/puzzlestate"
)

// ErrEmptyHistory is returned by CheckedLast when the stack pointer lies
// outside the preallocated stack. At depth 0 (nothing pushed yet) the top
// state is the identity, which CheckedLast returns without error.
var ErrEmptyHistory = errors.New("history: stack is empty")

// History is the puzzle-state stack a search recurses through. States[0]
// is always the identity; States[d] for d>=1 is the composition of
// States[d-1] with the move recorded at Moves[d-1].
type History[S puzzlestate.State[S]] struct {
	states    []S
	moves     []int
	sp        int // number of pushed moves; States[sp] is the current top.
	orbitDefs orbit.SortedOrbitDefs
}

// New creates a History preallocated for depth entries, seeded with
// identity at depth 0.
func New[S puzzlestate.State[S]](identity S, orbitDefs orbit.SortedOrbitDefs, depth int) *History[S] {
	h := &History[S]{orbitDefs: orbitDefs, states: []S{identity}}
	h.ResizeIfNeeded(depth)
	return h
}

// ResizeIfNeeded grows the preallocated stack to hold at least depth
// pushes (depth+1 states, including the identity at index 0). Existing
// entries are preserved; it never shrinks.
//
// Every newly grown slot is filled with a Clone of the identity rather
// than left at S's zero value: for a pointer-backed State (cube3.PairedCube3)
// the zero value is nil, and even for a slice-backed one
// (slicepuzzle.Buffer) the zero value's backing slice is unallocated, so
// either way the first Push into an unfilled slot would write out of
// bounds. Cloning identity gives every slot a live, correctly-sized state
// ReplaceCompose can write into in place.
func (h *History[S]) ResizeIfNeeded(depth int) {
	needed := depth + 1
	if len(h.states) >= needed {
		return
	}
	states := make([]S, needed)
	copy(states, h.states)
	for i := len(h.states); i < needed; i++ {
		states[i] = states[0].Clone()
	}
	moves := make([]int, needed)
	copy(moves, h.moves)
	h.states = states
	h.moves = moves
}

// Push composes States[sp] . move into States[sp+1], records moveIndex,
// and advances the stack pointer. move is identified by moveIndex purely
// for CreateMoveHistory's bookkeeping; the caller supplies the already
// looked-up state to compose.
func (h *History[S]) Push(moveIndex int, move S) {
	h.states[h.sp+1].ReplaceCompose(h.states[h.sp], move, h.orbitDefs)
	h.moves[h.sp] = moveIndex
	h.sp++
}

// Pop decrements the stack pointer, leaving the vacated slot for the next
// Push to overwrite.
func (h *History[S]) Pop() {
	h.sp--
}

// Depth returns the current stack pointer (number of moves pushed).
func (h *History[S]) Depth() int {
	return h.sp
}

// Last returns the top-of-stack state (the identity at depth 0) by plain
// indexing, with no check of its own: a stack pointer popped below 0 or
// pushed past the preallocated depth makes it panic with Go's index
// error. Callers keep it in range by preserving the one-push-one-pop
// invariant (never popping past depth 0, never pushing past the depth
// passed to ResizeIfNeeded).
func (h *History[S]) Last() S {
	return h.states[h.sp]
}

// CheckedLast is Last with a bounds check, for use outside the search hot
// path (tests, diagnostics).
func (h *History[S]) CheckedLast() (S, error) {
	var zero S
	if h.sp < 0 || h.sp >= len(h.states) {
		return zero, fmt.Errorf("%w: sp=%d len=%d", ErrEmptyHistory, h.sp, len(h.states))
	}
	return h.states[h.sp], nil
}

// MoveIndex returns the move recorded at entryIndex, a 1-based index into
// the current move history (entryIndex 1 is the first move pushed).
func (h *History[S]) MoveIndex(entryIndex int) int {
	return h.moves[entryIndex-1]
}

// CreateMoveHistory returns the full sequence of move indices taken to
// reach the current depth, in order.
func (h *History[S]) CreateMoveHistory() []int {
	out := make([]int, h.sp)
	copy(out, h.moves[:h.sp])
	return out
}
