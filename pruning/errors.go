package pruning

import "errors"

// Sentinel errors for pruning-table construction.
var (
	// ErrBudgetExceeded indicates the orbit's exact hash space
	// (piece_count! * orientation_count^(piece_count-1)) exceeds the
	// caller-supplied memory budget for the chosen backend.
	ErrBudgetExceeded = errors.New("pruning: orbit state space exceeds memory budget")

	// ErrPieceCountTooLarge indicates an orbit with more than 19 pieces was
	// passed to a backend that requires exact hashing.
	ErrPieceCountTooLarge = errors.New("pruning: exact backends require piece count <= 19")

	// ErrNoGoalStates indicates the backward BFS's initial frontier scan
	// found no orbit-state satisfying the target cycle structure, meaning
	// the target itself is unreachable and every later lookup would be
	// meaningless.
	ErrNoGoalStates = errors.New("pruning: target cycle structure has no satisfying orbit state")

	// ErrUnknownBackend is returned by Load when a persisted table names a
	// backend this build does not recognize, by Save for a Table type it
	// cannot persist, and by Build for an unknown Backend value.
	ErrUnknownBackend = errors.New("pruning: unknown table backend")
)
