package solver

import "errors"

// Sentinel errors. Definition and table-construction errors live in their
// own packages (ksolve, pruning); these are the solver-specific errors
// spec.md §7 calls out.
var (
	// ErrOptionViolation is returned when an Option is given an invalid
	// value (e.g. a negative max solution length).
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrInvalidCycleStructure indicates the target SortedCycleStructure
	// was not built against the same orbit ordering as the puzzle
	// definition and pruning tables it was paired with.
	ErrInvalidCycleStructure = errors.New("solver: cycle structure is invalid for this puzzle")

	// ErrSolutionDoesNotExist indicates the search reached depth 255 (the
	// hard per-byte-heuristic ceiling) without finding a solution.
	ErrSolutionDoesNotExist = errors.New("solver: no solution exists within the search depth ceiling")

	// ErrMaxSolutionLengthExceeded indicates the search would need to
	// exceed the caller-configured WithMaxSolutionLength to find a
	// solution.
	ErrMaxSolutionLengthExceeded = errors.New("solver: search exceeded the configured max solution length")

	// ErrSearchCancelled indicates the context passed via WithCancel was
	// cancelled or its deadline elapsed while a search was in progress.
	ErrSearchCancelled = errors.New("solver: search was cancelled")
)
