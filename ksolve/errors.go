package ksolve

import "errors"

// Sentinel errors returned by Load, wrapped with fmt.Errorf for context.
// Each corresponds to one KSolveConstructionError variant in the source
// this format was distilled from.
var (
	// ErrSyntax wraps a textual parse failure: an unrecognized line shape
	// or an integer field that failed to parse.
	ErrSyntax = errors.New("ksolve: syntax error")

	// ErrSetCountMismatch indicates a move's transformation names a
	// different number of orbits than the puzzle declares.
	ErrSetCountMismatch = errors.New("ksolve: move transformation has the wrong number of sets")

	// ErrPieceCountMismatch indicates a move's per-orbit transformation
	// has a different length than that orbit's declared piece count.
	ErrPieceCountMismatch = errors.New("ksolve: move transformation has the wrong piece count for its set")

	// ErrOrientationDeltaOutOfRange indicates an orientation delta was
	// not in [0, orientation_count).
	ErrOrientationDeltaOutOfRange = errors.New("ksolve: orientation delta out of range")

	// ErrNonBijectivePermutation indicates a move's permutation vector
	// for some orbit does not cover every piece index exactly once.
	ErrNonBijectivePermutation = errors.New("ksolve: permutation vector is not bijective")

	// ErrDuplicateName indicates two sets, or two moves, share a name.
	ErrDuplicateName = errors.New("ksolve: duplicate name")

	// ErrGeneratorOrderExceeded indicates a named generator's move class
	// did not return to identity within the configured order cap.
	ErrGeneratorOrderExceeded = errors.New("ksolve: generator order exceeds configured cap")

	// ErrPieceCountTooLarge surfaces orbit.ErrPieceCountTooLarge when a
	// declared orbit exceeds 255 pieces.
	ErrPieceCountTooLarge = errors.New("ksolve: piece count exceeds 255")
)
