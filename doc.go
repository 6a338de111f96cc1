// Package ccs implements a cycle-structure solver: given a twisty-puzzle
// definition in Singmaster/ksolve text format, find the shortest move
// sequence that induces a target cycle structure (which pieces cycle, how
// long each cycle is, and whether it twists the pieces it moves), via
// IDA* search over the puzzle's generators.
//
// Packages
//
//	orbit        — per-orbit byte-level composition, inversion, cycle
//	               decomposition, and factorial-base exact hashing
//	puzzlestate  — the State[S] contract every representation implements
//	slicepuzzle  — the generic flat-buffer State[S] implementation
//	cube3        — two fixed-size 3x3x3 specializations (paired and unified)
//	ksolve       — the text-format puzzle-definition loader
//	fsm          — the canonical-form automaton over move classes
//	history      — the preallocated puzzle-state stack a search recurses
//	               through
//	pruning      — per-orbit admissible-heuristic tables, four backends
//	ccslog       — the module's zerolog wiring
//	solver       — the IDA* search and its solution-expansion iterator
//
// A typical caller loads a PuzzleDef with ksolve.Load, builds pruning
// tables for it with pruning.BuildAll, constructs a solver.New, and calls
// Solve with a puzzlestate.SortedCycleStructure describing the target.
package ccs
