// Package ccslog is the module's shared structured-logging setup, built
// on github.com/rs/zerolog. It replaces the source's start!/working!/
// success! logging macros with zerolog's leveled, structured event
// builder — the ambient logging idiom this module carries regardless of
// which solver feature is in use.
//
// What
//
//   - New returns a zerolog.Logger writing human-readable console output
//     by default (via zerolog's ConsoleWriter), suitable for CLI and test
//     output; NewJSON returns one writing newline-delimited JSON, for
//     production/service embedding.
//   - No package in this module imports ccslog; it is a constructor for
//     callers. The solver takes its logger through solver.WithLogger and
//     logs the fields "depth" (current IDA* depth) and "nodes" (nodes
//     visited) at Debug level; no other package logs.
//
// Why
//
//   - zerolog's zero-allocation-on-the-disabled-path design keeps a
//     disabled logger essentially free; the solver's log calls (two per
//     IDA* depth, none inside the recursive search) go through the level
//     check zerolog performs internally.
package ccslog
