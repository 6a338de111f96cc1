package solver

import "github.com/qter-dev/ccs/ksolve"

// PrintableName formats a synthetic move name from a base generator name
// and the power it represents. The loader (ksolve.Load) uses this same
// convention to name the generator powers it expands for the solver;
// exposed here too since callers building a Move set by hand (outside
// ksolve.Load) need the identical naming.
func PrintableName(base string, power, order int) string {
	return ksolve.PrintableName(base, power, order)
}
