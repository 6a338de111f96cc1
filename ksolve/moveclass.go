package ksolve

import (
	"strconv"
	"strings"
)

// BaseMoveName strips the trailing twist-count/inverse marker a printable
// move name carries ("U2" -> "U", "U'" -> "U", "U" -> "U"), grouping every
// power of one base generator under the same class. This is a naming
// convention, not a semantic check: names that differ only in trailing
// digits or a trailing "'" share a class even when they were declared as
// unrelated generators ("R1" and "R2" both map to "R"), and every other
// distinct base name gets a class of its own.
func BaseMoveName(name string) string {
	name = strings.TrimSuffix(name, "'")
	for len(name) > 0 {
		last := name[len(name)-1]
		if last >= '0' && last <= '9' {
			name = name[:len(name)-1]
			continue
		}
		break
	}
	return name
}

// PrintableName formats base raised to power, where order is base's
// generator order (base^order == identity): power 1 is the bare base
// name, power order-1 (the base's inverse, order-power == 1) gets a
// trailing "'", and every other power is suffixed with its number
// ("U2", "U3", ...). A self-inverse generator's (order 2) sole nontrivial
// power is power 1, which this returns as the bare base name rather than
// "U'" — there is no separate inverse notation needed when a move is its
// own inverse.
func PrintableName(base string, power, order int) string {
	power = ((power % order) + order) % order
	if power == 0 {
		return base
	}
	if power == 1 {
		return base
	}
	if order-power == 1 {
		return base + "'"
	}
	return base + strconv.Itoa(power)
}
