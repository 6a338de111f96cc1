// Package fact holds compile-time constants shared by the exact orbit
// hasher. Keeping the factorial table a literal array (rather than computing
// it lazily on first use) avoids any runtime initialization on the hot
// search path, per the loader's "avoid lazy runtime initialization" design
// note.
package fact

// Table holds i! for i in 0..=19. Orbits are capped at 19 pieces (§3 of the
// design: exact permutation hashing uses factorial-base ranking up to 19!),
// so Table is exactly as large as it ever needs to be.
var Table = [20]uint64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
	87178291200,
	1307674368000,
	20922789888000,
	355687428096000,
	6402373705728000,
	121645100408832000,
}
