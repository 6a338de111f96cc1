//go:build tools

package cube3

// This file pins the addition-chain generator used to derive the
// exponentiation sequence ExponentiateInverse replays (inverse.go's
// exponent27719Bits). It is never compiled into the module (see the
// tools build tag) and nothing in inverse.go imports this package's
// addchain dependency at runtime; run
//
//	go run github.com/mmcloughlin/addchain/cmd/addchain search 27719
//
// to regenerate the chain if the target exponent ever changes.
import _ "github.com/mmcloughlin/addchain/cmd/addchain"
