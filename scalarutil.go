package plonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// powerOf sets *dst = base^exp.
func powerOf(dst *fr.Element, base fr.Element, exp uint64) {
	dst.Exp(base, new(big.Int).SetUint64(exp))
}

// bigIntOf returns s as a big.Int in regular (non-Montgomery) form, the
// representation gnark-crypto's G1Affine.ScalarMultiplication expects.
func bigIntOf(s fr.Element) *big.Int {
	var b big.Int
	s.BigInt(&b)
	return &b
}
