// Package permutation holds the scalar constants the copy-constraint
// (wire permutation) argument uses to split the evaluation domain into
// three disjoint cosets.
package permutation

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// K1, K2 and K3 are fixed coset generators. Together with the evaluation
// domain H = <omega>, they define the three disjoint wire cosets H, K1*H
// and K2*H that the permutation argument routes left, right and output
// wires through.
//
// K3 is retained for prover-side consumers (it extends the same coset
// scheme to a fourth wire group some composers use) but the verifier
// (package plonk) never reads it.
var (
	K1 = fr.NewElement(7)
	K2 = fr.NewElement(13)
	K3 = fr.NewElement(17)
)
