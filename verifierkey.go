package plonk

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// VerifierKey is the public side of a KZG10 trusted setup: the G1
// generator, the G2 generator, and beta*h where beta is the setup's
// (discarded) toxic-waste secret.
type VerifierKey struct {
	G     bls12381.G1Affine
	H     bls12381.G2Affine
	BetaH bls12381.G2Affine
}

// NewVerifierKey derives a VerifierKey from a KZG SRS produced by the
// setup package.
func NewVerifierKey(srs *kzg.SRS) VerifierKey {
	return VerifierKey{
		G:     srs.Vk.G1,
		H:     srs.Vk.G2[0],
		BetaH: srs.Vk.G2[1],
	}
}
