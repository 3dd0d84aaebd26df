// Package msm provides the multi-scalar multiplication primitives the
// verifier uses to assemble its batched commitment points.
package msm

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SumPoints computes Sum_i scalars[i] * points[i] as a single G1 affine
// point using gnark-crypto's Pippenger-style MultiExp. scalars and points
// must be the same length.
func SumPoints(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, fmt.Errorf("msm: mismatched lengths: %d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return bls12381.G1Affine{}, nil
	}

	var result bls12381.G1Affine
	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{ScalarsMont: true}); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("msm: multi-exponentiation failed: %w", err)
	}
	return result, nil
}
