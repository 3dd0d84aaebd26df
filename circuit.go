package plonk

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// PreProcessedCircuit is the verifier-side public description of a
// compiled circuit: its size and the KZG commitments to its selector and
// permutation polynomials. It is produced once by a composer's preprocess
// step and is immutable and safely shared across concurrent verifications.
type PreProcessedCircuit struct {
	// N is the circuit size; the evaluation domain has cardinality N.
	N uint64

	// Selector commitments: multiplication, left, right, output, constant.
	QM bls12381.G1Affine
	QL bls12381.G1Affine
	QR bls12381.G1Affine
	QO bls12381.G1Affine
	QC bls12381.G1Affine

	// Permutation commitments for the left, right and output wires.
	SigmaL bls12381.G1Affine
	SigmaR bls12381.G1Affine
	SigmaO bls12381.G1Affine
}
