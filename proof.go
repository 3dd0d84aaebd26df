package plonk

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ProofEvaluations holds the seven opening evaluations a PLONK proof
// carries alongside its commitments.
type ProofEvaluations struct {
	AEval fr.Element
	BEval fr.Element
	CEval fr.Element

	LeftSigmaEval  fr.Element
	RightSigmaEval fr.Element
	PermEval       fr.Element

	LinPolyEval fr.Element
}

// Proof is the nine KZG commitments plus the seven opening evaluations a
// prover produces for one circuit instance.
type Proof struct {
	// Witness polynomial commitments for the left, right and output wires.
	AComm bls12381.G1Affine
	BComm bls12381.G1Affine
	CComm bls12381.G1Affine

	// Commitment to the permutation accumulator polynomial.
	ZComm bls12381.G1Affine

	// Commitments to the three quotient polynomial splits.
	TLoComm  bls12381.G1Affine
	TMidComm bls12381.G1Affine
	THiComm  bls12381.G1Affine

	// Opening proof commitments at z_challenge and z_challenge*omega.
	WZComm  bls12381.G1Affine
	WZwComm bls12381.G1Affine

	Evaluations ProofEvaluations
}

// EmptyProof returns a Proof whose commitments are the G1 identity and
// whose evaluations are zero, the value a preprocessor hands to a
// composer before the witness commitments are filled in.
func EmptyProof() Proof {
	return Proof{}
}

// SetWitnessCommitments fills in the left, right and output witness
// polynomial commitments.
func (p *Proof) SetWitnessCommitments(a, b, c bls12381.G1Affine) {
	p.AComm = a
	p.BComm = b
	p.CComm = c
}

// proofByteLen is the fixed wire size of a marshalled Proof: nine
// compressed G1 points (48 bytes each) plus seven scalars (32 bytes each).
const proofByteLen = 9*bls12381.SizeOfG1AffineCompressed + 7*fr.Bytes

// Marshal encodes p as the fixed-length byte string of §6: the nine
// compressed G1 commitments followed by the seven scalars, in struct
// declaration order.
func (p *Proof) Marshal() []byte {
	out := make([]byte, 0, proofByteLen)

	points := []bls12381.G1Affine{
		p.AComm, p.BComm, p.CComm,
		p.ZComm,
		p.TLoComm, p.TMidComm, p.THiComm,
		p.WZComm, p.WZwComm,
	}
	for _, pt := range points {
		b := pt.Bytes()
		out = append(out, b[:]...)
	}

	scalars := []fr.Element{
		p.Evaluations.AEval, p.Evaluations.BEval, p.Evaluations.CEval,
		p.Evaluations.LeftSigmaEval, p.Evaluations.RightSigmaEval, p.Evaluations.PermEval,
		p.Evaluations.LinPolyEval,
	}
	for _, s := range scalars {
		b := s.Bytes()
		out = append(out, b[:]...)
	}

	return out
}

// Unmarshal decodes a Proof from its fixed-length wire format. It returns
// ErrMalformedProof when the input is the wrong length or any component
// fails to decompress/decode.
func Unmarshal(data []byte) (Proof, error) {
	if len(data) != proofByteLen {
		return Proof{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedProof, proofByteLen, len(data))
	}

	var p Proof
	points := []*bls12381.G1Affine{
		&p.AComm, &p.BComm, &p.CComm,
		&p.ZComm,
		&p.TLoComm, &p.TMidComm, &p.THiComm,
		&p.WZComm, &p.WZwComm,
	}
	offset := 0
	for _, pt := range points {
		if _, err := pt.SetBytes(data[offset : offset+bls12381.SizeOfG1AffineCompressed]); err != nil {
			return Proof{}, fmt.Errorf("%w: decompressing commitment: %v", ErrMalformedProof, err)
		}
		offset += bls12381.SizeOfG1AffineCompressed
	}

	scalars := []*fr.Element{
		&p.Evaluations.AEval, &p.Evaluations.BEval, &p.Evaluations.CEval,
		&p.Evaluations.LeftSigmaEval, &p.Evaluations.RightSigmaEval, &p.Evaluations.PermEval,
		&p.Evaluations.LinPolyEval,
	}
	for _, s := range scalars {
		if !isCanonicalScalar(data[offset : offset+fr.Bytes]) {
			return Proof{}, fmt.Errorf("%w: scalar is not canonically reduced", ErrMalformedProof)
		}
		s.SetBytes(data[offset : offset+fr.Bytes])
		offset += fr.Bytes
	}

	return p, nil
}

// isCanonicalScalar reports whether the big-endian bytes b represent a
// value strictly less than the scalar field's modulus, rejecting
// unreduced encodings before they silently alias a different element.
func isCanonicalScalar(b []byte) bool {
	v := new(big.Int).SetBytes(b)
	return v.Cmp(fr.Modulus()) < 0
}
