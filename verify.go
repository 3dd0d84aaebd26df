// Package plonk implements the PLONK zk-SNARK proof verification
// pipeline over BLS12-381 with KZG10 polynomial commitments: a
// Fiat-Shamir-driven reconstruction of a linearisation commitment and a
// batched opening check, culminating in a single pairing equality.
package plonk

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/roynalnaruto/plonk/domain"
	"github.com/roynalnaruto/plonk/msm"
	"github.com/roynalnaruto/plonk/permutation"
	"github.com/roynalnaruto/plonk/polynomial"
	"github.com/roynalnaruto/plonk/transcript"
)

// Verify checks proof against preprocessed under vk, for the given public
// inputs, replaying tr to re-derive the prover's Fiat-Shamir challenges.
// tr must be in a fresh state matching the one the prover started from.
//
// It returns (false, nil) for an invalid proof — a pairing mismatch or an
// algebraic short-circuit such as z_challenge landing inside the
// evaluation domain — and returns a non-nil error only for malformed
// inputs (unsupported circuit size, oversized public input vector).
// This mirrors the protocol's requirement that an adversary cannot tell
// "rejected" from "a different kind of rejected" through the error
// channel.
func Verify(proof Proof, preprocessed PreProcessedCircuit, tr *transcript.Transcript, vk VerifierKey, publicInputs []fr.Element) (bool, error) {
	dom, err := domain.New(preprocessed.N)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidCircuitSize, err)
	}
	if dom.Cardinality != preprocessed.N {
		return false, fmt.Errorf("%w: n=%d is not a power of two", ErrInvalidCircuitSize, preprocessed.N)
	}
	if uint64(len(publicInputs)) > dom.Cardinality {
		return false, fmt.Errorf("%w: %d public inputs for domain size %d", ErrPublicInputTooLong, len(publicInputs), dom.Cardinality)
	}

	// §4.2.1 step 1: witness commitments.
	if err := tr.AppendCommitment("w_l", &proof.AComm); err != nil {
		return false, err
	}
	if err := tr.AppendCommitment("w_r", &proof.BComm); err != nil {
		return false, err
	}
	if err := tr.AppendCommitment("w_o", &proof.CComm); err != nil {
		return false, err
	}

	// §4.2.1 step 2: beta, then its mandatory re-append.
	beta, err := tr.ChallengeScalar("beta")
	if err != nil {
		return false, err
	}
	if err := tr.AppendScalar("beta", beta); err != nil {
		return false, err
	}

	// §4.2.1 step 3: gamma.
	gamma, err := tr.ChallengeScalar("gamma")
	if err != nil {
		return false, err
	}

	// §4.2.1 step 4: permutation commitment, then alpha.
	if err := tr.AppendCommitment("z", &proof.ZComm); err != nil {
		return false, err
	}
	alpha, err := tr.ChallengeScalar("alpha")
	if err != nil {
		return false, err
	}

	// §4.2.1 step 5: quotient splits, then z_challenge.
	if err := tr.AppendCommitment("t_lo", &proof.TLoComm); err != nil {
		return false, err
	}
	if err := tr.AppendCommitment("t_mid", &proof.TMidComm); err != nil {
		return false, err
	}
	if err := tr.AppendCommitment("t_hi", &proof.THiComm); err != nil {
		return false, err
	}
	zChallenge, err := tr.ChallengeScalar("z")
	if err != nil {
		return false, err
	}

	// §4.2.2 domain-derived values.
	zHEval := dom.EvaluateVanishingPolynomial(zChallenge)
	l1Eval := dom.EvaluateLagrangeCoefficientZero(zChallenge)
	piEval := evaluatePublicInputs(dom, publicInputs, zChallenge)

	if zHEval.IsZero() {
		// z_challenge landed inside the evaluation domain: an adversary
		// must not be able to distinguish this from a pairing mismatch.
		return false, nil
	}

	tEval := computeQuotientEvaluation(proof.Evaluations, piEval, alpha, beta, gamma, l1Eval, zHEval)

	// §4.2.1 step 6: the seven evaluations, the derived t_eval, and r_eval.
	evalAppends := []struct {
		label string
		value fr.Element
	}{
		{"a_eval", proof.Evaluations.AEval},
		{"b_eval", proof.Evaluations.BEval},
		{"c_eval", proof.Evaluations.CEval},
		{"left_sig_eval", proof.Evaluations.LeftSigmaEval},
		{"right_sig_eval", proof.Evaluations.RightSigmaEval},
		{"perm_eval", proof.Evaluations.PermEval},
		{"t_eval", tEval},
		{"r_eval", proof.Evaluations.LinPolyEval},
	}
	for _, e := range evalAppends {
		if err := tr.AppendScalar(e.label, e.value); err != nil {
			return false, err
		}
	}

	// §4.2.1 step 7: v.
	v, err := tr.ChallengeScalar("v")
	if err != nil {
		return false, err
	}

	// §4.2.1 step 8: opening commitments, then u.
	if err := tr.AppendCommitment("w_z", &proof.WZComm); err != nil {
		return false, err
	}
	if err := tr.AppendCommitment("w_z_w", &proof.WZwComm); err != nil {
		return false, err
	}
	u, err := tr.ChallengeScalar("u")
	if err != nil {
		return false, err
	}

	// §4.2.4 partial-opening commitment D.
	d, err := computePartialOpeningCommitment(proof, preprocessed, alpha, beta, gamma, zChallenge, u, v, l1Eval)
	if err != nil {
		return false, err
	}

	// §4.2.5 batch-opening commitment F.
	f, err := computeBatchOpeningCommitment(proof, preprocessed, zChallenge, v, d)
	if err != nil {
		return false, err
	}

	// §4.2.6 batch-evaluation commitment E.
	e := computeBatchEvaluationCommitment(proof.Evaluations, vk, u, v, tEval)

	// §4.2.7 the final pairing check.
	return checkPairing(proof, vk, dom, zChallenge, u, f, e)
}

// evaluatePublicInputs zero-pads publicInputs to the domain size,
// interpolates them into coefficient form via IFFT — the prover-side
// convention §4.2.2 relies on — and evaluates the result at zChallenge.
func evaluatePublicInputs(dom *domain.EvaluationDomain, publicInputs []fr.Element, zChallenge fr.Element) fr.Element {
	padded := make([]fr.Element, dom.Cardinality)
	copy(padded, publicInputs)

	dom.IFFT(padded)
	piPoly := polynomial.FromCoefficients(padded)
	return piPoly.Evaluate(zChallenge)
}

// computeQuotientEvaluation implements §4.2.3.
func computeQuotientEvaluation(ev ProofEvaluations, piEval, alpha, beta, gamma, l1Eval, zHEval fr.Element) fr.Element {
	var alphaSq, alphaCu fr.Element
	alphaSq.Square(&alpha)
	alphaCu.Mul(&alphaSq, &alpha)

	var a fr.Element
	a.Mul(&piEval, &alpha)
	a.Add(&a, &ev.LinPolyEval)

	var b0, betaSig1 fr.Element
	betaSig1.Mul(&beta, &ev.LeftSigmaEval)
	b0.Add(&ev.AEval, &betaSig1)
	b0.Add(&b0, &gamma)

	var b1, betaSig2 fr.Element
	betaSig2.Mul(&beta, &ev.RightSigmaEval)
	b1.Add(&ev.BEval, &betaSig2)
	b1.Add(&b1, &gamma)

	var b2 fr.Element
	b2.Add(&ev.CEval, &gamma)
	b2.Mul(&b2, &ev.PermEval)
	b2.Mul(&b2, &alphaSq)

	var b fr.Element
	b.Mul(&b0, &b1)
	b.Mul(&b, &b2)

	var c fr.Element
	c.Mul(&l1Eval, &alphaCu)

	var numerator, zHInv, tEval fr.Element
	numerator.Sub(&a, &b)
	numerator.Sub(&numerator, &c)
	zHInv.Inverse(&zHEval)
	tEval.Mul(&numerator, &zHInv)
	return tEval
}

// computePartialOpeningCommitment implements §4.2.4.
func computePartialOpeningCommitment(proof Proof, pre PreProcessedCircuit, alpha, beta, gamma, zChallenge, u, v, l1Eval fr.Element) (bls12381.G1Affine, error) {
	scalars := make([]fr.Element, 0, 7)
	points := make([]bls12381.G1Affine, 0, 7)

	var alphaV fr.Element
	alphaV.Mul(&alpha, &v)

	var qmScalar fr.Element
	qmScalar.Mul(&proof.Evaluations.AEval, &proof.Evaluations.BEval)
	qmScalar.Mul(&qmScalar, &alphaV)
	scalars = append(scalars, qmScalar)
	points = append(points, pre.QM)

	var qlScalar fr.Element
	qlScalar.Mul(&proof.Evaluations.AEval, &alphaV)
	scalars = append(scalars, qlScalar)
	points = append(points, pre.QL)

	var qrScalar fr.Element
	qrScalar.Mul(&proof.Evaluations.BEval, &alphaV)
	scalars = append(scalars, qrScalar)
	points = append(points, pre.QR)

	var qoScalar fr.Element
	qoScalar.Mul(&proof.Evaluations.CEval, &alphaV)
	scalars = append(scalars, qoScalar)
	points = append(points, pre.QO)

	scalars = append(scalars, alphaV)
	points = append(points, pre.QC)

	// X = (a+beta*z+gamma)(b+beta*K1*z+gamma)(c+beta*K2*z+gamma) * alpha^2 * v
	var betaZ fr.Element
	betaZ.Mul(&beta, &zChallenge)

	var q0 fr.Element
	q0.Add(&proof.Evaluations.AEval, &betaZ)
	q0.Add(&q0, &gamma)

	var betaK1Z fr.Element
	betaK1Z.Mul(&beta, &permutation.K1)
	betaK1Z.Mul(&betaK1Z, &zChallenge)
	var q1 fr.Element
	q1.Add(&proof.Evaluations.BEval, &betaK1Z)
	q1.Add(&q1, &gamma)

	var betaK2Z fr.Element
	betaK2Z.Mul(&beta, &permutation.K2)
	betaK2Z.Mul(&betaK2Z, &zChallenge)
	var q2 fr.Element
	q2.Add(&proof.Evaluations.CEval, &betaK2Z)
	q2.Add(&q2, &gamma)
	var alphaSq fr.Element
	alphaSq.Square(&alpha)
	q2.Mul(&q2, &alphaSq)
	q2.Mul(&q2, &v)

	var x fr.Element
	x.Mul(&q0, &q1)
	x.Mul(&x, &q2)

	var alphaCu fr.Element
	alphaCu.Mul(&alphaSq, &alpha)
	var r fr.Element
	r.Mul(&l1Eval, &alphaCu)
	r.Mul(&r, &v)

	var v7, s fr.Element
	powerOf(&v7, v, 7)
	s.Mul(&v7, &u)

	var xrs fr.Element
	xrs.Add(&x, &r)
	xrs.Add(&xrs, &s)
	scalars = append(scalars, xrs)
	points = append(points, proof.ZComm)

	// Y = (a+beta*sigma1+gamma)(b+beta*sigma2+gamma)(beta*perm*alpha^2*v)
	var betaSigma1 fr.Element
	betaSigma1.Mul(&beta, &proof.Evaluations.LeftSigmaEval)
	var y0 fr.Element
	y0.Add(&proof.Evaluations.AEval, &betaSigma1)
	y0.Add(&y0, &gamma)

	var betaSigma2 fr.Element
	betaSigma2.Mul(&beta, &proof.Evaluations.RightSigmaEval)
	var y1 fr.Element
	y1.Add(&proof.Evaluations.BEval, &betaSigma2)
	y1.Add(&y1, &gamma)

	var y2 fr.Element
	y2.Mul(&beta, &proof.Evaluations.PermEval)
	y2.Mul(&y2, &alphaSq)
	y2.Mul(&y2, &v)

	var y, negY fr.Element
	y.Mul(&y0, &y1)
	y.Mul(&y, &y2)
	negY.Neg(&y)
	scalars = append(scalars, negY)
	points = append(points, pre.SigmaO)

	sum, err := msm.SumPoints(points, scalars)
	if err != nil {
		return bls12381.G1Affine{}, err
	}
	return sum, nil
}

// computeBatchOpeningCommitment implements §4.2.5.
func computeBatchOpeningCommitment(proof Proof, pre PreProcessedCircuit, zChallenge, v fr.Element, d bls12381.G1Affine) (bls12381.G1Affine, error) {
	var zN, z2n fr.Element
	powerOf(&zN, zChallenge, pre.N)
	powerOf(&z2n, zChallenge, 2*pre.N)

	var one, v2, v3, v4, v5, v6 fr.Element
	one.SetOne()
	powerOf(&v2, v, 2)
	powerOf(&v3, v, 3)
	powerOf(&v4, v, 4)
	powerOf(&v5, v, 5)
	powerOf(&v6, v, 6)

	scalars := []fr.Element{one, zN, z2n, one, v2, v3, v4, v5, v6}
	points := []bls12381.G1Affine{
		proof.TLoComm, proof.TMidComm, proof.THiComm,
		d,
		proof.AComm, proof.BComm, proof.CComm,
		pre.SigmaL, pre.SigmaR,
	}

	return msm.SumPoints(points, scalars)
}

// computeBatchEvaluationCommitment implements §4.2.6.
func computeBatchEvaluationCommitment(ev ProofEvaluations, vk VerifierKey, u, v, tEval fr.Element) bls12381.G1Affine {
	var v2, v3, v4, v5, v6, v7 fr.Element
	powerOf(&v2, v, 2)
	powerOf(&v3, v, 3)
	powerOf(&v4, v, 4)
	powerOf(&v5, v, 5)
	powerOf(&v6, v, 6)
	powerOf(&v7, v, 7)

	var uPerm fr.Element
	uPerm.Mul(&u, &ev.PermEval)

	terms := []struct{ s, e fr.Element }{
		{fr.Element{}, tEval},
		{v, ev.LinPolyEval},
		{v2, ev.AEval},
		{v3, ev.BEval},
		{v4, ev.CEval},
		{v5, ev.LeftSigmaEval},
		{v6, ev.RightSigmaEval},
		{v7, uPerm},
	}
	terms[0].s.SetOne()

	var result fr.Element
	for _, t := range terms {
		var term fr.Element
		term.Mul(&t.s, &t.e)
		result.Add(&result, &term)
	}

	var e bls12381.G1Affine
	e.ScalarMultiplication(&vk.G, bigIntOf(result))
	return e
}

// checkPairing implements §4.2.7.
func checkPairing(proof Proof, vk VerifierKey, dom *domain.EvaluationDomain, zChallenge, u fr.Element, f, e bls12381.G1Affine) (bool, error) {
	var lhsPoint bls12381.G1Affine
	var wzwU bls12381.G1Affine
	wzwU.ScalarMultiplication(&proof.WZwComm, bigIntOf(u))
	var lhsJac bls12381.G1Jac
	lhsJac.FromAffine(&proof.WZComm)
	var wzwUJac bls12381.G1Jac
	wzwUJac.FromAffine(&wzwU)
	lhsJac.AddAssign(&wzwUJac)
	lhsPoint.FromJacobian(&lhsJac)

	var uZOmega fr.Element
	groupGen := dom.GroupGen()
	uZOmega.Mul(&u, &zChallenge)
	uZOmega.Mul(&uZOmega, &groupGen)

	var k0, k1 bls12381.G1Affine
	k0.ScalarMultiplication(&proof.WZComm, bigIntOf(zChallenge))
	k1.ScalarMultiplication(&proof.WZwComm, bigIntOf(uZOmega))

	var innerJac bls12381.G1Jac
	innerJac.FromAffine(&k0)
	var k1Jac bls12381.G1Jac
	k1Jac.FromAffine(&k1)
	innerJac.AddAssign(&k1Jac)
	var fJac bls12381.G1Jac
	fJac.FromAffine(&f)
	innerJac.AddAssign(&fJac)
	var eJac bls12381.G1Jac
	eJac.FromAffine(&e)
	innerJac.SubAssign(&eJac)

	var innerPoint, negInnerPoint bls12381.G1Affine
	innerPoint.FromJacobian(&innerJac)
	negInnerPoint.Neg(&innerPoint)

	// PairingCheck verifies that the product of pairings is 1, so the rhs
	// side of lhs == rhs is folded in negated: e(lhs,betaH)*e(-rhs,h) == 1.
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{lhsPoint, negInnerPoint},
		[]bls12381.G2Affine{vk.BetaH, vk.H},
	)
	if err != nil {
		return false, fmt.Errorf("plonk: pairing check: %w", err)
	}
	return ok, nil
}
