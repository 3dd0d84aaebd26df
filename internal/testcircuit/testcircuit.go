// Package testcircuit is a minimal, fixed-shape prover used only to drive
// the verifier's end-to-end test scenarios (spec.md §8: a single
// multiplication gate and a single addition gate). It is not a general
// circuit composer — that collaborator is out of scope per spec.md §1/§6 —
// it directly constructs the selector, witness, permutation and quotient
// polynomials for exactly the two shapes spec.md §8 names, following the
// same equations the verifier checks (original_source/src/constraint_system/standard/proof.rs).
package testcircuit

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"

	"github.com/roynalnaruto/plonk"
	"github.com/roynalnaruto/plonk/domain"
	"github.com/roynalnaruto/plonk/msm"
	"github.com/roynalnaruto/plonk/permutation"
	"github.com/roynalnaruto/plonk/polynomial"
	"github.com/roynalnaruto/plonk/transcript"
)

// DomainSize is the evaluation domain every circuit in this package uses:
// one real gate row plus three padding rows of the trivial 0=0 constraint.
const DomainSize = 4

// Gate is one row of the arithmetic gate qM*a*b+qL*a+qR*b+qO*c+qC+PI=0.
type Gate struct {
	QM, QL, QR, QO, QC fr.Element
	A, B, C            fr.Element
}

// Circuit is a fixed-size sequence of gates plus the public inputs bound
// into row 0's constraint.
type Circuit struct {
	Gates        [DomainSize]Gate
	PublicInputs []fr.Element
}

func negOne() fr.Element {
	var o, n fr.Element
	o.SetOne()
	n.Neg(&o)
	return n
}

// MulGate returns the circuit for a*b=pub, a single multiplication gate
// bound to a public input via qM=-1 (row value is pub - a*b).
func MulGate(a, b, pub uint64) Circuit {
	var c Circuit
	c.Gates[0] = Gate{
		QM: negOne(),
		A:  fr.NewElement(a),
		B:  fr.NewElement(b),
	}
	c.PublicInputs = []fr.Element{fr.NewElement(pub)}
	return c
}

// AddGate returns the circuit for a+b=c, a single addition gate with no
// public inputs.
func AddGate(a, b uint64) Circuit {
	var c Circuit
	var one fr.Element
	one.SetOne()
	c.Gates[0] = Gate{
		QL: one,
		QR: one,
		QO: negOne(),
		A:  fr.NewElement(a),
		B:  fr.NewElement(b),
		C:  fr.NewElement(a + b),
	}
	return c
}

// toPoly interpolates an evaluation vector into coefficient form via the
// domain's IFFT, the same prover-side convention the verifier relies on
// for the public-input polynomial (spec.md §4.2.2).
func toPoly(dom *domain.EvaluationDomain, evals []fr.Element) polynomial.Polynomial {
	buf := append([]fr.Element(nil), evals...)
	dom.IFFT(buf)
	return polynomial.FromCoefficients(buf)
}

func commit(srs *kzg.SRS, p polynomial.Polynomial) (bls12381.G1Affine, error) {
	if p.IsZero() {
		return bls12381.G1Affine{}, nil
	}
	return msm.SumPoints(srs.Pk.G1[:len(p.Coeffs)], p.Coeffs)
}

func power(base fr.Element, exp uint64) fr.Element {
	var d fr.Element
	d.Exp(base, new(big.Int).SetUint64(exp))
	return d
}

// Preprocess commits the selector and permutation polynomials of c under
// srs, producing the verifier-side public parameters.
//
// The permutation polynomials are the exact linear forms sigma_L(X)=X,
// sigma_R(X)=K1*X, sigma_O(X)=K2*X: this package never shares a wire
// across gates (no copy constraints), so each wire's permutation maps to
// itself within its own coset and the grand-product accumulator z(X) is
// identically 1 (see Prove).
func Preprocess(c Circuit, srs *kzg.SRS) (plonk.PreProcessedCircuit, error) {
	dom, err := domain.New(DomainSize)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}

	qmEv := make([]fr.Element, DomainSize)
	qlEv := make([]fr.Element, DomainSize)
	qrEv := make([]fr.Element, DomainSize)
	qoEv := make([]fr.Element, DomainSize)
	qcEv := make([]fr.Element, DomainSize)
	for i, g := range c.Gates {
		qmEv[i], qlEv[i], qrEv[i], qoEv[i], qcEv[i] = g.QM, g.QL, g.QR, g.QO, g.QC
	}

	qm := toPoly(dom, qmEv)
	ql := toPoly(dom, qlEv)
	qr := toPoly(dom, qrEv)
	qo := toPoly(dom, qoEv)
	qc := toPoly(dom, qcEv)

	sigmaL, sigmaR, sigmaO := permutationPolys()

	qmComm, err := commit(srs, qm)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	qlComm, err := commit(srs, ql)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	qrComm, err := commit(srs, qr)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	qoComm, err := commit(srs, qo)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	qcComm, err := commit(srs, qc)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	sigmaLComm, err := commit(srs, sigmaL)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	sigmaRComm, err := commit(srs, sigmaR)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}
	sigmaOComm, err := commit(srs, sigmaO)
	if err != nil {
		return plonk.PreProcessedCircuit{}, err
	}

	return plonk.PreProcessedCircuit{
		N:      DomainSize,
		QM:     qmComm,
		QL:     qlComm,
		QR:     qrComm,
		QO:     qoComm,
		QC:     qcComm,
		SigmaL: sigmaLComm,
		SigmaR: sigmaRComm,
		SigmaO: sigmaOComm,
	}, nil
}

func permutationPolys() (sigmaL, sigmaR, sigmaO polynomial.Polynomial) {
	var zero fr.Element
	one := fr.NewElement(1)
	sigmaL = polynomial.FromCoefficients([]fr.Element{zero, one})
	sigmaR = polynomial.FromCoefficients([]fr.Element{zero, permutation.K1})
	sigmaO = polynomial.FromCoefficients([]fr.Element{zero, permutation.K2})
	return
}

// Prove builds a Proof for c under srs, replaying the exact transcript
// sequence the verifier will replay (spec.md §4.2.1) so the challenges it
// derives for the linearisation and opening polynomials match what Verify
// independently recomputes.
func Prove(c Circuit, srs *kzg.SRS) (plonk.Proof, error) {
	dom, err := domain.New(DomainSize)
	if err != nil {
		return plonk.Proof{}, err
	}

	aEv := make([]fr.Element, DomainSize)
	bEv := make([]fr.Element, DomainSize)
	cEv := make([]fr.Element, DomainSize)
	qmEv := make([]fr.Element, DomainSize)
	qlEv := make([]fr.Element, DomainSize)
	qrEv := make([]fr.Element, DomainSize)
	qoEv := make([]fr.Element, DomainSize)
	qcEv := make([]fr.Element, DomainSize)
	for i, g := range c.Gates {
		aEv[i], bEv[i], cEv[i] = g.A, g.B, g.C
		qmEv[i], qlEv[i], qrEv[i], qoEv[i], qcEv[i] = g.QM, g.QL, g.QR, g.QO, g.QC
	}

	a := toPoly(dom, aEv)
	b := toPoly(dom, bEv)
	cw := toPoly(dom, cEv)
	qm := toPoly(dom, qmEv)
	ql := toPoly(dom, qlEv)
	qr := toPoly(dom, qrEv)
	qo := toPoly(dom, qoEv)
	qc := toPoly(dom, qcEv)

	sigmaL, sigmaR, sigmaO := permutationPolys()

	// z(X) = 1: the grand-product accumulator is the constant polynomial 1
	// because sigma_L/R/O above map every wire to itself, so every ratio
	// the permutation argument accumulates is 1/1.
	one := fr.NewElement(1)
	zPoly := polynomial.FromCoefficients([]fr.Element{one})

	pi := make([]fr.Element, DomainSize)
	copy(pi, c.PublicInputs)
	piPoly := toPoly(dom, pi)

	aComm, err := commit(srs, a)
	if err != nil {
		return plonk.Proof{}, err
	}
	bComm, err := commit(srs, b)
	if err != nil {
		return plonk.Proof{}, err
	}
	cComm, err := commit(srs, cw)
	if err != nil {
		return plonk.Proof{}, err
	}
	zComm, err := commit(srs, zPoly)
	if err != nil {
		return plonk.Proof{}, err
	}

	tr := transcript.New()
	if err := tr.AppendCommitment("w_l", &aComm); err != nil {
		return plonk.Proof{}, err
	}
	if err := tr.AppendCommitment("w_r", &bComm); err != nil {
		return plonk.Proof{}, err
	}
	if err := tr.AppendCommitment("w_o", &cComm); err != nil {
		return plonk.Proof{}, err
	}

	beta, err := tr.ChallengeScalar("beta")
	if err != nil {
		return plonk.Proof{}, err
	}
	if err := tr.AppendScalar("beta", beta); err != nil {
		return plonk.Proof{}, err
	}
	gamma, err := tr.ChallengeScalar("gamma")
	if err != nil {
		return plonk.Proof{}, err
	}

	if err := tr.AppendCommitment("z", &zComm); err != nil {
		return plonk.Proof{}, err
	}
	alpha, err := tr.ChallengeScalar("alpha")
	if err != nil {
		return plonk.Proof{}, err
	}

	// gate(X) = qM*a*b + qL*a + qR*b + qO*c + qC + PI(X); by construction
	// this vanishes at every domain point, so alpha*gate(X) is divisible
	// by z_H(X) = X^n-1 exactly. The permutation terms of the combined
	// quotient identity drop out entirely because z(X)=1 and sigma_L/R/O
	// are the exact linear forms X, K1*X, K2*X (not just on the domain).
	qmab, err := qm.Mul(a)
	if err != nil {
		return plonk.Proof{}, err
	}
	qmab, err = qmab.Mul(b)
	if err != nil {
		return plonk.Proof{}, err
	}
	qla, err := ql.Mul(a)
	if err != nil {
		return plonk.Proof{}, err
	}
	qrb, err := qr.Mul(b)
	if err != nil {
		return plonk.Proof{}, err
	}
	qoc, err := qo.Mul(cw)
	if err != nil {
		return plonk.Proof{}, err
	}
	gate := qmab.Add(qla).Add(qrb).Add(qoc).Add(qc).Add(piPoly)

	t := gate.ScalarMul(alpha)
	gen := dom.GroupGen()
	var omegaPow fr.Element
	omegaPow.SetOne()
	for i := uint64(0); i < DomainSize; i++ {
		t = t.DivideByLinear(omegaPow)
		omegaPow.Mul(&omegaPow, &gen)
	}

	tPadded := make([]fr.Element, 3*DomainSize)
	copy(tPadded, t.Coeffs)
	tLo := polynomial.FromCoefficients(tPadded[0:DomainSize])
	tMid := polynomial.FromCoefficients(tPadded[DomainSize : 2*DomainSize])
	tHi := polynomial.FromCoefficients(tPadded[2*DomainSize : 3*DomainSize])

	tLoComm, err := commit(srs, tLo)
	if err != nil {
		return plonk.Proof{}, err
	}
	tMidComm, err := commit(srs, tMid)
	if err != nil {
		return plonk.Proof{}, err
	}
	tHiComm, err := commit(srs, tHi)
	if err != nil {
		return plonk.Proof{}, err
	}

	if err := tr.AppendCommitment("t_lo", &tLoComm); err != nil {
		return plonk.Proof{}, err
	}
	if err := tr.AppendCommitment("t_mid", &tMidComm); err != nil {
		return plonk.Proof{}, err
	}
	if err := tr.AppendCommitment("t_hi", &tHiComm); err != nil {
		return plonk.Proof{}, err
	}
	zChallenge, err := tr.ChallengeScalar("z")
	if err != nil {
		return plonk.Proof{}, err
	}

	zHEval := dom.EvaluateVanishingPolynomial(zChallenge)
	l1Eval := dom.EvaluateLagrangeCoefficientZero(zChallenge)
	piEval := piPoly.Evaluate(zChallenge)

	var zOmega fr.Element
	zOmega.Mul(&zChallenge, &gen)

	aEval := a.Evaluate(zChallenge)
	bEval := b.Evaluate(zChallenge)
	cEval := cw.Evaluate(zChallenge)
	leftSigEval := sigmaL.Evaluate(zChallenge)
	rightSigEval := sigmaR.Evaluate(zChallenge)
	// permEval is z(X) evaluated at the shifted point z_challenge*omega, not
	// at z_challenge itself: it feeds both the linearisation's sigma_O term
	// and the shifted opening w_zw below.
	permEval := zPoly.Evaluate(zOmega)

	r := linearisation(qm, ql, qr, qo, qc, sigmaO, zPoly, aEval, bEval, cEval, leftSigEval, rightSigEval, permEval, alpha, beta, gamma, zChallenge, l1Eval)
	linEval := r.Evaluate(zChallenge)

	tEval := quotientEvaluation(aEval, bEval, cEval, leftSigEval, rightSigEval, permEval, piEval, linEval, alpha, beta, gamma, l1Eval, zHEval)

	appends := []struct {
		label string
		value fr.Element
	}{
		{"a_eval", aEval},
		{"b_eval", bEval},
		{"c_eval", cEval},
		{"left_sig_eval", leftSigEval},
		{"right_sig_eval", rightSigEval},
		{"perm_eval", permEval},
		{"t_eval", tEval},
		{"r_eval", linEval},
	}
	for _, app := range appends {
		if err := tr.AppendScalar(app.label, app.value); err != nil {
			return plonk.Proof{}, err
		}
	}

	v, err := tr.ChallengeScalar("v")
	if err != nil {
		return plonk.Proof{}, err
	}

	v2, v3, v4, v5, v6 := power(v, 2), power(v, 3), power(v, 4), power(v, 5), power(v, 6)

	// The opening target must match what the verifier's batch-opening
	// commitment F reconstructs: tLo, tMid and tHi are independently
	// committed over the same SRS basis, so the combination the verifier
	// performs at the commitment level (scaling tMidComm/tHiComm by
	// z^n/z^2n rather than shifting their basis) only matches a KZG
	// opening of tLo(X)+z^n*tMid(X)+z^2n*tHi(X), not of the true
	// quotient t(X) (degree at most 2n-3 here) those chunks were sliced from. The two
	// agree when evaluated at z_challenge (that's the whole point of the
	// split), but only the scaled recombination is the right polynomial
	// to divide by (X - z_challenge).
	zN := power(zChallenge, DomainSize)
	z2n := power(zChallenge, 2*DomainSize)
	quotientAtZ := tLo.Add(tMid.ScalarMul(zN)).Add(tHi.ScalarMul(z2n))

	w := quotientAtZ.Add(r.ScalarMul(v)).Add(a.ScalarMul(v2)).Add(b.ScalarMul(v3)).
		Add(cw.ScalarMul(v4)).Add(sigmaL.ScalarMul(v5)).Add(sigmaR.ScalarMul(v6))

	var combinedEval fr.Element
	for _, term := range []struct{ s, e fr.Element }{
		{fr.NewElement(1), tEval},
		{v, linEval},
		{v2, aEval},
		{v3, bEval},
		{v4, cEval},
		{v5, leftSigEval},
		{v6, rightSigEval},
	} {
		var contrib fr.Element
		contrib.Mul(&term.s, &term.e)
		combinedEval.Add(&combinedEval, &contrib)
	}

	// The verifier's F/E also fold in a v^7*u*(z(X)-permEval) term to batch
	// the shifted opening into the same pairing check. It is omitted here
	// because z(X) is the exact constant polynomial 1 and permEval=1, so
	// that term is the zero polynomial regardless of u's value.
	wz := w.SubConstant(combinedEval).DivideByLinear(zChallenge)
	wzComm, err := commit(srs, wz)
	if err != nil {
		return plonk.Proof{}, err
	}

	wzw := zPoly.SubConstant(permEval).DivideByLinear(zOmega)
	wzwComm, err := commit(srs, wzw)
	if err != nil {
		return plonk.Proof{}, err
	}

	return plonk.Proof{
		AComm:    aComm,
		BComm:    bComm,
		CComm:    cComm,
		ZComm:    zComm,
		TLoComm:  tLoComm,
		TMidComm: tMidComm,
		THiComm:  tHiComm,
		WZComm:   wzComm,
		WZwComm:  wzwComm,
		Evaluations: plonk.ProofEvaluations{
			AEval:          aEval,
			BEval:          bEval,
			CEval:          cEval,
			LeftSigmaEval:  leftSigEval,
			RightSigmaEval: rightSigEval,
			PermEval:       permEval,
			LinPolyEval:    linEval,
		},
	}, nil
}

// quotientEvaluation mirrors the verifier's own quotient-evaluation
// formula (spec.md §4.2.3): both sides of the protocol compute this from
// public values, so the prover must reproduce it exactly to keep the
// transcript in step.
func quotientEvaluation(aEval, bEval, cEval, leftSigEval, rightSigEval, permEval, piEval, linEval, alpha, beta, gamma, l1Eval, zHEval fr.Element) fr.Element {
	var alphaSq, alphaCu fr.Element
	alphaSq.Square(&alpha)
	alphaCu.Mul(&alphaSq, &alpha)

	var a fr.Element
	a.Mul(&piEval, &alpha)
	a.Add(&a, &linEval)

	var b0, betaSig1 fr.Element
	betaSig1.Mul(&beta, &leftSigEval)
	b0.Add(&aEval, &betaSig1)
	b0.Add(&b0, &gamma)

	var b1, betaSig2 fr.Element
	betaSig2.Mul(&beta, &rightSigEval)
	b1.Add(&bEval, &betaSig2)
	b1.Add(&b1, &gamma)

	var b2 fr.Element
	b2.Add(&cEval, &gamma)
	b2.Mul(&b2, &permEval)
	b2.Mul(&b2, &alphaSq)

	var b fr.Element
	b.Mul(&b0, &b1)
	b.Mul(&b, &b2)

	var c fr.Element
	c.Mul(&l1Eval, &alphaCu)

	var numerator, zHInv, result fr.Element
	numerator.Sub(&a, &b)
	numerator.Sub(&numerator, &c)
	zHInv.Inverse(&zHEval)
	result.Mul(&numerator, &zHInv)
	return result
}

// linearisation builds r(X), the committed-polynomial part of the
// quotient identity that the verifier reconstructs via its partial-opening
// commitment D (spec.md §4.2.4), here assembled directly as a polynomial
// instead of as a multi-scalar-multiplied commitment.
func linearisation(qm, ql, qr, qo, qc, sigmaO, zPoly polynomial.Polynomial,
	aEval, bEval, cEval, leftSigEval, rightSigEval, permEval, alpha, beta, gamma, zChallenge, l1Eval fr.Element) polynomial.Polynomial {

	var qmScalar fr.Element
	qmScalar.Mul(&aEval, &bEval)
	qmScalar.Mul(&qmScalar, &alpha)

	var qlScalar fr.Element
	qlScalar.Mul(&aEval, &alpha)

	var qrScalar fr.Element
	qrScalar.Mul(&bEval, &alpha)

	var qoScalar fr.Element
	qoScalar.Mul(&cEval, &alpha)

	r := qm.ScalarMul(qmScalar).Add(ql.ScalarMul(qlScalar)).Add(qr.ScalarMul(qrScalar)).Add(qo.ScalarMul(qoScalar)).Add(qc.ScalarMul(alpha))

	var alphaSq fr.Element
	alphaSq.Square(&alpha)

	var betaZ fr.Element
	betaZ.Mul(&beta, &zChallenge)
	var q0 fr.Element
	q0.Add(&aEval, &betaZ)
	q0.Add(&q0, &gamma)

	var betaK1Z fr.Element
	betaK1Z.Mul(&beta, &permutation.K1)
	betaK1Z.Mul(&betaK1Z, &zChallenge)
	var q1 fr.Element
	q1.Add(&bEval, &betaK1Z)
	q1.Add(&q1, &gamma)

	var betaK2Z fr.Element
	betaK2Z.Mul(&beta, &permutation.K2)
	betaK2Z.Mul(&betaK2Z, &zChallenge)
	var q2 fr.Element
	q2.Add(&cEval, &betaK2Z)
	q2.Add(&q2, &gamma)
	q2.Mul(&q2, &alphaSq)

	var xVal fr.Element
	xVal.Mul(&q0, &q1)
	xVal.Mul(&xVal, &q2)

	var alphaCu, rVal fr.Element
	alphaCu.Mul(&alphaSq, &alpha)
	rVal.Mul(&l1Eval, &alphaCu)

	var xr fr.Element
	xr.Add(&xVal, &rVal)
	r = r.Add(zPoly.ScalarMul(xr))

	var betaSigma1 fr.Element
	betaSigma1.Mul(&beta, &leftSigEval)
	var y0 fr.Element
	y0.Add(&aEval, &betaSigma1)
	y0.Add(&y0, &gamma)

	var betaSigma2 fr.Element
	betaSigma2.Mul(&beta, &rightSigEval)
	var y1 fr.Element
	y1.Add(&bEval, &betaSigma2)
	y1.Add(&y1, &gamma)

	var y2 fr.Element
	y2.Mul(&beta, &permEval)
	y2.Mul(&y2, &alphaSq)

	var yVal, negYVal fr.Element
	yVal.Mul(&y0, &y1)
	yVal.Mul(&yVal, &y2)
	negYVal.Neg(&yVal)

	r = r.Add(sigmaO.ScalarMul(negYVal))
	return r
}
