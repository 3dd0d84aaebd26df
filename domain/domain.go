// Package domain implements the multiplicative evaluation domain H = <omega>
// that the polynomial algebra and the verifier's quotient/linearisation
// checks are defined over.
//
// The FFT/IFFT butterfly network itself is delegated to gnark-crypto's
// fr/fft package (the "external" FFT primitive spec.md assigns to this
// component); EvaluationDomain layers the vanishing-polynomial and
// Lagrange-coefficient evaluations the PLONK verifier needs on top of it.
package domain

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// ErrDomainTooLarge is returned when the requested domain size exceeds the
// scalar field's two-adicity, i.e. no subgroup of that size exists.
var ErrDomainTooLarge = errors.New("domain: requested size exceeds field two-adicity")

// EvaluationDomain is a multiplicative subgroup of size n = 2^k of the
// BLS12-381 scalar field.
type EvaluationDomain struct {
	Cardinality uint64
	inner       *fft.Domain
}

// New returns a domain of size at least minSize, rounded up to the next
// power of two.
func New(minSize uint64) (*EvaluationDomain, error) {
	if minSize == 0 {
		minSize = 1
	}
	// fft.NewDomain panics if the requested cardinality exceeds the
	// field's two-adicity; gnark-crypto exposes no pre-check, so guard
	// with the known bound for BLS12-381 (2-adicity 32) ourselves.
	if bitLen(minSize) > maxTwoAdicity {
		return nil, ErrDomainTooLarge
	}
	d := fft.NewDomain(minSize)
	return &EvaluationDomain{Cardinality: d.Cardinality, inner: d}, nil
}

// maxTwoAdicity is the 2-adicity of the BLS12-381 scalar field's
// multiplicative group: r-1 = 2^32 * odd.
const maxTwoAdicity = 32

func bitLen(n uint64) int {
	bits := 0
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	return bits
}

// GroupGen returns the generator omega of H.
func (d *EvaluationDomain) GroupGen() fr.Element {
	return d.inner.Generator
}

// FFT transforms values from coefficient form to evaluation form in place.
func (d *EvaluationDomain) FFT(values []fr.Element) {
	d.inner.FFT(values, fft.DIF)
	fft.BitReverse(values)
}

// IFFT transforms values from evaluation form to coefficient form in
// place, following the prover-side convention spec.md §4.2.2 relies on
// for interpolating the public-input polynomial.
func (d *EvaluationDomain) IFFT(values []fr.Element) {
	fft.BitReverse(values)
	d.inner.FFTInverse(values, fft.DIT)
}

// EvaluateVanishingPolynomial returns z_H(z) = z^n - 1.
func (d *EvaluationDomain) EvaluateVanishingPolynomial(z fr.Element) fr.Element {
	var zn, one, res fr.Element
	one.SetOne()
	zn.Exp(z, new(big.Int).SetUint64(d.Cardinality))
	res.Sub(&zn, &one)
	return res
}

// EvaluateAllLagrangeCoefficients returns the length-n vector whose i-th
// entry is L_i(z) = (z^n - 1) / (n * (z - omega^i)) * omega^i.
//
// Special case: if z is itself an n-th root of unity omega^j, L_j(z) = 1
// and every other entry is 0 (division by zero is avoided explicitly
// rather than relying on the field's behaviour at zero denominators).
func (d *EvaluationDomain) EvaluateAllLagrangeCoefficients(z fr.Element) []fr.Element {
	n := d.Cardinality
	coeffs := make([]fr.Element, n)

	zH := d.EvaluateVanishingPolynomial(z)
	if zH.IsZero() {
		// z is an n-th root of unity: find which one.
		var acc fr.Element
		acc.SetOne()
		gen := d.GroupGen()
		for i := uint64(0); i < n; i++ {
			if acc.Equal(&z) {
				coeffs[i].SetOne()
				return coeffs
			}
			acc.Mul(&acc, &gen)
		}
		// Unreachable for a genuine n-th root of unity.
		return coeffs
	}

	var nInv fr.Element
	nInv.SetUint64(n).Inverse(&nInv)

	// L_i(z) = zH * nInv * omega^i / (z - omega^i): omega^i is walked with
	// one field multiplication per step, and each denominator z - omega^i
	// is formed and inverted separately.
	gen := d.GroupGen()
	var omegaPow, denom fr.Element
	omegaPow.SetOne()
	for i := uint64(0); i < n; i++ {
		denom.Sub(&z, &omegaPow)
		denom.Inverse(&denom)

		var li fr.Element
		li.Mul(&zH, &nInv)
		li.Mul(&li, &omegaPow)
		li.Mul(&li, &denom)
		coeffs[i] = li

		omegaPow.Mul(&omegaPow, &gen)
	}
	return coeffs
}

// EvaluateLagrangeCoefficientZero returns L_0(z), the specialised
// single-entry form of EvaluateAllLagrangeCoefficients()[0] the verifier's
// hot path uses (spec.md §9, "Open question — Lagrange coefficient cost").
func (d *EvaluationDomain) EvaluateLagrangeCoefficientZero(z fr.Element) fr.Element {
	zH := d.EvaluateVanishingPolynomial(z)
	if zH.IsZero() {
		var one fr.Element
		one.SetOne()
		if z.Equal(&one) {
			return one
		}
		return fr.Element{}
	}
	var nInv, denom, l0 fr.Element
	nInv.SetUint64(d.Cardinality).Inverse(&nInv)
	denom.Sub(&z, new(fr.Element).SetOne())
	denom.Inverse(&denom)
	l0.Mul(&zH, &nInv)
	l0.Mul(&l0, &denom)
	return l0
}
