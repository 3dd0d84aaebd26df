// Package polynomial implements univariate polynomials in coefficient
// form over the BLS12-381 scalar field, the algebra the quotient,
// linearisation and opening-proof checks are built from.
package polynomial

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/roynalnaruto/plonk/domain"
)

// Polynomial represents a polynomial in coefficient form: the coefficient
// of x^i is stored at Coeffs[i]. A canonical Polynomial never carries a
// trailing zero coefficient; the zero polynomial is the empty slice.
type Polynomial struct {
	Coeffs []fr.Element
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// FromCoefficients builds a canonical Polynomial from coeffs, trimming
// any trailing zero coefficients.
func FromCoefficients(coeffs []fr.Element) Polynomial {
	p := Polynomial{Coeffs: append([]fr.Element(nil), coeffs...)}
	p.truncateLeadingZeros()
	return p
}

func (p *Polynomial) truncateLeadingZeros() {
	for n := len(p.Coeffs); n > 0 && p.Coeffs[n-1].IsZero(); n = len(p.Coeffs) {
		p.Coeffs = p.Coeffs[:n-1]
	}
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.Coeffs) == 0
}

// Degree returns the degree of p, or 0 for the zero polynomial.
func (p Polynomial) Degree() int {
	if p.IsZero() {
		return 0
	}
	return len(p.Coeffs) - 1
}

// LeadingCoefficient returns the coefficient of the highest-degree term,
// or the zero element for the zero polynomial.
func (p Polynomial) LeadingCoefficient() fr.Element {
	if p.IsZero() {
		return fr.Element{}
	}
	return p.Coeffs[len(p.Coeffs)-1]
}

// Evaluate returns p(point) via Horner's method.
func (p Polynomial) Evaluate(point fr.Element) fr.Element {
	var res fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &point)
		res.Add(&res, &p.Coeffs[i])
	}
	return res
}

// Add returns p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	if p.IsZero() {
		return FromCoefficients(other.Coeffs)
	}
	if other.IsZero() {
		return FromCoefficients(p.Coeffs)
	}

	longer, shorter := p.Coeffs, other.Coeffs
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	result := make([]fr.Element, len(longer))
	copy(result, longer)
	for i, c := range shorter {
		result[i].Add(&result[i], &c)
	}
	return FromCoefficients(result)
}

// Sub returns p - other.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	if p.IsZero() {
		return Zero()
	}
	result := make([]fr.Element, len(p.Coeffs))
	for i, c := range p.Coeffs {
		result[i].Neg(&c)
	}
	return Polynomial{Coeffs: result}
}

// ScalarMul returns c * p.
func (p Polynomial) ScalarMul(c fr.Element) Polynomial {
	if p.IsZero() || c.IsZero() {
		return Zero()
	}
	result := make([]fr.Element, len(p.Coeffs))
	for i, coeff := range p.Coeffs {
		result[i].Mul(&coeff, &c)
	}
	return Polynomial{Coeffs: result}
}

// AddConstant returns p + c, treating c as a degree-0 polynomial.
func (p Polynomial) AddConstant(c fr.Element) Polynomial {
	if p.IsZero() {
		return FromCoefficients([]fr.Element{c})
	}
	if c.IsZero() {
		return FromCoefficients(p.Coeffs)
	}
	result := append([]fr.Element(nil), p.Coeffs...)
	result[0].Add(&result[0], &c)
	return FromCoefficients(result)
}

// SubConstant returns p - c.
func (p Polynomial) SubConstant(c fr.Element) Polynomial {
	var neg fr.Element
	neg.Neg(&c)
	return p.AddConstant(neg)
}

// Mul returns p * other via an FFT over a domain large enough to hold the
// product, avoiding the quadratic-time convolution.
func (p Polynomial) Mul(other Polynomial) (Polynomial, error) {
	if p.IsZero() || other.IsZero() {
		return Zero(), nil
	}

	size := uint64(len(p.Coeffs) + len(other.Coeffs))
	d, err := domain.New(size)
	if err != nil {
		return Polynomial{}, err
	}

	a := make([]fr.Element, d.Cardinality)
	b := make([]fr.Element, d.Cardinality)
	copy(a, p.Coeffs)
	copy(b, other.Coeffs)

	d.FFT(a)
	d.FFT(b)
	for i := range a {
		a[i].Mul(&a[i], &b[i])
	}
	d.IFFT(a)

	return FromCoefficients(a), nil
}

// DivideByLinear divides p by the monic linear factor (x - z) using
// Ruffini's (synthetic division) method. PLONK only ever divides by
// factors that evenly split p, so the remainder term is discarded; callers
// must not rely on this for a non-exact division.
func (p Polynomial) DivideByLinear(z fr.Element) Polynomial {
	if p.IsZero() {
		return Zero()
	}

	n := len(p.Coeffs)
	quotient := make([]fr.Element, n)
	var k fr.Element

	// Ruffini's method runs from the leading coefficient down; Coeffs is
	// stored lowest-degree first, so walk it in reverse.
	for i := 0; i < n; i++ {
		coeff := p.Coeffs[n-1-i]
		var t fr.Element
		t.Add(&coeff, &k)
		quotient[i] = t
		k.Mul(&z, &t)
	}

	// The last computed term is the remainder, not a quotient coefficient.
	quotient = quotient[:n-1]
	reverse(quotient)
	return FromCoefficients(quotient)
}

func reverse(xs []fr.Element) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
