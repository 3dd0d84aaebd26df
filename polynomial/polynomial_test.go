package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func elems(vals ...int64) []fr.Element {
	out := make([]fr.Element, len(vals))
	for i, v := range vals {
		if v < 0 {
			var e fr.Element
			e.SetInt64(v)
			out[i] = e
		} else {
			out[i] = fr.NewElement(uint64(v))
		}
	}
	return out
}

func TestFromCoefficientsTrimsTrailingZeros(t *testing.T) {
	p := FromCoefficients(elems(1, 2, 0, 0))
	require.Equal(t, 2, len(p.Coeffs))
	require.Equal(t, 1, p.Degree())
}

func TestZeroPolynomialIsEmpty(t *testing.T) {
	require.True(t, Zero().IsZero())
	require.True(t, FromCoefficients(nil).IsZero())
	require.True(t, FromCoefficients(elems(0, 0, 0)).IsZero())
}

func TestDegreeOfZeroIsZero(t *testing.T) {
	require.Equal(t, 0, Zero().Degree())
}

func TestAddIsCommutative(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))
	b := FromCoefficients(elems(4, 5))

	ab := a.Add(b)
	ba := b.Add(a)
	require.Equal(t, len(ab.Coeffs), len(ba.Coeffs))
	for i := range ab.Coeffs {
		require.True(t, ab.Coeffs[i].Equal(&ba.Coeffs[i]))
	}
}

func TestAddWithZeroIsIdentity(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))
	sum := a.Add(Zero())
	require.Equal(t, len(a.Coeffs), len(sum.Coeffs))
	for i := range a.Coeffs {
		require.True(t, a.Coeffs[i].Equal(&sum.Coeffs[i]))
	}
}

func TestSubSelfIsZero(t *testing.T) {
	a := FromCoefficients(elems(7, 8, 9))
	diff := a.Sub(a)
	require.True(t, diff.IsZero())
}

func TestNegTwiceIsIdentity(t *testing.T) {
	a := FromCoefficients(elems(3, 4, 5))
	nn := a.Neg().Neg()
	for i := range a.Coeffs {
		require.True(t, a.Coeffs[i].Equal(&nn.Coeffs[i]))
	}
}

func TestEvaluateIsHomomorphicForAddition(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))
	b := FromCoefficients(elems(4, 5))
	point := fr.NewElement(17)

	sum := a.Add(b)
	var want fr.Element
	av := a.Evaluate(point)
	bv := b.Evaluate(point)
	want.Add(&av, &bv)

	got := sum.Evaluate(point)
	require.True(t, want.Equal(&got))
}

func TestMulDegreeIsAdditive(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))       // degree 2
	b := FromCoefficients(elems(1, 1))          // degree 1
	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, a.Degree()+b.Degree(), prod.Degree())
}

func TestMulMatchesDirectEvaluation(t *testing.T) {
	a := FromCoefficients(elems(3, 5, 7)) // 3 + 5x + 7x^2
	b := FromCoefficients(elems(2, 1))    // 2 + x

	prod, err := a.Mul(b)
	require.NoError(t, err)

	point := fr.NewElement(11)
	want := a.Evaluate(point)
	bv := b.Evaluate(point)
	want.Mul(&want, &bv)

	got := prod.Evaluate(point)
	require.True(t, want.Equal(&got))
}

func TestMulByZeroIsZero(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))
	prod, err := a.Mul(Zero())
	require.NoError(t, err)
	require.True(t, prod.IsZero())
}

func TestMulIsCommutative(t *testing.T) {
	a := FromCoefficients(elems(2, 3))
	b := FromCoefficients(elems(5, 7, 11))

	ab, err := a.Mul(b)
	require.NoError(t, err)
	ba, err := b.Mul(a)
	require.NoError(t, err)

	require.Equal(t, len(ab.Coeffs), len(ba.Coeffs))
	for i := range ab.Coeffs {
		require.True(t, ab.Coeffs[i].Equal(&ba.Coeffs[i]))
	}
}

func TestScalarMulMatchesEvaluation(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))
	c := fr.NewElement(9)
	scaled := a.ScalarMul(c)

	point := fr.NewElement(13)
	want := a.Evaluate(point)
	want.Mul(&want, &c)
	got := scaled.Evaluate(point)
	require.True(t, want.Equal(&got))
}

func TestAddConstantShiftsEvaluationByConstant(t *testing.T) {
	a := FromCoefficients(elems(1, 2, 3))
	c := fr.NewElement(4)
	shifted := a.AddConstant(c)

	point := fr.NewElement(6)
	want := a.Evaluate(point)
	want.Add(&want, &c)
	got := shifted.Evaluate(point)
	require.True(t, want.Equal(&got))
}

// Ported directly from original_source's ruffini test: divides
// x^2 + 4x + 4 by x + 2, expecting quotient x + 2.
func TestDivideByLinearQuadratic(t *testing.T) {
	quadratic := FromCoefficients(elems(4, 4, 1))
	var negTwo fr.Element
	negTwo.SetInt64(-2)

	quotient := quadratic.DivideByLinear(negTwo)
	expected := FromCoefficients(elems(2, 1))

	require.Equal(t, len(expected.Coeffs), len(quotient.Coeffs))
	for i := range expected.Coeffs {
		require.True(t, expected.Coeffs[i].Equal(&quotient.Coeffs[i]))
	}
}

// Ported from original_source's ruffini-zero test: the zero polynomial
// divides to zero regardless of the root, and x^2 + x divided by x
// (i.e. z = 0) gives x + 1.
func TestDivideByLinearZeroCases(t *testing.T) {
	var negTwo fr.Element
	negTwo.SetInt64(-2)
	require.True(t, Zero().DivideByLinear(negTwo).IsZero())

	p := FromCoefficients(elems(0, 1, 1))
	quotient := p.DivideByLinear(fr.Element{})
	expected := FromCoefficients(elems(1, 1))
	require.Equal(t, len(expected.Coeffs), len(quotient.Coeffs))
	for i := range expected.Coeffs {
		require.True(t, expected.Coeffs[i].Equal(&quotient.Coeffs[i]))
	}
}

func TestDivideByLinearIsExactFactor(t *testing.T) {
	// (x - 3)(x - 5) = x^2 - 8x + 15
	root := fr.NewElement(3)
	var negFifteen, negEight fr.Element
	negFifteen.SetInt64(15)
	negEight.SetInt64(-8)
	p := FromCoefficients([]fr.Element{negFifteen, negEight, fr.NewElement(1)})

	quotient := p.DivideByLinear(root)
	// quotient should be (x - 5): evaluating the original at 5 must be zero,
	// and the quotient evaluated at 5 must be zero too.
	five := fr.NewElement(5)
	qv := quotient.Evaluate(five)
	require.True(t, qv.IsZero())
}
