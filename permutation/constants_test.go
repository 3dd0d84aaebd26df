package permutation

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

// legendreSymbol reports whether x is a quadratic non-residue modulo the
// scalar field's characteristic, via Euler's criterion x^((r-1)/2).
func legendreSymbol(x *fr.Element) bool {
	var halfExp big.Int
	halfExp.Sub(fr.Modulus(), big.NewInt(1))
	halfExp.Rsh(&halfExp, 1)

	var res fr.Element
	res.Exp(*x, &halfExp)

	var minusOne fr.Element
	minusOne.SetOne().Neg(&minusOne)

	return res.Equal(&minusOne)
}

func TestLegendreSymbol(t *testing.T) {
	seven := fr.NewElement(7)
	require.True(t, legendreSymbol(&seven))

	six := fr.NewElement(6)
	require.False(t, legendreSymbol(&six))
}

func TestCosetGeneratorsAreDisjoint(t *testing.T) {
	// K1, K2 and their pairwise ratios must be non-residues w.r.t. the
	// multiplicative subgroup of order n: this is what keeps the three
	// wire cosets H, K1*H, K2*H disjoint (spec.md §3).
	for _, k := range []fr.Element{K1, K2} {
		require.True(t, legendreSymbol(&k),
			"coset generator %s must be a quadratic non-residue", k.String())
	}

	var ratio fr.Element
	ratio.Div(&K2, &K1)
	require.True(t, legendreSymbol(&ratio),
		"K2/K1 must be a quadratic non-residue")
}
