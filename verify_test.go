package plonk_test

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/roynalnaruto/plonk"
	"github.com/roynalnaruto/plonk/internal/testcircuit"
	"github.com/roynalnaruto/plonk/setup"
	"github.com/roynalnaruto/plonk/transcript"
)

func mulGateSetup(t *testing.T) (plonk.Proof, plonk.PreProcessedCircuit, plonk.VerifierKey, []fr.Element) {
	t.Helper()

	c := testcircuit.MulGate(3, 4, 12)
	srs, err := setup.Run(testcircuit.DomainSize, setup.TestOnly, nil)
	require.NoError(t, err)

	pre, err := testcircuit.Preprocess(c, srs)
	require.NoError(t, err)
	proof, err := testcircuit.Prove(c, srs)
	require.NoError(t, err)

	vk := plonk.NewVerifierKey(srs)
	return proof, pre, vk, c.PublicInputs
}

func addGateSetup(t *testing.T) (plonk.Proof, plonk.PreProcessedCircuit, plonk.VerifierKey, []fr.Element) {
	t.Helper()

	c := testcircuit.AddGate(2, 5)
	srs, err := setup.Run(testcircuit.DomainSize, setup.TestOnly, nil)
	require.NoError(t, err)

	pre, err := testcircuit.Preprocess(c, srs)
	require.NoError(t, err)
	proof, err := testcircuit.Prove(c, srs)
	require.NoError(t, err)

	vk := plonk.NewVerifierKey(srs)
	return proof, pre, vk, c.PublicInputs
}

func TestVerifyMulGateAccepts(t *testing.T) {
	proof, pre, vk, pub := mulGateSetup(t)

	ok, err := plonk.Verify(proof, pre, transcript.New(), vk, pub)
	require.NoError(t, err)
	require.True(t, ok, "an honestly generated multiplication-gate proof must verify")
}

func TestVerifyAddGateAccepts(t *testing.T) {
	proof, pre, vk, pub := addGateSetup(t)

	ok, err := plonk.Verify(proof, pre, transcript.New(), vk, pub)
	require.NoError(t, err)
	require.True(t, ok, "an honestly generated addition-gate proof must verify")
}

func TestVerifyIsDeterministic(t *testing.T) {
	proof, pre, vk, pub := mulGateSetup(t)

	ok1, err := plonk.Verify(proof, pre, transcript.New(), vk, pub)
	require.NoError(t, err)
	ok2, err := plonk.Verify(proof, pre, transcript.New(), vk, pub)
	require.NoError(t, err)

	require.Equal(t, ok1, ok2, "verifying the same proof twice must produce the same answer")
	require.True(t, ok1)
}

func TestVerifyRejectsWrongPublicInput(t *testing.T) {
	proof, pre, vk, _ := mulGateSetup(t)

	wrongPub := []fr.Element{fr.NewElement(13)}
	ok, err := plonk.Verify(proof, pre, transcript.New(), vk, wrongPub)
	require.NoError(t, err)
	require.False(t, ok, "a proof bound to pub=12 must not verify against pub=13")
}

func TestVerifyRejectsMissingPublicInput(t *testing.T) {
	proof, pre, vk, _ := mulGateSetup(t)

	ok, err := plonk.Verify(proof, pre, transcript.New(), vk, nil)
	require.NoError(t, err)
	require.False(t, ok, "a proof bound to a public input must not verify with none supplied")
}

func TestVerifyRejectsTamperedEvaluation(t *testing.T) {
	proof, pre, vk, pub := mulGateSetup(t)

	one := fr.NewElement(1)
	proof.Evaluations.AEval.Add(&proof.Evaluations.AEval, &one)

	ok, err := plonk.Verify(proof, pre, transcript.New(), vk, pub)
	require.NoError(t, err)
	require.False(t, ok, "flipping a single opening evaluation must break verification")
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	proof, pre, vk, pub := mulGateSetup(t)

	proof.ZComm = bls12381.G1Affine{}

	ok, err := plonk.Verify(proof, pre, transcript.New(), vk, pub)
	require.NoError(t, err)
	require.False(t, ok, "replacing a commitment with the identity must break verification")
}

func TestVerifyRejectsSwappedProofAcrossCircuits(t *testing.T) {
	mulProof, _, _, _ := mulGateSetup(t)
	_, addPre, addVK, addPub := addGateSetup(t)

	ok, err := plonk.Verify(mulProof, addPre, transcript.New(), addVK, addPub)
	require.NoError(t, err)
	require.False(t, ok, "a proof for one circuit must not verify against another circuit's preprocessed key")
}

func TestMarshalUnmarshalRoundTripsAndStillVerifies(t *testing.T) {
	proof, pre, vk, pub := mulGateSetup(t)

	encoded := proof.Marshal()
	decoded, err := plonk.Unmarshal(encoded)
	require.NoError(t, err)

	ok, err := plonk.Verify(decoded, pre, transcript.New(), vk, pub)
	require.NoError(t, err)
	require.True(t, ok)
}
