package setup

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestRunTestOnlySizesAndGenerators(t *testing.T) {
	srs, err := Run(10, TestOnly, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(srs.Pk.G1) != 21 {
		t.Errorf("expected 21 G1 elements (16 rounded up + 5), got %d", len(srs.Pk.G1))
	}

	_, _, g1Gen, g2Gen := bls12381.Generators()
	if !srs.Pk.G1[0].Equal(&g1Gen) {
		t.Errorf("srs.Pk.G1[0] is not the G1 generator")
	}
	if !srs.Vk.G2[0].Equal(&g2Gen) {
		t.Errorf("srs.Vk.G2[0] is not the G2 generator")
	}
}

func TestRunTestOnlyIsRandomizedBetweenCalls(t *testing.T) {
	srsA, err := Run(4, TestOnly, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	srsB, err := Run(4, TestOnly, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if srsA.Vk.G2[1].Equal(&srsB.Vk.G2[1]) {
		t.Errorf("two independent test setups produced the same toxic waste")
	}
}

func TestRunRejectsUnsupportedConf(t *testing.T) {
	_, err := Run(4, Conf(99), nil)
	if err == nil {
		t.Errorf("expected an error for an unsupported configuration")
	}
}

func TestRunDuskCeremonyPropagatesExtractionErrors(t *testing.T) {
	_, err := Run(4, DuskCeremony, []byte("too short"))
	if err == nil {
		t.Errorf("expected an error for a truncated ceremony response")
	}
}
