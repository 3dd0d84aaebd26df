package setup

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"

	"github.com/roynalnaruto/plonk/setup/duskceremony"
)

// Conf selects what kind of structured reference string Run produces.
type Conf int

const (
	// TestOnly generates toxic waste locally with math/rand and discards
	// it as soon as the SRS is derived. It must never be used to secure
	// a real deployment.
	TestOnly Conf = iota

	// DuskCeremony derives the SRS from a response file produced by the
	// Dusk Network trusted setup ceremony. See setup/DuskBLS12_381.
	DuskCeremony
)

// Run builds a KZG10 SRS sized for a circuit with numConstraints gates,
// rounding up to the next power of two plus the extra openings the
// verifier's permutation argument requires. ceremonyResponse is ignored
// unless conf is DuskCeremony, in which case it must hold the raw bytes
// of a ceremony response file.
func Run(numConstraints uint64, conf Conf, ceremonyResponse []byte) (*kzg.SRS, error) {
	size := ecc.NextPowerOfTwo(numConstraints) + 5

	switch conf {
	case TestOnly:
		srs, err := kzg.NewSRS(size, big.NewInt(-1))
		if err != nil {
			return nil, fmt.Errorf("error creating test SRS: %v", err)
		}
		return srs, nil
	case DuskCeremony:
		srs, err := duskceremony.Extract(ceremonyResponse, size-1)
		if err != nil {
			return nil, fmt.Errorf("error extracting SRS from ceremony response: %v", err)
		}
		return srs, nil
	default:
		return nil, fmt.Errorf("unsupported setup configuration: %v", conf)
	}
}
