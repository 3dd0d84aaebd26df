// Package duskceremony parses a response file from the Dusk Network
// BLS12-381 powers-of-tau ceremony into a KZG10 structured reference
// string usable by this module's setup package.
//
// The response file format is the one produced by the "powersoftau"
// family of ceremony coordinators: a 64-byte hash, followed by
// 2*fileMaxTauPowers-1 compressed G1 points (tau^0 upwards), followed by
// two compressed G2 points (the generator and tau times the generator).
package duskceremony

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

const (
	// hashSize is the length of the response-file challenge hash that
	// precedes the point data.
	hashSize = 64

	// fileMaxTauPowers is the Dusk ceremony's size parameter: the
	// response file carries 2*fileMaxTauPowers-1 G1 powers of tau, and
	// Extract accepts numPowers up to fileMaxTauPowers.
	fileMaxTauPowers = 1 << 21

	g1CompressedSize = bls12381.SizeOfG1AffineCompressed
	g2CompressedSize = bls12381.SizeOfG2AffineCompressed
)

// Extract decodes the first numPowers+1 G1 points (tau^0..tau^numPowers)
// and the two G2 points from a ceremony response file into a kzg.SRS.
// It returns an error if the response is too short or any point fails to
// decompress.
func Extract(response []byte, numPowers uint64) (*kzg.SRS, error) {
	if numPowers > fileMaxTauPowers {
		return nil, fmt.Errorf("duskceremony: requested %d powers, ceremony only has %d", numPowers, fileMaxTauPowers)
	}

	var srs kzg.SRS
	srs.Pk.G1 = make([]bls12381.G1Affine, numPowers+1)

	offset := hashSize
	for i := uint64(0); i <= numPowers; i++ {
		if offset+g1CompressedSize > len(response) {
			return nil, fmt.Errorf("duskceremony: response truncated at G1 power %d", i)
		}
		if _, err := srs.Pk.G1[i].SetBytes(response[offset : offset+g1CompressedSize]); err != nil {
			return nil, fmt.Errorf("duskceremony: decoding G1 power %d: %w", i, err)
		}
		offset += g1CompressedSize
	}

	// The ceremony always carries the full tau-power ladder before the
	// G2 points, regardless of how many powers the caller asked for.
	g2Offset := (2*fileMaxTauPowers-1)*g1CompressedSize + hashSize
	if g2Offset+2*g2CompressedSize > len(response) {
		return nil, fmt.Errorf("duskceremony: response truncated before G2 points")
	}

	if _, err := srs.Vk.G2[0].SetBytes(response[g2Offset : g2Offset+g2CompressedSize]); err != nil {
		return nil, fmt.Errorf("duskceremony: decoding G2 generator: %w", err)
	}
	g2Offset += g2CompressedSize
	if _, err := srs.Vk.G2[1].SetBytes(response[g2Offset : g2Offset+g2CompressedSize]); err != nil {
		return nil, fmt.Errorf("duskceremony: decoding tau*G2 generator: %w", err)
	}

	// tau^0 * G1 is the G1 generator every verifier key binds to.
	srs.Vk.G1 = srs.Pk.G1[0]

	return &srs, nil
}
