// Command audit loads a Dusk Network ceremony response file and prints
// the decoded SRS points so they can be checked by hand against the
// ceremony's published attestation, without trusting any other part of
// this module's setup path.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/roynalnaruto/plonk/setup/duskceremony"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <response-file> <num-powers>\n"+
			"Refer to doc.go for instructions on how to download the response file.", os.Args[0])
	}

	responseBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("error reading response file: %v", err)
	}

	numPowers, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("invalid num-powers argument: %v", err)
	}

	srs, err := duskceremony.Extract(responseBytes, numPowers)
	if err != nil {
		log.Fatalf("error extracting SRS: %v", err)
	}

	g1First := srs.Pk.G1[0].Bytes()
	g1Last := srs.Pk.G1[len(srs.Pk.G1)-1].Bytes()
	g2Gen := srs.Vk.G2[0].Bytes()
	g2Tau := srs.Vk.G2[1].Bytes()

	fmt.Printf("decoded %d G1 powers of tau\n", len(srs.Pk.G1))
	fmt.Printf("G1[0]          = 0x%s\n", hex.EncodeToString(g1First[:]))
	fmt.Printf("G1[%d] = 0x%s\n", len(srs.Pk.G1)-1, hex.EncodeToString(g1Last[:]))
	fmt.Printf("G2 generator   = 0x%s\n", hex.EncodeToString(g2Gen[:]))
	fmt.Printf("tau*G2         = 0x%s\n", hex.EncodeToString(g2Tau[:]))
}
