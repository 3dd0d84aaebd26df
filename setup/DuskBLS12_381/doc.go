/*
Command audit independently decodes a response file from the Dusk
Network BLS12-381 trusted setup ceremony and prints the resulting SRS
points, so they can be checked by hand against the ceremony's own
published attestation before the same response file is handed to
setup.Run with setup.DuskCeremony.

To audit a response file:

 1. Download the original response file from
    https://github.com/dusk-network/trusted-setup/tree/main/contributions/0015

 2. Run: go run ./setup/DuskBLS12_381 response <num-powers>

The printed G1/G2 points should be cross-checked against the values the
ceremony coordinator published for that contribution.
*/
package main
