/*
Package setup builds a KZG10 structured reference string for BLS12-381
and derives the VerifierKey this module's verifier checks proofs
against.

Source of the trusted parameters
====================================================================================================
To secure the PLONK protocol, prover and verifier need a shared
structured reference string. Producing one requires a "trusted setup"
procedure, so called because it is critical to run it correctly to
preserve the secrecy of the toxic waste (the setup secret tau).

To make the risk of a dishonest setup statistically insignificant, a
distributed, permissionless ceremony, open to everyone, can be run. The
ceremony guarantees security as long as at least one participant is
honest: every participant would have to collude to act maliciously.

This package supports two ways of obtaining an SRS:

  - TestOnly generates toxic waste locally and discards it immediately
    after deriving the SRS. It is fast and convenient, but the secret
    exponent is known for the lifetime of the process that generated it
    and must never be used to secure a real deployment.

  - DuskCeremony loads a response file from the Dusk Network ceremony
    (see setup/duskceremony and setup/DuskBLS12_381/doc.go), which
    extended the Zcash Powers of Tau ceremony with 15 additional
    participants and supports circuits up to 2^21 (2M) constraints.

Learn more about the ceremony here:
https://github.com/dusk-network/trusted-setup
*/
package setup
