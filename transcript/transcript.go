// Package transcript implements the Fiat-Shamir oracle the verifier
// replays to re-derive the prover's challenges deterministically.
package transcript

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
)

// challengeOrder is the fixed sequence of challenges the verifier draws,
// in the order §4.2.1 draws them. gnark-crypto's fiat-shamir transcript
// requires every challenge name to be predeclared up front; this is the
// full set this protocol ever needs.
var challengeOrder = []string{"beta", "gamma", "alpha", "z", "v", "u"}

// Transcript is a label-ordered Fiat-Shamir oracle: every append is bound
// under the label it names, tagged toward whichever challenge is next in
// line to be drawn, and every challenge must be drawn in the fixed order
// above. This mirrors the append_commitment/append_scalar/challenge_scalar
// contract while resting on gnark-crypto's named-bucket transcript rather
// than a hand-rolled sponge.
type Transcript struct {
	inner *fiatshamir.Transcript
	next  int
}

// New returns a fresh transcript at the start of the challenge sequence.
func New() *Transcript {
	t := fiatshamir.NewTranscript(fiatshamir.SHA256, challengeOrder...)
	return &Transcript{inner: &t}
}

func (t *Transcript) currentBucket() (string, error) {
	if t.next >= len(challengeOrder) {
		return "", fmt.Errorf("transcript: all %d challenges already drawn", len(challengeOrder))
	}
	return challengeOrder[t.next], nil
}

// AppendCommitment binds a labelled G1 commitment into the transcript.
func (t *Transcript) AppendCommitment(label string, c *bls12381.G1Affine) error {
	bucket, err := t.currentBucket()
	if err != nil {
		return err
	}
	raw := c.Bytes()
	data := append([]byte(label), raw[:]...)
	if err := t.inner.Bind(bucket, data); err != nil {
		return fmt.Errorf("transcript: bind commitment %q: %w", label, err)
	}
	return nil
}

// AppendScalar binds a labelled field element into the transcript.
func (t *Transcript) AppendScalar(label string, s fr.Element) error {
	bucket, err := t.currentBucket()
	if err != nil {
		return err
	}
	raw := s.Bytes()
	data := append([]byte(label), raw[:]...)
	if err := t.inner.Bind(bucket, data); err != nil {
		return fmt.Errorf("transcript: bind scalar %q: %w", label, err)
	}
	return nil
}

// ChallengeScalar draws the next challenge in the fixed sequence; name
// must match the challenge whose turn it is, which callers always know
// from the §4.2.1 replay order.
func (t *Transcript) ChallengeScalar(name string) (fr.Element, error) {
	bucket, err := t.currentBucket()
	if err != nil {
		return fr.Element{}, err
	}
	if name != bucket {
		return fr.Element{}, fmt.Errorf("transcript: expected challenge %q next, got %q", bucket, name)
	}
	raw, err := t.inner.ComputeChallenge(bucket)
	if err != nil {
		return fr.Element{}, fmt.Errorf("transcript: compute challenge %q: %w", name, err)
	}
	var c fr.Element
	c.SetBytes(raw)
	t.next++
	return c, nil
}
