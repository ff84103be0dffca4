package exchange

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/cryptolab/go-cryptolab/internal/commitment"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Session simulates a two-party key agreement between Alice and Bob over
// any KeyExchange scheme, the walkthrough the exercises and the CLI demo
// print. With Committed set, each party commits to its public share
// before either share is revealed.
type Session struct {
	Scheme    cryptolab.KeyExchange
	AliceKey  *big.Int
	BobKey    *big.Int
	Committed bool
}

// Transcript records what crossed the (simulated) wire and the outcome.
type Transcript struct {
	AliceShare   []byte
	BobShare     []byte
	SharedSecret []byte
	Steps        []string
}

// Run executes the exchange and checks that both parties derive the same
// secret. A mismatch or a failed reveal aborts with an error.
func (s *Session) Run() (*Transcript, error) {
	tr := &Transcript{}
	step := func(format string, args ...interface{}) {
		tr.Steps = append(tr.Steps, fmt.Sprintf(format, args...))
	}

	aliceShare, err := s.Scheme.PublicShare(s.AliceKey)
	if err != nil {
		return nil, fmt.Errorf("alice public share: %w", err)
	}
	bobShare, err := s.Scheme.PublicShare(s.BobKey)
	if err != nil {
		return nil, fmt.Errorf("bob public share: %w", err)
	}
	tr.AliceShare = aliceShare
	tr.BobShare = bobShare

	if s.Committed {
		aliceCom, err := commitment.Commit(aliceShare)
		if err != nil {
			return nil, err
		}
		bobCom, err := commitment.Commit(bobShare)
		if err != nil {
			return nil, err
		}
		step("alice -> bob: commitment %x", aliceCom.C[:8])
		step("bob -> alice: commitment %x", bobCom.C[:8])

		if !commitment.Verify(aliceCom.C, aliceCom.Salt, aliceShare) {
			return nil, fmt.Errorf("alice reveal does not match commitment")
		}
		if !commitment.Verify(bobCom.C, bobCom.Salt, bobShare) {
			return nil, fmt.Errorf("bob reveal does not match commitment")
		}
		step("both reveals verified against commitments")
	}

	step("alice -> bob: public share %x", aliceShare)
	step("bob -> alice: public share %x", bobShare)

	aliceSecret, err := s.Scheme.SharedSecret(bobShare, s.AliceKey)
	if err != nil {
		return nil, fmt.Errorf("alice shared secret: %w", err)
	}
	bobSecret, err := s.Scheme.SharedSecret(aliceShare, s.BobKey)
	if err != nil {
		return nil, fmt.Errorf("bob shared secret: %w", err)
	}
	if !bytes.Equal(aliceSecret, bobSecret) {
		return nil, fmt.Errorf("%s: parties derived different secrets", s.Scheme.Kind())
	}
	tr.SharedSecret = aliceSecret
	step("both parties derived secret %x", aliceSecret)

	return tr, nil
}
