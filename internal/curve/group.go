package curve

import (
	"io"
	"math/big"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Group abstracts a fixed, named elliptic group for the key-exchange
// exercises, so the same walkthrough runs on secp256k1, edwards25519 or
// any custom Weierstrass curve. Elements are opaque bytes in the group's
// own encoding.
type Group interface {
	// Name returns the group's common name.
	Name() string

	// Order returns the order of the base point.
	Order() *big.Int

	// NewScalar draws a uniform scalar in [0, order).
	NewScalar(random io.Reader) (*big.Int, error)

	// ScalarBaseMult computes k*G and returns the encoded element.
	ScalarBaseMult(k *big.Int) ([]byte, error)

	// ScalarMult computes k*P for an encoded element P.
	ScalarMult(element []byte, k *big.Int) ([]byte, error)
}

// GroupExchange runs the Diffie-Hellman exchange on any named Group.
type GroupExchange struct {
	Group Group
}

func (e *GroupExchange) Kind() cryptolab.Kind {
	return cryptolab.KindEllipticCurve
}

func (e *GroupExchange) PublicShare(private *big.Int) ([]byte, error) {
	return e.Group.ScalarBaseMult(private)
}

func (e *GroupExchange) SharedSecret(theirPublic []byte, private *big.Int) ([]byte, error) {
	return e.Group.ScalarMult(theirPublic, private)
}
