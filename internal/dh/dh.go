package dh

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// PublicShare computes g^private mod p, the value a party transmits.
func PublicShare(g, p, private *big.Int) *big.Int {
	return new(big.Int).Exp(g, private, p)
}

// SharedSecret computes theirPublic^myPrivate mod p. Both parties obtain
// g^(a*b) mod p without ever multiplying the private exponents directly.
func SharedSecret(theirPublic, p, myPrivate *big.Int) *big.Int {
	return new(big.Int).Exp(theirPublic, myPrivate, p)
}

// BoundedKey draws a uniform private exponent from [ceil(p^1/4), p^3/4],
// the range the exercises use so the exponent is neither trivially small
// nor close to the group order.
func BoundedKey(random io.Reader, p *big.Int) (*big.Int, error) {
	sqrtP := new(big.Int).Sqrt(p)
	lo := new(big.Int).Sqrt(sqrtP)
	// Round the fourth root up.
	fourth := new(big.Int).Mul(lo, lo)
	fourth.Mul(fourth, fourth)
	if fourth.Cmp(p) < 0 {
		lo.Add(lo, big.NewInt(1))
	}
	hi := new(big.Int).Mul(sqrtP, lo) // ~p^(3/4)

	width := new(big.Int).Sub(hi, lo)
	if width.Sign() <= 0 {
		return nil, cryptolab.NewInputError("bounded key", "modulus too small", nil)
	}
	k, err := rand.Int(random, width)
	if err != nil {
		return nil, err
	}
	return k.Add(k, lo), nil
}

// GenerateKey draws a private exponent via BoundedKey and derives the
// matching public share.
func GenerateKey(random io.Reader, p, g *big.Int) (private, public *big.Int, err error) {
	private, err = BoundedKey(random, p)
	if err != nil {
		return nil, nil, err
	}
	return private, PublicShare(g, p, private), nil
}

// Exchange is the modular Diffie-Hellman scheme under the tagged-variant
// contract. Shares and secrets are big-endian big.Int bytes.
type Exchange struct {
	P *big.Int // public prime modulus
	G *big.Int // public generator
}

func (e *Exchange) Kind() cryptolab.Kind {
	return cryptolab.KindDiffieHellman
}

func (e *Exchange) PublicShare(private *big.Int) ([]byte, error) {
	return PublicShare(e.G, e.P, private).Bytes(), nil
}

func (e *Exchange) SharedSecret(theirPublic []byte, private *big.Int) ([]byte, error) {
	their := new(big.Int).SetBytes(theirPublic)
	return SharedSecret(their, e.P, private).Bytes(), nil
}
