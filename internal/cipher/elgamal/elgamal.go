package elgamal

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/internal/dh"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// EphemeralKey draws the per-message randomness k from the same bounded
// range the Diffie-Hellman exercises use for private keys.
func EphemeralKey(random io.Reader, p *big.Int) (*big.Int, error) {
	return dh.BoundedKey(random, p)
}

// Encrypt produces the ElGamal ciphertext pair for message m under the
// receiver's public key y = g^x mod p:
//
//	c1 = g^k mod p
//	c2 = m * y^k mod p
//
// m must be a residue below p.
func Encrypt(random io.Reader, p, g, y, m *big.Int) (c1, c2 *big.Int, err error) {
	if m.Sign() < 0 || m.Cmp(p) >= 0 {
		return nil, nil, cryptolab.NewInputError("elgamal encrypt", "message must be in range [0, p)", nil)
	}
	k, err := EphemeralKey(random, p)
	if err != nil {
		return nil, nil, err
	}
	c1 = new(big.Int).Exp(g, k, p)
	c2 = new(big.Int).Exp(y, k, p)
	c2.Mul(c2, m)
	c2.Mod(c2, p)
	return c1, c2, nil
}

// Decrypt recovers m from (c1, c2) with the private exponent x:
//
//	s  = c1^x mod p
//	m  = c2 * s^-1 mod p
//
// A non-invertible shared value surfaces ErrDivisionUndefined.
func Decrypt(p, x, c1, c2 *big.Int) (*big.Int, error) {
	s := new(big.Int).Exp(c1, x, p)
	sInv := new(big.Int).ModInverse(s, p)
	if sInv == nil {
		return nil, cryptolab.NewInputError("elgamal decrypt",
			"shared value not invertible mod p", cryptolab.ErrDivisionUndefined)
	}
	m := new(big.Int).Mul(c2, sInv)
	return m.Mod(m, p), nil
}

// TextCipher runs ElGamal over whole messages using the two-digit ASCII
// codec, so the encoded message must stay below p. Ciphertexts are the two
// decimal components separated by a space.
type TextCipher struct {
	P       *big.Int
	G       *big.Int
	Public  *big.Int  // receiver's y = g^x mod p
	Private *big.Int  // nil for an encrypt-only cipher
	Random  io.Reader // defaults to crypto/rand
}

func (c *TextCipher) Kind() cryptolab.Kind {
	return cryptolab.KindElGamal
}

func (c *TextCipher) Encrypt(plaintext string) (string, error) {
	m, err := codec.DecimalEncode(plaintext)
	if err != nil {
		return "", err
	}
	if m.Cmp(c.P) >= 0 {
		return "", cryptolab.NewInputError("elgamal encrypt", "message too long for modulus", nil)
	}
	random := c.Random
	if random == nil {
		random = rand.Reader
	}
	c1, c2, err := Encrypt(random, c.P, c.G, c.Public, m)
	if err != nil {
		return "", err
	}
	return c1.String() + " " + c2.String(), nil
}

func (c *TextCipher) Decrypt(ciphertext string) (string, error) {
	parts := strings.Fields(ciphertext)
	if len(parts) != 2 {
		return "", cryptolab.NewInputError("elgamal decrypt",
			"ciphertext must be two decimal integers", cryptolab.ErrInvalidEncoding)
	}
	c1, ok1 := new(big.Int).SetString(parts[0], 10)
	c2, ok2 := new(big.Int).SetString(parts[1], 10)
	if !ok1 || !ok2 {
		return "", cryptolab.NewInputError("elgamal decrypt",
			"ciphertext must be two decimal integers", cryptolab.ErrInvalidEncoding)
	}
	if c.Private == nil {
		return "", cryptolab.NewInputError("elgamal decrypt", "no private exponent", nil)
	}
	m, err := Decrypt(c.P, c.Private, c1, c2)
	if err != nil {
		return "", err
	}
	return codec.DecimalDecode(m)
}
