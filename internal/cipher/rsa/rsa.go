package rsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

var one = big.NewInt(1)

// PublicKey is the public half of a textbook RSA key pair.
type PublicKey struct {
	N *big.Int // Modulus n = p * q
	E *big.Int // Public exponent
}

// PrivateKey holds the full key pair. No primality or coprimality checks
// are performed on caller-supplied values; the library assumes correctness.
type PrivateKey struct {
	PublicKey
	D *big.Int // Private exponent, d = e^-1 mod phi(n)
}

// Encrypt computes m^e mod n. The message must already be a residue:
// 0 <= m < n.
func Encrypt(m, e, n *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		return nil, cryptolab.NewInputError("rsa encrypt", "message must be in range [0, n)", nil)
	}
	return new(big.Int).Exp(m, e, n), nil
}

// Decrypt computes c^d mod n, inverting Encrypt for a matching key pair.
func Decrypt(c, d, n *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(n) >= 0 {
		return nil, cryptolab.NewInputError("rsa decrypt", "ciphertext must be in range [0, n)", nil)
	}
	return new(big.Int).Exp(c, d, n), nil
}

// PrivateExponent derives d = e^-1 mod (p-1)(q-1) and the modulus n = p*q
// from two chosen primes and a public exponent. p and q must be distinct
// and e coprime to phi(n); a non-invertible e surfaces ErrDivisionUndefined.
func PrivateExponent(e, p, q *big.Int) (d, n *big.Int, err error) {
	if p.Cmp(q) == 0 {
		return nil, nil, cryptolab.NewInputError("rsa private exponent", "p and q must be distinct", nil)
	}
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)
	d = new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, nil, cryptolab.NewInputError("rsa private exponent",
			"e is not invertible mod phi(n)", cryptolab.ErrDivisionUndefined)
	}
	return d, new(big.Int).Mul(p, q), nil
}

// GenerateKey produces a key pair with the given modulus bit length and
// public exponent e (65537 when e is nil). bits must be at least 16; the
// classroom exercises use small moduli on purpose.
func GenerateKey(random io.Reader, bits int, e *big.Int) (*PrivateKey, error) {
	if bits < 16 {
		return nil, cryptolab.NewInputError("rsa keygen", "bits must be at least 16", nil)
	}
	if e == nil {
		e = big.NewInt(65537)
	}

	for {
		p, err := rand.Prime(random, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := rand.Prime(random, bits-bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		// Retry until e is invertible mod phi(n).
		d, n, err := PrivateExponent(e, p, q)
		if err != nil {
			continue
		}
		return &PrivateKey{
			PublicKey: PublicKey{N: n, E: new(big.Int).Set(e)},
			D:         d,
		}, nil
	}
}
