package rsa

import (
	"math/big"

	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// TextCipher runs raw RSA over whole messages: the plaintext is normalized
// against the alphabet, then converted to a single integer with the
// two-digit character codec, whose codes never start with a zero digit, so
// the round trip is exact even for messages starting with 'A'. The encoded
// message must stay below the modulus. Ciphertexts are decimal strings.
type TextCipher struct {
	Alphabet codec.Alphabet
	Public   PublicKey
	D        *big.Int // nil for an encrypt-only cipher
}

func (c *TextCipher) Kind() cryptolab.Kind {
	return cryptolab.KindRSA
}

func (c *TextCipher) Encrypt(plaintext string) (string, error) {
	m, err := codec.DecimalEncode(c.Alphabet.Normalize(plaintext))
	if err != nil {
		return "", err
	}
	if m.Cmp(c.Public.N) >= 0 {
		return "", cryptolab.NewInputError("rsa encrypt", "message too long for modulus", nil)
	}
	ct, err := Encrypt(m, c.Public.E, c.Public.N)
	if err != nil {
		return "", err
	}
	return ct.String(), nil
}

func (c *TextCipher) Decrypt(ciphertext string) (string, error) {
	ct, ok := new(big.Int).SetString(ciphertext, 10)
	if !ok {
		return "", cryptolab.NewInputError("rsa decrypt",
			"ciphertext is not a decimal integer", cryptolab.ErrInvalidEncoding)
	}
	if c.D == nil {
		return "", cryptolab.NewInputError("rsa decrypt", "no private exponent", nil)
	}
	m, err := Decrypt(ct, c.D, c.Public.N)
	if err != nil {
		return "", err
	}
	return codec.DecimalDecode(m)
}
