package vigenere

import (
	"strings"

	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Encrypt applies a repeating-key shift: symbol i of the normalized text
// advances by the index of key symbol i mod len(key).
func Encrypt(a codec.Alphabet, text, key string) (string, error) {
	return transform(a, text, key, 1)
}

// Decrypt inverts Encrypt for the same key.
func Decrypt(a codec.Alphabet, text, key string) (string, error) {
	return transform(a, text, key, -1)
}

func transform(a codec.Alphabet, text, key string, dir int) (string, error) {
	keyIdx, err := a.Indices(a.Normalize(key))
	if err != nil {
		return "", err
	}
	if len(keyIdx) == 0 {
		return "", cryptolab.NewInputError("vigenere", "key has no alphabet symbols", nil)
	}
	idx, err := a.Indices(a.Normalize(text))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, v := range idx {
		b.WriteRune(a.Symbol(v + dir*keyIdx[i%len(keyIdx)]))
	}
	return b.String(), nil
}

// Cipher is the Vigenere scheme under the tagged-variant contract.
type Cipher struct {
	Alphabet codec.Alphabet
	Key      string
}

func (c *Cipher) Kind() cryptolab.Kind {
	return cryptolab.KindVigenere
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	return Encrypt(c.Alphabet, plaintext, c.Key)
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	return Decrypt(c.Alphabet, ciphertext, c.Key)
}
