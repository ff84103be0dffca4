package caesar

import (
	"strings"

	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Shift normalizes text and advances every symbol index by k modulo the
// alphabet radix. k may be any integer, including negative or larger than
// the radix.
func Shift(a codec.Alphabet, text string, k int) (string, error) {
	text = a.Normalize(text)
	idx, err := a.Indices(text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, i := range idx {
		b.WriteRune(a.Symbol(i + k))
	}
	return b.String(), nil
}

// Unshift inverts Shift for the same key.
func Unshift(a codec.Alphabet, text string, k int) (string, error) {
	return Shift(a, text, -k)
}

// NGramFrequencies counts every n-gram of the normalized text using a
// sliding window of width n and stride 1. Used for frequency-analysis
// exercises.
func NGramFrequencies(a codec.Alphabet, text string, n int) (map[string]int, error) {
	if n <= 0 {
		return nil, cryptolab.NewInputError("ngram frequencies", "window size must be positive", nil)
	}
	runes := []rune(a.Normalize(text))
	freq := make(map[string]int)
	for i := 0; i+n <= len(runes); i++ {
		freq[string(runes[i:i+n])]++
	}
	return freq, nil
}

// Cipher is the Caesar scheme under the tagged-variant contract.
type Cipher struct {
	Alphabet codec.Alphabet
	Key      int
}

func (c *Cipher) Kind() cryptolab.Kind {
	return cryptolab.KindCaesar
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	return Shift(c.Alphabet, plaintext, c.Key)
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	return Unshift(c.Alphabet, ciphertext, c.Key)
}
