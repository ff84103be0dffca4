package elgamal

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptolab/go-cryptolab/internal/dh"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// 2^127 - 1, comfortably above any short test message.
func testPrime() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	p := testPrime()
	g := big.NewInt(3)

	x, y, err := dh.GenerateKey(rand.Reader, p, g)
	require.NoError(t, err)

	m := big.NewInt(4242424242)
	c1, c2, err := Encrypt(rand.Reader, p, g, y, m)
	require.NoError(t, err)

	back, err := Decrypt(p, x, c1, c2)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestEncryptRejectsOversizedMessage(t *testing.T) {
	p := big.NewInt(23)
	_, _, err := Encrypt(rand.Reader, p, big.NewInt(5), big.NewInt(8), big.NewInt(23))
	assert.Error(t, err)

	_, _, err = Encrypt(rand.Reader, p, big.NewInt(5), big.NewInt(8), big.NewInt(-1))
	assert.Error(t, err)
}

func TestDecryptNonInvertibleShared(t *testing.T) {
	// Composite "p" = 15 with c1 = 3: shared = 3^x mod 15 is divisible by 3,
	// never invertible.
	_, err := Decrypt(big.NewInt(15), big.NewInt(2), big.NewInt(3), big.NewInt(7))
	assert.ErrorIs(t, err, cryptolab.ErrDivisionUndefined)
}

func TestTextCipherRoundTrip(t *testing.T) {
	p := testPrime()
	g := big.NewInt(3)
	x, y, err := dh.GenerateKey(rand.Reader, p, g)
	require.NoError(t, err)

	var c cryptolab.Cipher = &TextCipher{P: p, G: g, Public: y, Private: x}
	assert.Equal(t, cryptolab.KindElGamal, c.Kind())

	ct, err := c.Encrypt("TOP SECRET")
	require.NoError(t, err)
	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "TOP SECRET", pt)
}

func TestTextCipherRandomizedCiphertexts(t *testing.T) {
	p := testPrime()
	g := big.NewInt(3)
	_, y, err := dh.GenerateKey(rand.Reader, p, g)
	require.NoError(t, err)

	c := &TextCipher{P: p, G: g, Public: y}
	ct1, err := c.Encrypt("HELLO")
	require.NoError(t, err)
	ct2, err := c.Encrypt("HELLO")
	require.NoError(t, err)
	assert.NotEqual(t, ct1, ct2, "ephemeral key must differ per encryption")
}

func TestTextCipherRejectsMalformedCiphertext(t *testing.T) {
	c := &TextCipher{P: testPrime(), G: big.NewInt(3), Public: big.NewInt(9), Private: big.NewInt(5)}
	for _, ct := range []string{"", "123", "12 34 56", "abc def"} {
		_, err := c.Decrypt(ct)
		assert.ErrorIs(t, err, cryptolab.ErrInvalidEncoding, "ciphertext %q", ct)
	}
}
