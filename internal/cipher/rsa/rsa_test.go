package rsa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Classic small key: p=61, q=53, n=3233, e=17, d=2753.
var (
	testN = big.NewInt(3233)
	testE = big.NewInt(17)
	testD = big.NewInt(2753)
)

func TestEncryptDecryptKnownKey(t *testing.T) {
	m := big.NewInt(65)
	c, err := Encrypt(m, testE, testN)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2790), c)

	back, err := Decrypt(c, testD, testN)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestEncryptRangeChecks(t *testing.T) {
	_, err := Encrypt(big.NewInt(-1), testE, testN)
	assert.Error(t, err)

	_, err = Encrypt(big.NewInt(3233), testE, testN)
	assert.Error(t, err)

	_, err = Decrypt(big.NewInt(9999), testD, testN)
	assert.Error(t, err)
}

func TestPrivateExponent(t *testing.T) {
	d, n, err := PrivateExponent(big.NewInt(17), big.NewInt(61), big.NewInt(53))
	require.NoError(t, err)
	assert.Equal(t, testD, d)
	assert.Equal(t, testN, n)
}

func TestPrivateExponentRejectsEqualPrimes(t *testing.T) {
	_, _, err := PrivateExponent(big.NewInt(17), big.NewInt(61), big.NewInt(61))
	assert.Error(t, err)
}

func TestPrivateExponentNonCoprime(t *testing.T) {
	// phi = 60*52 = 3120, e = 6 shares a factor.
	_, _, err := PrivateExponent(big.NewInt(6), big.NewInt(61), big.NewInt(53))
	assert.ErrorIs(t, err, cryptolab.ErrDivisionUndefined)
}

func TestGenerateKeyRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 256, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, priv.N.BitLen(), 255)

	m := big.NewInt(123456789)
	c, err := Encrypt(m, priv.E, priv.N)
	require.NoError(t, err)
	back, err := Decrypt(c, priv.D, priv.N)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestGenerateKeyRejectsTinyModulus(t *testing.T) {
	_, err := GenerateKey(rand.Reader, 8, nil)
	assert.Error(t, err)
}

func TestTextCipherRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 256, nil)
	require.NoError(t, err)

	var c cryptolab.Cipher = &TextCipher{
		Alphabet: codec.Upper,
		Public:   priv.PublicKey,
		D:        priv.D,
	}
	assert.Equal(t, cryptolab.KindRSA, c.Kind())

	ct, err := c.Encrypt("Meet me at dawn!")
	require.NoError(t, err)
	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "MEETMEATDAWN", pt)
}

func TestTextCipherPreservesLeadingA(t *testing.T) {
	priv, err := GenerateKey(rand.Reader, 256, nil)
	require.NoError(t, err)

	c := &TextCipher{Alphabet: codec.Upper, Public: priv.PublicKey, D: priv.D}
	ct, err := c.Encrypt("Attack at dawn!")
	require.NoError(t, err)
	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", pt)
}

func TestTextCipherMessageTooLong(t *testing.T) {
	c := &TextCipher{
		Alphabet: codec.Upper,
		Public:   PublicKey{N: testN, E: testE},
		D:        testD,
	}
	_, err := c.Encrypt("this message is far too long for a 12-bit modulus")
	assert.Error(t, err)
}

func TestTextCipherRejectsGarbageCiphertext(t *testing.T) {
	c := &TextCipher{Alphabet: codec.Upper, Public: PublicKey{N: testN, E: testE}, D: testD}
	_, err := c.Decrypt("not a number")
	assert.ErrorIs(t, err, cryptolab.ErrInvalidEncoding)
}
