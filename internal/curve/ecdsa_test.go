package curve

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	d := big.NewInt(7)
	q, err := PublicShare(c17, g17, d)
	require.NoError(t, err)

	m := big.NewInt(11)
	sig, err := Sign(rand.Reader, c17, g17, order17, d, m)
	require.NoError(t, err)

	assert.True(t, Verify(c17, g17, order17, q, m, sig))
}

// Rejection tests run on the secp256k1 parameters: with only 19 points in
// the classroom subgroup, a signature on one message verifies against
// another for a measurable fraction of nonces.

func TestVerifyRejectsWrongMessage(t *testing.T) {
	g := NewSecp256k1().(*Secp256k1Group)
	c := g.asCurve()
	params := secp256k1.S256().Params()
	base := NewPoint(params.Gx, params.Gy)

	d := big.NewInt(123456)
	q, err := PublicShare(c, base, d)
	require.NoError(t, err)

	sig, err := Sign(rand.Reader, c, base, params.N, d, big.NewInt(11))
	require.NoError(t, err)

	assert.False(t, Verify(c, base, params.N, q, big.NewInt(12), sig))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	g := NewSecp256k1().(*Secp256k1Group)
	c := g.asCurve()
	params := secp256k1.S256().Params()
	base := NewPoint(params.Gx, params.Gy)

	sig, err := Sign(rand.Reader, c, base, params.N, big.NewInt(123456), big.NewInt(11))
	require.NoError(t, err)

	otherQ, err := PublicShare(c, base, big.NewInt(654321))
	require.NoError(t, err)
	assert.False(t, Verify(c, base, params.N, otherQ, big.NewInt(11), sig))
}

func TestVerifyRejectsOutOfRangeSignature(t *testing.T) {
	d := big.NewInt(7)
	q, err := PublicShare(c17, g17, d)
	require.NoError(t, err)

	m := big.NewInt(11)
	assert.False(t, Verify(c17, g17, order17, q, m, nil))
	assert.False(t, Verify(c17, g17, order17, q, m, &Signature{R: big.NewInt(0), S: big.NewInt(5)}))
	assert.False(t, Verify(c17, g17, order17, q, m, &Signature{R: big.NewInt(5), S: order17}))
}

func TestSignRejectsOversizedMessage(t *testing.T) {
	_, err := Sign(rand.Reader, c17, g17, order17, big.NewInt(7), big.NewInt(19))
	assert.Error(t, err)
}

func TestSignVerifySecp256k1Params(t *testing.T) {
	// Same generic code on the real curve parameters, small scalars so the
	// double-and-add stays quick.
	g := NewSecp256k1().(*Secp256k1Group)
	c := g.asCurve()
	params := secp256k1.S256().Params()
	base := NewPoint(params.Gx, params.Gy)

	d := big.NewInt(123456)
	q, err := PublicShare(c, base, d)
	require.NoError(t, err)

	m := big.NewInt(987654321)
	sig, err := Sign(rand.Reader, c, base, params.N, d, m)
	require.NoError(t, err)
	assert.True(t, Verify(c, base, params.N, q, m, sig))
}
