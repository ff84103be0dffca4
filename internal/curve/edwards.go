package curve

import (
	"io"
	"math/big"

	"filippo.io/edwards25519"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Edwards25519Group runs the exchange on the edwards25519 group, the
// "same protocol, different group" exercise. Elements are the 32-byte
// compressed encoding.
type Edwards25519Group struct{}

// NewEdwards25519 returns the edwards25519 group.
func NewEdwards25519() Group {
	return &Edwards25519Group{}
}

func (g *Edwards25519Group) Name() string {
	return "edwards25519"
}

func (g *Edwards25519Group) Order() *big.Int {
	// l = 2^252 + 27742317777372353535851937790883648493
	n, _ := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	return n
}

func (g *Edwards25519Group) NewScalar(random io.Reader) (*big.Int, error) {
	var b [64]byte
	if _, err := io.ReadFull(random, b[:]); err != nil {
		return nil, err
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		return nil, err
	}
	return scalarToBigInt(s), nil
}

func (g *Edwards25519Group) ScalarBaseMult(k *big.Int) ([]byte, error) {
	s, err := g.scalar(k)
	if err != nil {
		return nil, err
	}
	return edwards25519.NewIdentityPoint().ScalarBaseMult(s).Bytes(), nil
}

func (g *Edwards25519Group) ScalarMult(element []byte, k *big.Int) ([]byte, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(element)
	if err != nil {
		return nil, cryptolab.NewInputError("edwards25519 scalar mult",
			"malformed point encoding", cryptolab.ErrInvalidEncoding)
	}
	s, err := g.scalar(k)
	if err != nil {
		return nil, err
	}
	return edwards25519.NewIdentityPoint().ScalarMult(s, p).Bytes(), nil
}

// scalar converts a big.Int to an edwards25519 scalar. The library wants
// canonical little-endian bytes, big.Int hands out big-endian.
func (g *Edwards25519Group) scalar(k *big.Int) (*edwards25519.Scalar, error) {
	if k.Sign() < 0 {
		return nil, cryptolab.NewInputError("edwards25519 scalar",
			"scalar must be non-negative", nil)
	}
	k = new(big.Int).Mod(k, g.Order())

	be := k.Bytes()
	var le [32]byte
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return edwards25519.NewScalar().SetCanonicalBytes(le[:])
}

func scalarToBigInt(s *edwards25519.Scalar) *big.Int {
	le := s.Bytes()
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}
