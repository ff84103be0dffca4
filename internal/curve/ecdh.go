package curve

import (
	"math/big"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// PublicShare computes k*G, a party's public value for ECDH. A result of
// infinity means k is a multiple of the point order and is rejected.
func PublicShare(c Curve, g Point, k *big.Int) (Point, error) {
	kg, err := c.ScalarMult(k, g)
	if err != nil {
		return Point{}, err
	}
	if kg.IsInfinity() {
		return Point{}, cryptolab.NewInputError("ecdh public share",
			"scalar is a multiple of the point order", nil)
	}
	return kg, nil
}

// SharedSecret computes k*Q from the peer's public point Q. Both parties
// obtain (ab)*G.
func SharedSecret(c Curve, theirPublic Point, k *big.Int) (Point, error) {
	return c.ScalarMult(k, theirPublic)
}

// Marshal encodes a point as 0x04 || X || Y with coordinates padded to
// the byte length of P. The identity encodes as a single zero byte.
func (c Curve) Marshal(p Point) []byte {
	if p.IsInfinity() {
		return []byte{0}
	}
	byteLen := (c.P.BitLen() + 7) / 8
	out := make([]byte, 1+2*byteLen)
	out[0] = 4
	p.X.FillBytes(out[1 : 1+byteLen])
	p.Y.FillBytes(out[1+byteLen:])
	return out
}

// Unmarshal inverts Marshal. No curve membership check is performed.
func (c Curve) Unmarshal(data []byte) (Point, error) {
	if len(data) == 1 && data[0] == 0 {
		return Infinity(), nil
	}
	byteLen := (c.P.BitLen() + 7) / 8
	if len(data) != 1+2*byteLen || data[0] != 4 {
		return Point{}, cryptolab.NewInputError("unmarshal point",
			"malformed point encoding", cryptolab.ErrInvalidEncoding)
	}
	return Point{
		X: new(big.Int).SetBytes(data[1 : 1+byteLen]),
		Y: new(big.Int).SetBytes(data[1+byteLen:]),
	}, nil
}

// Exchange is ECDH on a caller-supplied Weierstrass curve under the
// tagged-variant contract. Shares and secrets use the Marshal encoding.
type Exchange struct {
	Curve Curve
	G     Point // base point
}

func (e *Exchange) Kind() cryptolab.Kind {
	return cryptolab.KindEllipticCurve
}

func (e *Exchange) PublicShare(private *big.Int) ([]byte, error) {
	p, err := PublicShare(e.Curve, e.G, private)
	if err != nil {
		return nil, err
	}
	return e.Curve.Marshal(p), nil
}

func (e *Exchange) SharedSecret(theirPublic []byte, private *big.Int) ([]byte, error) {
	their, err := e.Curve.Unmarshal(theirPublic)
	if err != nil {
		return nil, err
	}
	s, err := SharedSecret(e.Curve, their, private)
	if err != nil {
		return nil, err
	}
	return e.Curve.Marshal(s), nil
}
