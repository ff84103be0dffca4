package curve

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1Group exposes the Bitcoin curve through the Group interface so
// exchange exercises can run on a real-world curve with a production
// arithmetic backend. Elements use the same 0x04||X||Y encoding as the
// generic Weierstrass code.
type Secp256k1Group struct{}

// NewSecp256k1 returns the secp256k1 group.
func NewSecp256k1() Group {
	return &Secp256k1Group{}
}

func (g *Secp256k1Group) Name() string {
	return "secp256k1"
}

func (g *Secp256k1Group) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (g *Secp256k1Group) NewScalar(random io.Reader) (*big.Int, error) {
	return rand.Int(random, secp256k1.S256().Params().N)
}

// asCurve returns the curve parameters as a generic Weierstrass curve,
// used only for the shared point encoding.
func (g *Secp256k1Group) asCurve() Curve {
	params := secp256k1.S256().Params()
	return Curve{A: new(big.Int), B: params.B, P: params.P}
}

func (g *Secp256k1Group) ScalarBaseMult(k *big.Int) ([]byte, error) {
	x, y := secp256k1.S256().ScalarBaseMult(k.Bytes())
	return g.asCurve().Marshal(Point{X: x, Y: y}), nil
}

func (g *Secp256k1Group) ScalarMult(element []byte, k *big.Int) ([]byte, error) {
	c := g.asCurve()
	p, err := c.Unmarshal(element)
	if err != nil {
		return nil, err
	}
	x, y := secp256k1.S256().ScalarMult(p.X, p.Y, k.Bytes())
	return c.Marshal(Point{X: x, Y: y}), nil
}
