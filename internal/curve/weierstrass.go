package curve

import (
	"math/big"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Curve is a short Weierstrass curve y^2 = x^3 + Ax + B over the prime
// field F_P. No parameter validation is performed: non-prime moduli or
// singular curves are the caller's problem, except that failed modular
// inversions surface ErrDivisionUndefined.
type Curve struct {
	A *big.Int
	B *big.Int
	P *big.Int
}

// Point is an affine curve point. The zero value is the point at
// infinity, the identity of the group law.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{}
}

// NewPoint builds an affine point. No curve membership check is done.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// Equal reports whether two points have the same coordinates.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + Ax + B (mod P).
// The identity is on every curve. Operations never call this; feeding
// invalid points to the group law is undefined behavior.
func (c Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, c.P)

	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, new(big.Int).Mul(c.A, p.X))
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return lhs.Cmp(rhs) == 0
}

// Add applies the chord-and-tangent group law.
// Cases: P + O = P, O + Q = Q, P + (-P) = O, P + P = double.
func (c Curve) Add(p, q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	if p.X.Cmp(q.X) == 0 {
		ySum := new(big.Int).Add(p.Y, q.Y)
		ySum.Mod(ySum, c.P)
		if ySum.Sign() == 0 {
			// Vertical chord: q = -p.
			return Infinity(), nil
		}
		return c.Double(p)
	}

	// slope = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(q.Y, p.Y)
	den := new(big.Int).Sub(q.X, p.X)
	s, err := c.divide(num, den, "point add")
	if err != nil {
		return Point{}, err
	}
	return c.chord(p, q, s), nil
}

// Double applies the tangent-line doubling law. A point with y = 0 has a
// vertical tangent; the inversion of 2y fails with ErrDivisionUndefined.
func (c Curve) Double(p Point) (Point, error) {
	if p.IsInfinity() {
		return p, nil
	}

	// slope = (3x^2 + A) / 2y
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	den := new(big.Int).Lsh(p.Y, 1)
	s, err := c.divide(num, den, "point double")
	if err != nil {
		return Point{}, err
	}
	return c.chord(p, p, s), nil
}

// ScalarMult computes k*P by double-and-add. k = 0 yields the identity;
// negative k is rejected. Doubling goes through Add so that a point of
// order two (y = 0) folds to the identity the way repeated addition does,
// instead of tripping Double's vertical-tangent error.
func (c Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	if k.Sign() < 0 {
		return Point{}, cryptolab.NewInputError("scalar mult", "scalar must be non-negative", nil)
	}

	r := Infinity()
	base := p
	var err error
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			r, err = c.Add(r, base)
			if err != nil {
				return Point{}, err
			}
		}
		if i+1 < k.BitLen() {
			base, err = c.Add(base, base)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return r, nil
}

// chord finishes the addition law for slope s through p and q:
// x3 = s^2 - x1 - x2, y3 = s(x1 - x3) - y1.
func (c Curve) chord(p, q Point, s *big.Int) Point {
	x3 := new(big.Int).Mul(s, s)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, s)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, c.P)

	return Point{X: x3, Y: y3}
}

// divide computes num * den^-1 mod P.
func (c Curve) divide(num, den *big.Int, op string) (*big.Int, error) {
	den = new(big.Int).Mod(den, c.P)
	inv := new(big.Int).ModInverse(den, c.P)
	if inv == nil {
		return nil, cryptolab.NewInputError(op,
			"slope denominator not invertible mod p", cryptolab.ErrDivisionUndefined)
	}
	s := new(big.Int).Mul(num, inv)
	return s.Mod(s, c.P), nil
}
