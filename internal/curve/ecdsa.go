package curve

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Signature is a textbook ECDSA signature pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Sign produces a signature over the integer message m with private key d
// on the subgroup generated by g of the given prime order. m must already
// be reduced (the exercises hash or encode it beforehand) and below the
// order.
//
//	R = k*G, r = R.x mod order, s = k^-1 (m + r*d) mod order
//
// Zero r or s triggers a fresh nonce, as does a nonce without inverse.
func Sign(random io.Reader, c Curve, g Point, order, d, m *big.Int) (*Signature, error) {
	if m.Sign() < 0 || m.Cmp(order) >= 0 {
		return nil, cryptolab.NewInputError("ecdsa sign", "message must be in range [0, order)", nil)
	}

	for {
		k, err := rand.Int(random, order)
		if err != nil {
			return nil, err
		}
		if k.Sign() == 0 {
			continue
		}

		R, err := c.ScalarMult(k, g)
		if err != nil {
			return nil, err
		}
		if R.IsInfinity() {
			continue
		}

		r := new(big.Int).Mod(R.X, order)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, order)
		if kInv == nil {
			continue
		}

		s := new(big.Int).Mul(r, d)
		s.Add(s, m)
		s.Mul(s, kInv)
		s.Mod(s, order)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify checks a signature against the public point q = d*G.
//
//	w = s^-1, u1 = m*w, u2 = r*w
//	C = u1*G + u2*Q, valid iff C.x mod order == r
func Verify(c Curve, g Point, order *big.Int, q Point, m *big.Int, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	// r and s must be in [1, order-1].
	if sig.R.Sign() <= 0 || sig.R.Cmp(order) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(order) >= 0 {
		return false
	}

	w := new(big.Int).ModInverse(sig.S, order)
	if w == nil {
		return false
	}
	u1 := new(big.Int).Mul(m, w)
	u1.Mod(u1, order)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, order)

	u1G, err := c.ScalarMult(u1, g)
	if err != nil {
		return false
	}
	u2Q, err := c.ScalarMult(u2, q)
	if err != nil {
		return false
	}
	C, err := c.Add(u1G, u2Q)
	if err != nil || C.IsInfinity() {
		return false
	}

	x := new(big.Int).Mod(C.X, order)
	return x.Cmp(sig.R) == 0
}
