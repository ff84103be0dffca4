package e2e

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/cryptolab/go-cryptolab/internal/cipher/caesar"
	"github.com/cryptolab/go-cryptolab/internal/cipher/elgamal"
	"github.com/cryptolab/go-cryptolab/internal/cipher/rsa"
	"github.com/cryptolab/go-cryptolab/internal/cipher/vigenere"
	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/internal/curve"
	"github.com/cryptolab/go-cryptolab/internal/dh"
	"github.com/cryptolab/go-cryptolab/internal/exchange"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// TestClassroomIntegration walks the full exercise set the way a course
// worksheet does: classical ciphers first, then the public-key schemes.
func TestClassroomIntegration(t *testing.T) {
	plain := "Attack at dawn!"

	// 1. Classical ciphers
	ciphers := []cryptolab.Cipher{
		&caesar.Cipher{Alphabet: codec.Upper, Key: 3},
		&vigenere.Cipher{Alphabet: codec.Upper, Key: "LEMON"},
	}
	for _, c := range ciphers {
		ct, err := c.Encrypt(plain)
		if err != nil {
			t.Fatalf("%s encrypt failed: %v", c.Kind(), err)
		}
		pt, err := c.Decrypt(ct)
		if err != nil {
			t.Fatalf("%s decrypt failed: %v", c.Kind(), err)
		}
		if pt != "ATTACKATDAWN" {
			t.Errorf("%s round trip: got %q, want ATTACKATDAWN", c.Kind(), pt)
		}
	}

	// 2. RSA with a generated key pair
	priv, err := rsa.GenerateKey(rand.Reader, 256, nil)
	if err != nil {
		t.Fatalf("rsa keygen failed: %v", err)
	}
	rsaCipher := &rsa.TextCipher{Alphabet: codec.Upper, Public: priv.PublicKey, D: priv.D}
	ct, err := rsaCipher.Encrypt(plain)
	if err != nil {
		t.Fatalf("rsa encrypt failed: %v", err)
	}
	pt, err := rsaCipher.Decrypt(ct)
	if err != nil {
		t.Fatalf("rsa decrypt failed: %v", err)
	}
	if pt != "ATTACKATDAWN" {
		t.Errorf("rsa round trip: got %q", pt)
	}

	// 3. ElGamal over the decimal codec
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	g := big.NewInt(3)
	x, y, err := dh.GenerateKey(rand.Reader, p, g)
	if err != nil {
		t.Fatalf("elgamal keygen failed: %v", err)
	}
	eg := &elgamal.TextCipher{P: p, G: g, Public: y, Private: x}
	ct, err = eg.Encrypt("RETREAT")
	if err != nil {
		t.Fatalf("elgamal encrypt failed: %v", err)
	}
	pt, err = eg.Decrypt(ct)
	if err != nil {
		t.Fatalf("elgamal decrypt failed: %v", err)
	}
	if pt != "RETREAT" {
		t.Errorf("elgamal round trip: got %q", pt)
	}
}

// TestExchangeSessions runs the Alice/Bob walkthrough on every
// key-exchange scheme, with and without commitments.
func TestExchangeSessions(t *testing.T) {
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	g := big.NewInt(3)
	a, _, err := dh.GenerateKey(rand.Reader, p, g)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}
	b, _, err := dh.GenerateKey(rand.Reader, p, g)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	sessions := map[string]*exchange.Session{
		"modular": {
			Scheme:   &dh.Exchange{P: p, G: g},
			AliceKey: a,
			BobKey:   b,
		},
		"secp256k1": {
			Scheme:   &curve.GroupExchange{Group: curve.NewSecp256k1()},
			AliceKey: big.NewInt(271828),
			BobKey:   big.NewInt(314159),
		},
		"edwards25519": {
			Scheme:   &curve.GroupExchange{Group: curve.NewEdwards25519()},
			AliceKey: big.NewInt(557755),
			BobKey:   big.NewInt(775577),
		},
	}

	for name, s := range sessions {
		for _, committed := range []bool{false, true} {
			s.Committed = committed
			tr, err := s.Run()
			if err != nil {
				t.Fatalf("%s (committed=%v) failed: %v", name, committed, err)
			}
			if len(tr.SharedSecret) == 0 {
				t.Errorf("%s: empty shared secret", name)
			}
		}
	}
}

// TestSignedExchange signs a reduced message with ECDSA on the classroom
// curve, closing the loop between the exercises.
func TestSignedExchange(t *testing.T) {
	c := curve.Curve{A: big.NewInt(2), B: big.NewInt(2), P: big.NewInt(17)}
	g := curve.NewPoint(big.NewInt(5), big.NewInt(1))
	order := big.NewInt(19)

	d := big.NewInt(7)
	q, err := curve.PublicShare(c, g, d)
	if err != nil {
		t.Fatalf("public share failed: %v", err)
	}

	m := big.NewInt(13)
	sig, err := curve.Sign(rand.Reader, c, g, order, d, m)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if !curve.Verify(c, g, order, q, m, sig) {
		t.Error("signature did not verify")
	}

	// The wrong-message rejection needs a large group: with only 19
	// points, some nonces make a forged message verify.
	params := secp256k1.S256().Params()
	c = curve.Curve{A: big.NewInt(0), B: params.B, P: params.P}
	g = curve.NewPoint(params.Gx, params.Gy)
	q, err = curve.PublicShare(c, g, d)
	if err != nil {
		t.Fatalf("public share failed: %v", err)
	}
	sig, err = curve.Sign(rand.Reader, c, g, params.N, d, m)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if !curve.Verify(c, g, params.N, q, m, sig) {
		t.Error("signature did not verify")
	}
	if curve.Verify(c, g, params.N, q, big.NewInt(14), sig) {
		t.Error("signature verified against the wrong message")
	}
}
