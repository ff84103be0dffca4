package cryptolab

import "math/big"

// Kind identifies one of the cipher or key-exchange schemes in the library.
// The set is closed: every implementation in this module reports one of the
// constants below.
type Kind int

const (
	KindCaesar Kind = iota
	KindVigenere
	KindRSA
	KindElGamal
	KindDiffieHellman
	KindEllipticCurve
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCaesar:
		return "caesar"
	case KindVigenere:
		return "vigenere"
	case KindRSA:
		return "rsa"
	case KindElGamal:
		return "elgamal"
	case KindDiffieHellman:
		return "diffie-hellman"
	case KindEllipticCurve:
		return "elliptic-curve"
	default:
		return "unknown"
	}
}

// Cipher is the shared contract for every text-transforming scheme.
// Implementations hold their key material; Encrypt and Decrypt are pure
// functions of the receiver and the input.
type Cipher interface {
	// Kind returns the scheme identifier.
	Kind() Kind

	// Encrypt transforms plaintext into ciphertext.
	// Input is normalized (case-folded, punctuation stripped) first.
	Encrypt(plaintext string) (string, error)

	// Decrypt inverts Encrypt given the receiver's key material.
	Decrypt(ciphertext string) (string, error)
}

// KeyExchange is the shared contract for the key-agreement schemes
// (modular Diffie-Hellman and its elliptic-curve variants).
// Public shares and shared secrets are opaque byte encodings; each
// implementation documents its own encoding.
type KeyExchange interface {
	// Kind returns the scheme identifier.
	Kind() Kind

	// PublicShare computes the value a party transmits for the given
	// private exponent or scalar.
	PublicShare(private *big.Int) ([]byte, error)

	// SharedSecret combines the peer's public share with the local
	// private value. Both parties obtain the same bytes.
	SharedSecret(theirPublic []byte, private *big.Int) ([]byte, error)
}
