package commitment

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
)

// prefix domain-separates exercise commitments from any other use of
// SHA-256 in the course material.
var prefix = []byte("cryptolab/commit/v1")

// Commitment binds a party to a value before it is revealed, the
// commit-then-reveal step of the exchange exercises.
// C = SHA256(prefix || salt || value).
type Commitment struct {
	C    []byte // the commitment hash
	Salt []byte // the decommitment randomness
}

// Commit commits to value with a fresh 32-byte salt.
func Commit(value []byte) (*Commitment, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write(prefix)
	h.Write(salt)
	h.Write(value)

	return &Commitment{C: h.Sum(nil), Salt: salt}, nil
}

// Verify checks a revealed value against a commitment hash and its salt.
func Verify(c, salt, value []byte) bool {
	if len(c) != sha256.Size || len(salt) != 32 {
		return false
	}
	h := sha256.New()
	h.Write(prefix)
	h.Write(salt)
	h.Write(value)
	return bytes.Equal(h.Sum(nil), c)
}
