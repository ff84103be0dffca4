package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// DecimalEncode converts a message to an integer by upper-casing it and
// concatenating the two-decimal-digit character code of each rune.
// "HI" -> 7273. Only runes whose code is in 10..99 are representable;
// that covers the printable ASCII range after case folding.
//
// This is the codec the ElGamal exercises use, where the message must
// become a single residue below the modulus.
func DecimalEncode(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < 10 || r > 99 {
			return nil, cryptolab.NewInputError("decimal encode",
				fmt.Sprintf("character %q has no two-digit code", r), cryptolab.ErrInvalidCharacter)
		}
		fmt.Fprintf(&b, "%02d", r)
	}
	n, ok := new(big.Int).SetString(b.String(), 10)
	if !ok {
		return nil, cryptolab.NewInputError("decimal encode", "not a decimal string", cryptolab.ErrInvalidEncoding)
	}
	return n, nil
}

// DecimalDecode inverts DecimalEncode. It fails with ErrInvalidEncoding on
// negative input or when the digit count is odd (no message produces one).
func DecimalDecode(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", cryptolab.NewInputError("decimal decode",
			"encoding must be non-negative", cryptolab.ErrInvalidEncoding)
	}
	if n.Sign() == 0 {
		return "", nil
	}
	digits := n.String()
	if len(digits)%2 != 0 {
		return "", cryptolab.NewInputError("decimal decode",
			"odd number of digits", cryptolab.ErrInvalidEncoding)
	}
	var b strings.Builder
	for i := 0; i < len(digits); i += 2 {
		code := int(digits[i]-'0')*10 + int(digits[i+1]-'0')
		b.WriteRune(rune(code))
	}
	return b.String(), nil
}
