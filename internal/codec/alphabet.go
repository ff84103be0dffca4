package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// Alphabet is an immutable symbol table mapping characters to indices
// 0..radix-1. Numeric encoding is positional with the first symbol of a
// message as the most significant digit, so for the default table
// "HELLO" encodes to 7*26^4 + 4*26^3 + 11*26^2 + 11*26 + 14.
//
// Decode produces the minimal representation: leading index-zero symbols
// ('A' in the default table) carry no positional weight, so callers that
// need them back must record the message length and use DecodeLen.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// Upper is the 26-letter uppercase alphabet, A=0 .. Z=25.
var Upper = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// New builds an alphabet from the given symbols. Symbols must be unique
// and there must be at least two of them.
func New(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 {
		return Alphabet{}, cryptolab.NewInputError("alphabet", "need at least two symbols", nil)
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return Alphabet{}, cryptolab.NewInputError("alphabet", fmt.Sprintf("duplicate symbol %q", r), nil)
		}
		index[r] = i
	}
	return Alphabet{symbols: runes, index: index}, nil
}

// MustNew is like New but panics on error. For package-level tables.
func MustNew(symbols string) Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Radix returns the number of symbols in the alphabet.
func (a Alphabet) Radix() int {
	return len(a.symbols)
}

// Symbol returns the symbol at index i modulo the radix.
// Negative i is brought into range first.
func (a Alphabet) Symbol(i int) rune {
	i %= len(a.symbols)
	if i < 0 {
		i += len(a.symbols)
	}
	return a.symbols[i]
}

// Normalize upper-cases s and drops every rune outside the alphabet.
// Empty input yields empty output.
func (a Alphabet) Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if _, ok := a.index[r]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Indices maps each symbol of s to its alphabet index, preserving order.
// s is expected to be normalized already; any other rune fails with
// ErrInvalidCharacter.
func (a Alphabet) Indices(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		i, ok := a.index[r]
		if !ok {
			return nil, cryptolab.NewInputError("indices",
				fmt.Sprintf("character %q not in alphabet", r), cryptolab.ErrInvalidCharacter)
		}
		out = append(out, i)
	}
	return out, nil
}

// Encode converts a normalized string into its positional base-radix
// integer, most significant symbol first.
func (a Alphabet) Encode(s string) (*big.Int, error) {
	radix := big.NewInt(int64(len(a.symbols)))
	n := new(big.Int)
	for _, r := range s {
		i, ok := a.index[r]
		if !ok {
			return nil, cryptolab.NewInputError("encode",
				fmt.Sprintf("character %q not in alphabet", r), cryptolab.ErrInvalidCharacter)
		}
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(i)))
	}
	return n, nil
}

// Decode inverts Encode. Negative input fails with ErrInvalidEncoding.
func (a Alphabet) Decode(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", cryptolab.NewInputError("decode",
			"encoding must be non-negative", cryptolab.ErrInvalidEncoding)
	}
	radix := big.NewInt(int64(len(a.symbols)))
	rem := new(big.Int)
	v := new(big.Int).Set(n)
	var runes []rune
	for v.Sign() > 0 {
		v.DivMod(v, radix, rem)
		runes = append(runes, a.symbols[rem.Int64()])
	}
	// Digits came out least significant first.
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

// DecodeLen decodes n into exactly length symbols, restoring the leading
// index-zero symbols Decode drops. It fails with ErrInvalidEncoding when
// n does not fit in length symbols.
func (a Alphabet) DecodeLen(n *big.Int, length int) (string, error) {
	s, err := a.Decode(n)
	if err != nil {
		return "", err
	}
	pad := length - len([]rune(s))
	if pad < 0 {
		return "", cryptolab.NewInputError("decode",
			fmt.Sprintf("encoding needs more than %d symbols", length), cryptolab.ErrInvalidEncoding)
	}
	return strings.Repeat(string(a.symbols[0]), pad) + s, nil
}

// Group normalizes s and rewrites it as space-separated blocks of n
// symbols, the usual presentation for cipher exercises.
func (a Alphabet) Group(s string, n int) (string, error) {
	if n <= 0 {
		return "", cryptolab.NewInputError("group", "block size must be positive", nil)
	}
	s = a.Normalize(s)
	var b strings.Builder
	for i, r := range []rune(s) {
		if i > 0 && i%n == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
