// Package commands defines the cryptolab CLI used in the exercises.
//
// Commands
//
//   - caesar    Shift cipher encrypt/decrypt and n-gram frequency counts
//   - vigenere  Repeating-key cipher encrypt/decrypt
//   - rsa       Textbook RSA keygen, encrypt and decrypt
//   - dh        Diffie-Hellman exchange walkthrough
//   - ecdh      The same exchange on secp256k1 or edwards25519
//   - ecdsa     Textbook ECDSA sign and verify on secp256k1
//
// The --verbose flag turns on debug logging of intermediate values, which
// is the point of the tool: students can follow every number that crosses
// the simulated wire.
package commands
