package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/cipher/rsa"
	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

var (
	rsaN string
	rsaE string
	rsaD string
)

func rsaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "Textbook RSA over numerically encoded messages",
	}

	keygen := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a classroom key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := cmd.Flags().GetInt("bits")
			if err != nil {
				return err
			}
			priv, err := rsa.GenerateKey(rand.Reader, bits, nil)
			if err != nil {
				return err
			}
			kindField(cryptolab.KindRSA).WithField("bits", bits).Debug("generated key pair")
			fmt.Printf("n = %s\ne = %s\nd = %s\n", priv.N, priv.E, priv.D)
			return nil
		},
	}
	keygen.Flags().Int("bits", 256, "modulus bit length")

	encrypt := &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt a message with the public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseBig("n", rsaN)
			if err != nil {
				return err
			}
			e, err := parseBig("e", rsaE)
			if err != nil {
				return err
			}
			c := &rsa.TextCipher{Alphabet: codec.Upper, Public: rsa.PublicKey{N: n, E: e}}
			kindField(cryptolab.KindRSA).WithField("n", n).WithField("e", e).Debug("encrypting")
			out, err := c.Encrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	encrypt.Flags().StringVar(&rsaN, "n", "", "modulus")
	encrypt.Flags().StringVar(&rsaE, "e", "", "public exponent")
	_ = encrypt.MarkFlagRequired("n")
	_ = encrypt.MarkFlagRequired("e")

	decrypt := &cobra.Command{
		Use:   "decrypt <cipher>",
		Short: "Decrypt a ciphertext with the private exponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseBig("n", rsaN)
			if err != nil {
				return err
			}
			d, err := parseBig("d", rsaD)
			if err != nil {
				return err
			}
			c := &rsa.TextCipher{Alphabet: codec.Upper, Public: rsa.PublicKey{N: n}, D: d}
			out, err := c.Decrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	decrypt.Flags().StringVar(&rsaN, "n", "", "modulus")
	decrypt.Flags().StringVar(&rsaD, "d", "", "private exponent")
	_ = decrypt.MarkFlagRequired("n")
	_ = decrypt.MarkFlagRequired("d")

	cmd.AddCommand(keygen, encrypt, decrypt)
	return cmd
}
