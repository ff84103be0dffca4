package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/cipher/vigenere"
	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

var vigenereKey string

func vigenereCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vigenere",
		Short: "Vigenere repeating-key cipher",
	}
	cmd.PersistentFlags().StringVarP(&vigenereKey, "key", "k", "", "key word")
	_ = cmd.MarkPersistentFlagRequired("key")

	encrypt := &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt a message under the key word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &vigenere.Cipher{Alphabet: codec.Upper, Key: vigenereKey}
			kindField(cryptolab.KindVigenere).WithField("key", codec.Upper.Normalize(vigenereKey)).Debug("encrypting")
			out, err := c.Encrypt(args[0])
			if err != nil {
				return err
			}
			return printCipherText(codec.Upper, out)
		},
	}

	decrypt := &cobra.Command{
		Use:   "decrypt <text>",
		Short: "Decrypt a message with a known key word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &vigenere.Cipher{Alphabet: codec.Upper, Key: vigenereKey}
			out, err := c.Decrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.AddCommand(encrypt, decrypt)
	return cmd
}
