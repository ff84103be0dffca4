package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/cipher/caesar"
	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

var caesarKey string

// parseShift accepts either an integer shift or a single key letter
// ('D' means 3), the two forms the exercises use.
func parseShift(key string) (int, error) {
	if k, err := strconv.Atoi(key); err == nil {
		return k, nil
	}
	runes := []rune(strings.ToUpper(key))
	if len(runes) == 1 && runes[0] >= 'A' && runes[0] <= 'Z' {
		return int(runes[0] - 'A'), nil
	}
	return 0, fmt.Errorf("--key must be an integer or a single letter, got %q", key)
}

func caesarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar shift cipher",
	}
	cmd.PersistentFlags().StringVarP(&caesarKey, "key", "k", "", "shift amount or key letter")
	_ = cmd.MarkPersistentFlagRequired("key")

	encrypt := &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Shift a message forward by the key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseShift(caesarKey)
			if err != nil {
				return err
			}
			c := &caesar.Cipher{Alphabet: codec.Upper, Key: k}
			kindField(cryptolab.KindCaesar).WithField("shift", k).Debug("encrypting")
			out, err := c.Encrypt(args[0])
			if err != nil {
				return err
			}
			return printCipherText(codec.Upper, out)
		},
	}

	decrypt := &cobra.Command{
		Use:   "decrypt <text>",
		Short: "Shift a message back by the key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseShift(caesarKey)
			if err != nil {
				return err
			}
			c := &caesar.Cipher{Alphabet: codec.Upper, Key: k}
			kindField(cryptolab.KindCaesar).WithField("shift", k).Debug("decrypting")
			out, err := c.Decrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	freq := &cobra.Command{
		Use:   "freq <text>",
		Short: "Count n-gram frequencies for analysis exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("n")
			if err != nil {
				return err
			}
			counts, err := caesar.NGramFrequencies(codec.Upper, args[0], n)
			if err != nil {
				return err
			}
			for gram, count := range counts {
				fmt.Printf("%s\t%d\n", gram, count)
			}
			return nil
		},
	}
	freq.Flags().Int("n", 1, "n-gram width")

	cmd.AddCommand(encrypt, decrypt, freq)
	return cmd
}
