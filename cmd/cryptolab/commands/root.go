package commands

import (
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/codec"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

var (
	verbose   bool
	groupSize int
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cryptolab",
		Short: "Classroom classical and public-key cryptography exercises",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace intermediate values")
	root.PersistentFlags().IntVar(&groupSize, "group", 0, "print cipher output in n-gram blocks")

	root.AddCommand(caesarCmd(), vigenereCmd(), rsaCmd(), dhCmd(), ecdhCmd(), ecdsaCmd())
	return root.Execute()
}

// parseBig reads a decimal or 0x-prefixed hex integer argument.
func parseBig(flag, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("--%s: %q is not an integer", flag, s)
	}
	return n, nil
}

// printCipherText applies the optional n-gram grouping before printing.
func printCipherText(a codec.Alphabet, text string) error {
	if groupSize > 0 {
		grouped, err := a.Group(text, groupSize)
		if err != nil {
			return err
		}
		text = grouped
	}
	fmt.Println(text)
	return nil
}

// kindField tags log lines with the scheme they belong to.
func kindField(k cryptolab.Kind) *logrus.Entry {
	return logrus.WithField("scheme", k.String())
}
