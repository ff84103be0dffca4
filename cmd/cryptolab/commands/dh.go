package commands

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/dh"
	"github.com/cryptolab/go-cryptolab/internal/exchange"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// RFC 3526 group 14, the standard 2048-bit MODP group with generator 2.
const modp2048 = "0x" +
	"FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74" +
	"020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F1437" +
	"4FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF05" +
	"98DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB" +
	"9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF695581718" +
	"3995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF"

func dhCmd() *cobra.Command {
	var (
		pFlag  string
		gFlag  string
		commit bool
	)

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Walk through a full Diffie-Hellman exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseBig("p", pFlag)
			if err != nil {
				return err
			}
			g, err := parseBig("g", gFlag)
			if err != nil {
				return err
			}

			alice, _, err := dh.GenerateKey(rand.Reader, p, g)
			if err != nil {
				return err
			}
			bob, _, err := dh.GenerateKey(rand.Reader, p, g)
			if err != nil {
				return err
			}
			kindField(cryptolab.KindDiffieHellman).
				WithField("p_bits", p.BitLen()).
				WithField("g", g).
				Debug("running exchange")

			s := &exchange.Session{
				Scheme:    &dh.Exchange{P: p, G: g},
				AliceKey:  alice,
				BobKey:    bob,
				Committed: commit,
			}
			tr, err := s.Run()
			if err != nil {
				return err
			}
			for _, step := range tr.Steps {
				fmt.Println(step)
			}
			fmt.Printf("shared secret: %s\n", new(big.Int).SetBytes(tr.SharedSecret))
			return nil
		},
	}
	demo.Flags().StringVar(&pFlag, "p", modp2048, "prime modulus")
	demo.Flags().StringVar(&gFlag, "g", "2", "generator")
	demo.Flags().BoolVar(&commit, "commit", false, "commit to shares before revealing them")

	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Diffie-Hellman key exchange",
	}
	cmd.AddCommand(demo)
	return cmd
}
