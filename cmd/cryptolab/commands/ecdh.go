package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/curve"
	"github.com/cryptolab/go-cryptolab/internal/exchange"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

func namedGroup(name string) (curve.Group, error) {
	switch name {
	case "secp256k1":
		return curve.NewSecp256k1(), nil
	case "edwards25519":
		return curve.NewEdwards25519(), nil
	default:
		return nil, fmt.Errorf("unknown group %q (want secp256k1 or edwards25519)", name)
	}
}

func ecdhCmd() *cobra.Command {
	var (
		groupName string
		commit    bool
	)

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Walk through an elliptic-curve Diffie-Hellman exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := namedGroup(groupName)
			if err != nil {
				return err
			}

			alice, err := g.NewScalar(rand.Reader)
			if err != nil {
				return err
			}
			bob, err := g.NewScalar(rand.Reader)
			if err != nil {
				return err
			}
			kindField(cryptolab.KindEllipticCurve).
				WithField("group", g.Name()).
				Debug("running exchange")

			s := &exchange.Session{
				Scheme:    &curve.GroupExchange{Group: g},
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
			fmt.Printf("shared secret: %x\n", tr.SharedSecret)
			return nil
		},
	}
	demo.Flags().StringVar(&groupName, "curve", "secp256k1", "named group to use")
	demo.Flags().BoolVar(&commit, "commit", false, "commit to shares before revealing them")

	cmd := &cobra.Command{
		Use:   "ecdh",
		Short: "Elliptic-curve Diffie-Hellman key exchange",
	}
	cmd.AddCommand(demo)
	return cmd
}
