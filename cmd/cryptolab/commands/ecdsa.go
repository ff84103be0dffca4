package commands

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spf13/cobra"

	"github.com/cryptolab/go-cryptolab/internal/curve"
	"github.com/cryptolab/go-cryptolab/pkg/cryptolab"
)

// secp256k1Weierstrass exposes the named curve's parameters to the
// generic chord-and-tangent code, so students can see the textbook
// equations run on real parameters.
func secp256k1Weierstrass() (curve.Curve, curve.Point, *big.Int) {
	params := secp256k1.S256().Params()
	c := curve.Curve{A: new(big.Int), B: params.B, P: params.P}
	g := curve.NewPoint(params.Gx, params.Gy)
	return c, g, params.N
}

func ecdsaCmd() *cobra.Command {
	var (
		keyFlag string
		msgFlag string
		qxFlag  string
		qyFlag  string
		rFlag   string
		sFlag   string
	)

	sign := &cobra.Command{
		Use:   "sign",
		Short: "Sign an integer message on secp256k1",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, g, n := secp256k1Weierstrass()
			d, err := parseBig("key", keyFlag)
			if err != nil {
				return err
			}
			m, err := parseBig("message", msgFlag)
			if err != nil {
				return err
			}

			q, err := curve.PublicShare(c, g, d)
			if err != nil {
				return err
			}
			sig, err := curve.Sign(rand.Reader, c, g, n, d, m)
			if err != nil {
				return err
			}
			kindField(cryptolab.KindEllipticCurve).WithField("message", m).Debug("signed")
			fmt.Printf("r = %s\ns = %s\nqx = %s\nqy = %s\n", sig.R, sig.S, q.X, q.Y)
			return nil
		},
	}
	sign.Flags().StringVar(&keyFlag, "key", "", "private key d")
	sign.Flags().StringVar(&msgFlag, "message", "", "integer message, below the group order")
	_ = sign.MarkFlagRequired("key")
	_ = sign.MarkFlagRequired("message")

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature on secp256k1",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, g, n := secp256k1Weierstrass()
			qx, err := parseBig("qx", qxFlag)
			if err != nil {
				return err
			}
			qy, err := parseBig("qy", qyFlag)
			if err != nil {
				return err
			}
			r, err := parseBig("r", rFlag)
			if err != nil {
				return err
			}
			s, err := parseBig("s", sFlag)
			if err != nil {
				return err
			}
			m, err := parseBig("message", msgFlag)
			if err != nil {
				return err
			}

			ok := curve.Verify(c, g, n, curve.NewPoint(qx, qy), m, &curve.Signature{R: r, S: s})
			if !ok {
				fmt.Println("invalid signature")
				return fmt.Errorf("signature does not verify")
			}
			fmt.Println("valid signature")
			return nil
		},
	}
	verify.Flags().StringVar(&qxFlag, "qx", "", "public key x coordinate")
	verify.Flags().StringVar(&qyFlag, "qy", "", "public key y coordinate")
	verify.Flags().StringVar(&rFlag, "r", "", "signature r")
	verify.Flags().StringVar(&sFlag, "s", "", "signature s")
	verify.Flags().StringVar(&msgFlag, "message", "", "integer message")
	for _, f := range []string{"qx", "qy", "r", "s", "message"} {
		_ = verify.MarkFlagRequired(f)
	}

	cmd := &cobra.Command{
		Use:   "ecdsa",
		Short: "Textbook ECDSA on secp256k1",
	}
	cmd.AddCommand(sign, verify)
	return cmd
}
