package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Recompute the public key from the private material so the
			// fingerprint works even without the local certificate.
			priv, err := loadPrivateKey()
			if err != nil {
				return err
			}
			der, err := crypto.MarshalPublicKey(crypto.PublicFromPrivate(priv))
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(der))
			return nil
		},
	}
}
