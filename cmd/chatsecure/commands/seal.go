package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// seal <peer> <message>: encrypt and sign a message for a peer, store the
// envelope, and print its record ID.
func sealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal <peer> <message>",
		Short: "Encrypt, sign and store a message for a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer := domain.Username(args[0])
			plaintext := []byte(args[1])

			recipientCert, ok, err := appCtx.Certs.CertificateFor(peer)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no certificate for %q; import it first", peer)
			}

			priv, err := loadPrivateKey()
			if err != nil {
				return err
			}

			env, err := appCtx.Envelopes.SealFor(plaintext, recipientCert, priv)
			if err != nil {
				return err
			}

			msg, err := appCtx.Messages.SaveMessage(domain.SealedMessage{
				From:     domain.Username(username),
				To:       peer,
				Envelope: env,
			})
			if err != nil {
				return err
			}
			// The hash lets the peer compare content out of band.
			fmt.Printf("Sealed message %s for %s\nContent hash: %s\n", msg.ID, peer, crypto.B64(env.ContentHash))
			return nil
		},
	}
}
