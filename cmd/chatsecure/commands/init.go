package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// init <name> <email>: generate an identity and store it protected.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <name> <email>",
		Short: "Generate identity keys and a self-signed certificate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			subject := domain.SubjectInfo{Name: args[0], Email: args[1]}

			id, err := appCtx.Identity.Generate(subject)
			if err != nil {
				return err
			}

			blob, err := appCtx.Keyguard.Protect(id.KeyPair.Private, passphrase)
			if err != nil {
				return err
			}
			if err := appCtx.Blobs.SaveKeyBlob(domain.Username(subject.Name), blob); err != nil {
				return err
			}
			if err := appCtx.Certs.SaveCertificate(id.Certificate); err != nil {
				return err
			}

			fmt.Printf("Identity created.\nSerial:      %s\nFingerprint: %s\n",
				id.Certificate.SerialNumber, crypto.Fingerprint(id.Certificate.PublicKey))
			return nil
		},
	}
}
