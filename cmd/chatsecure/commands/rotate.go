package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
)

// rotate: replace the identity with a fresh one and revoke the prior cert.
func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <name> <email>",
		Short: "Rotate the identity and revoke the prior certificate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			subject := domain.SubjectInfo{Name: args[0], Email: args[1]}

			prior, ok, err := appCtx.Certs.CertificateFor(domain.Username(subject.Name))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no certificate for %q; run init first", subject.Name)
			}

			id, revoked, err := appCtx.Identity.Rotate(subject, prior)
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
			if err := appCtx.Certs.SaveCertificate(revoked); err != nil {
				return err
			}
			if err := appCtx.Certs.SaveCertificate(id.Certificate); err != nil {
				return err
			}

			fmt.Printf("Identity rotated.\nRevoked:     %s\nNew serial:  %s\nFingerprint: %s\n",
				revoked.SerialNumber, id.Certificate.SerialNumber,
				crypto.Fingerprint(id.Certificate.PublicKey))
			return nil
		},
	}
}
