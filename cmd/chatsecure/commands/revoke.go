package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// revoke: permanently mark the local certificate untrusted.
func revokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [serial]",
		Short: "Revoke the local certificate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cert domain.Certificate
			if len(args) == 1 {
				var ok bool
				var err error
				cert, ok, err = appCtx.Certs.LoadCertificate(domain.SerialNumber(args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no certificate with serial %q", args[0])
				}
			} else {
				var err error
				cert, err = ownCertificate()
				if err != nil {
					return err
				}
			}

			revoked, err := appCtx.Identity.Revoke(cert)
			if errors.Is(err, domain.ErrAlreadyRevoked) {
				fmt.Println("Certificate was already revoked; nothing to do.")
				return nil
			}
			if err != nil {
				return err
			}

			if err := appCtx.Certs.SaveCertificate(revoked); err != nil {
				return err
			}
			fmt.Printf("Revoked certificate %s\n", revoked.SerialNumber)
			return nil
		},
	}
}
