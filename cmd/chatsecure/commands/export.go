package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/encoding"
)

// export cert|key: print the armored certificate or the encrypted
// PKCS#8 private key.
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export {cert|key}",
		Short: "Print the certificate or the encrypted private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "cert":
				cert, err := ownCertificate()
				if err != nil {
					return err
				}
				armored, err := encoding.EncodeCertificate(cert)
				if err != nil {
					return err
				}
				fmt.Print(string(armored))
				return nil

			case "key":
				priv, err := loadPrivateKey()
				if err != nil {
					return err
				}
				// Always password-protected on the way out.
				armored, err := encoding.ExportPrivateKeyPEM(priv, []byte(passphrase))
				if err != nil {
					return err
				}
				fmt.Print(string(armored))
				return nil

			default:
				return fmt.Errorf("unknown export target %q (want cert or key)", args[0])
			}
		},
	}
}
