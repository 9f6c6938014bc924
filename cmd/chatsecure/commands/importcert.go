package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/encoding"
)

// import-cert <file>: add a peer's armored certificate to the local store.
func importCertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-cert <file>",
		Short: "Import a peer's armored certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cert, err := encoding.DecodeCertificate(data)
			if err != nil {
				return err
			}
			if res := appCtx.Identity.Validate(cert); !res.Valid {
				return fmt.Errorf("refusing to import: certificate %s", res.Reason)
			}
			if err := appCtx.Certs.SaveCertificate(cert); err != nil {
				return err
			}
			fmt.Printf("Imported certificate %s for %s <%s>\n",
				cert.SerialNumber, cert.Subject.Name, cert.Subject.Email)
			return nil
		},
	}
}
