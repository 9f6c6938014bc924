package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// verify <message-id>: run the full trust pipeline on a stored message.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <message-id>",
		Short: "Verify a stored message end to end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, ok, err := appCtx.Messages.LoadMessage(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no message %q", args[0])
			}

			senderCert, ok, err := appCtx.Certs.CertificateFor(msg.From)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no certificate for sender %q", msg.From)
			}

			priv, err := loadPrivateKey()
			if err != nil {
				return err
			}

			verdict := appCtx.Trust.VerifyIncoming(msg.Envelope, senderCert, priv)
			if verdict.Valid {
				fmt.Printf("VERIFIED [%s] %s\n", msg.From, string(verdict.Plaintext))
				return nil
			}

			fmt.Printf("UNVERIFIED (failed: %v)\n", verdict.Reasons)
			if verdict.Plaintext != nil {
				fmt.Printf("[%s] %s\n", msg.From, string(verdict.Plaintext))
			}
			return nil
		},
	}
}
