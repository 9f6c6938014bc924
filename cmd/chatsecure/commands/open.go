package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/domain"
)

// open <message-id>: decrypt a stored envelope. --as sender opens the
// encrypt-to-self wrap for re-reading sent messages.
func openCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "open <message-id>",
		Short: "Decrypt a stored message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, ok, err := appCtx.Messages.LoadMessage(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no message %q", args[0])
			}

			role := domain.RoleRecipient
			if as == "sender" {
				role = domain.RoleSender
			} else if as != "recipient" {
				return fmt.Errorf("--as must be sender or recipient")
			}

			priv, err := loadPrivateKey()
			if err != nil {
				return err
			}
			plaintext, err := appCtx.Envelopes.Open(msg.Envelope, priv, role)
			if err != nil {
				return err
			}
			fmt.Printf("[%s] %s\n", msg.From, string(plaintext))
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "recipient", "open as recipient or sender")
	return cmd
}
