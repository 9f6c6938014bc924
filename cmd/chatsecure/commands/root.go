package commands

import (
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pauloricf/chatSecure/internal/app"
	"github.com/pauloricf/chatSecure/internal/domain"
)

var (
	home       string
	passphrase string
	username   string

	cfg    app.Config
	appCtx *app.Holder
)

// Execute builds the root command and runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "chatsecure",
		Short: "End-to-end encrypted messaging trust core",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".chatsecure")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			cfg, err = app.LoadConfig(filepath.Join(home, "config.yaml"))
			if err != nil {
				return err
			}
			cfg.Home = home

			appCtx = app.NewHolder(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.chatsecure)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the private key")
	root.PersistentFlags().StringVarP(&username, "user", "u", "", "your username (certificate subject name)")

	root.AddCommand(
		initCmd(),
		rotateCmd(),
		fingerprintCmd(),
		importCertCmd(),
		exportCmd(),
		sealCmd(),
		openCmd(),
		verifyCmd(),
		revokeCmd(),
	)
	return root.Execute()
}

// loadPrivateKey unwraps the caller's private key from the blob store.
func loadPrivateKey() (*rsa.PrivateKey, error) {
	if username == "" {
		return nil, fmt.Errorf("--user required")
	}
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	blob, ok, err := appCtx.Blobs.LoadKeyBlob(domain.Username(username))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no key for %q; run init first", username)
	}
	return appCtx.Keyguard.Unprotect(blob, passphrase)
}

// ownCertificate returns the caller's current certificate.
func ownCertificate() (domain.Certificate, error) {
	if username == "" {
		return domain.Certificate{}, fmt.Errorf("--user required")
	}
	cert, ok, err := appCtx.Certs.CertificateFor(domain.Username(username))
	if err != nil {
		return domain.Certificate{}, err
	}
	if !ok {
		return domain.Certificate{}, fmt.Errorf("no certificate for %q; run init first", username)
	}
	return cert, nil
}
