// Package commands defines the chatsecure CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init         Create the local identity (keypair + certificate)
//   - rotate       Replace the identity and revoke the prior certificate
//   - fingerprint  Print the identity fingerprint
//   - import-cert  Add a peer's armored certificate to the local store
//   - export       Print the certificate or the encrypted private key
//   - seal         Encrypt, sign and store a message for a peer
//   - open         Decrypt a stored message as recipient or sender
//   - verify       Run the full trust pipeline on a stored message
//   - revoke       Revoke the local certificate
//
// # Implementation
//
// The root command loads config.yaml (if present) under the home directory
// and builds the dependency graph before any subcommand runs, so handlers
// share one app context.
package commands
