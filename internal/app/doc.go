// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores and services from Config, exposing them as
// two capability-restricted facades: Holder, which owns the private-key
// path, and Verifier, which is constructed public-key-only and cannot
// reach a private key.
package app
