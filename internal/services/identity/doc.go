// Package identity issues and validates self-signed identity credentials.
//
// It generates RSA key pairs, builds certificates whose subject equals
// their issuer, self-signs them, and runs the ordered validation checks
// (structural, revocation, shape, temporal, signature). Revocation is a
// one-way transition.
package identity
