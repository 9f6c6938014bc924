// Package trust is the receive-side entry point that turns an incoming
// envelope and a claimed sender certificate into a single verdict.
//
// The pipeline runs certificate validation, envelope decryption, signature
// verification and content-hash comparison, in that order. Certificate and
// decryption failures short-circuit; signature and hash failures do not:
// the recovered plaintext is returned alongside the failing reasons so the
// caller can surface a visibly unverified message instead of dropping it.
package trust
