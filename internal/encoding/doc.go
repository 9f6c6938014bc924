// Package encoding armors certificates and key blobs for interchange.
//
// Certificates and encrypted key blobs are serialized as JSON records
// wrapped in PEM blocks; encode→decode→encode yields identical bytes.
// Private keys additionally export as password-encrypted PKCS#8 PEM, the
// standard interchange form.
package encoding
