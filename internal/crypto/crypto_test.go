package crypto_test

import (
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/pauloricf/chatSecure/internal/crypto"
)

var (
	keyOnce  sync.Once
	keyA     *rsa.PrivateKey
	keyB     *rsa.PrivateKey
	keyErr   error
	keyErrMu sync.Mutex
)

// testKeys generates two 2048-bit keypairs once for the whole package;
// RSA generation is too slow to repeat per test.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()
	keyOnce.Do(func() {
		keyErrMu.Lock()
		defer keyErrMu.Unlock()
		keyA, keyErr = crypto.GenerateRSA(2048)
		if keyErr != nil {
			return
		}
		keyB, keyErr = crypto.GenerateRSA(2048)
	})
	if keyErr != nil {
		t.Fatalf("GenerateRSA: %v", keyErr)
	}
	return keyA, keyB
}
