package store

import (
	"path/filepath"
	"sync"

	"github.com/pauloricf/chatSecure/internal/domain"
)

const keyBlobsFile = "keyblobs.json"

// KeyBlobFileStore persists password-wrapped private keys to disk. The
// blobs are opaque ciphertext; the store cannot open them.
type KeyBlobFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyBlobFileStore returns a KeyBlobFileStore rooted at dir.
func NewKeyBlobFileStore(dir string) *KeyBlobFileStore {
	return &KeyBlobFileStore{dir: dir}
}

// SaveKeyBlob stores or replaces the blob for user. Replacement happens
// only at rotation; a blob itself is never mutated.
func (s *KeyBlobFileStore) SaveKeyBlob(user domain.Username, blob domain.EncryptedKeyBlob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, keyBlobsFile)
	blobs := make(map[string]domain.EncryptedKeyBlob)
	if err := readJSON(path, &blobs); err != nil {
		return err
	}
	blobs[user.String()] = blob
	return writeJSON(path, blobs, 0o600)
}

// LoadKeyBlob retrieves the blob for user.
func (s *KeyBlobFileStore) LoadKeyBlob(user domain.Username) (domain.EncryptedKeyBlob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobs := make(map[string]domain.EncryptedKeyBlob)
	if err := readJSON(filepath.Join(s.dir, keyBlobsFile), &blobs); err != nil {
		return domain.EncryptedKeyBlob{}, false, err
	}
	blob, ok := blobs[user.String()]
	return blob, ok, nil
}

// Compile-time assertion that KeyBlobFileStore implements domain.KeyBlobStore.
var _ domain.KeyBlobStore = (*KeyBlobFileStore)(nil)
