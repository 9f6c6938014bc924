package store_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloricf/chatSecure/internal/domain"
	"github.com/pauloricf/chatSecure/internal/services/identity"
	"github.com/pauloricf/chatSecure/internal/store"
)

func generate(t *testing.T, name string) domain.Identity {
	t.Helper()
	id, err := identity.New(2048, 24*time.Hour).Generate(domain.SubjectInfo{
		Name:  name,
		Email: name + "@example.com",
	})
	require.NoError(t, err)
	return id
}

func TestCertificateStore_SaveLoad(t *testing.T) {
	s := store.NewCertificateFileStore(t.TempDir())
	cert := generate(t, "alice").Certificate

	require.NoError(t, s.SaveCertificate(cert))

	got, ok, err := s.LoadCertificate(cert.SerialNumber)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cert, got)

	_, ok, err = s.LoadCertificate("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCertificateStore_CertificateFor(t *testing.T) {
	s := store.NewCertificateFileStore(t.TempDir())
	svc := identity.New(2048, 24*time.Hour)

	old := generate(t, "alice").Certificate
	old.NotBefore = old.NotBefore.Add(-time.Hour)
	require.NoError(t, s.SaveCertificate(old))

	current := generate(t, "alice").Certificate
	require.NoError(t, s.SaveCertificate(current))
	require.NoError(t, s.SaveCertificate(generate(t, "bob").Certificate))

	got, ok, err := s.CertificateFor("alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, current.SerialNumber, got.SerialNumber, "newest certificate wins")

	// Revoking the current one falls back to the older valid issue.
	revoked, err := svc.Revoke(current)
	require.NoError(t, err)
	require.NoError(t, s.SaveCertificate(revoked))

	got, ok, err = s.CertificateFor("alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, old.SerialNumber, got.SerialNumber)

	_, ok, err = s.CertificateFor("carol")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCertificateStore_List(t *testing.T) {
	s := store.NewCertificateFileStore(t.TempDir())

	certs, err := s.ListCertificates()
	require.NoError(t, err)
	assert.Empty(t, certs)

	require.NoError(t, s.SaveCertificate(generate(t, "alice").Certificate))
	require.NoError(t, s.SaveCertificate(generate(t, "bob").Certificate))

	certs, err = s.ListCertificates()
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}

func TestCertificateStore_PublicKeyFor(t *testing.T) {
	s := store.NewCertificateFileStore(t.TempDir())
	alice := generate(t, "alice")
	require.NoError(t, s.SaveCertificate(alice.Certificate))

	pub, err := s.PublicKeyFor("alice")
	require.NoError(t, err)
	assert.Zero(t, pub.N.Cmp(alice.KeyPair.Public.N))

	_, err = s.PublicKeyFor("nobody")
	assert.Error(t, err)
}

func TestKeyBlobStore_RoundTrip(t *testing.T) {
	s := store.NewKeyBlobFileStore(t.TempDir())
	blob := domain.EncryptedKeyBlob{
		Ciphertext: []byte{1, 2, 3},
		Salt:       bytes.Repeat([]byte{4}, 16),
		IV:         bytes.Repeat([]byte{5}, 12),
	}

	require.NoError(t, s.SaveKeyBlob("alice", blob))

	got, ok, err := s.LoadKeyBlob("alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, blob, got)

	_, ok, err = s.LoadKeyBlob("bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessageStore_SaveAssignsIDAndTimestamp(t *testing.T) {
	s := store.NewMessageFileStore(t.TempDir())

	saved, err := s.SaveMessage(domain.SealedMessage{From: "alice", To: "bob"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotZero(t, saved.StoredAt)

	got, ok, err := s.LoadMessage(saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)
}

func TestMessageStore_ListFiltersAndSorts(t *testing.T) {
	s := store.NewMessageFileStore(t.TempDir())

	later, err := s.SaveMessage(domain.SealedMessage{ID: "m2", From: "alice", To: "bob", StoredAt: 200})
	require.NoError(t, err)
	earlier, err := s.SaveMessage(domain.SealedMessage{ID: "m1", From: "bob", To: "alice", StoredAt: 100})
	require.NoError(t, err)
	_, err = s.SaveMessage(domain.SealedMessage{ID: "m3", From: "carol", To: "dave", StoredAt: 150})
	require.NoError(t, err)

	msgs, err := s.ListMessages("alice")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, earlier.ID, msgs[0].ID)
	assert.Equal(t, later.ID, msgs[1].ID)

	msgs, err = s.ListMessages("dave")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}
