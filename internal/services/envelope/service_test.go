package envelope_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloricf/chatSecure/internal/crypto"
	"github.com/pauloricf/chatSecure/internal/domain"
	"github.com/pauloricf/chatSecure/internal/services/envelope"
	"github.com/pauloricf/chatSecure/internal/services/identity"
)

type fixture struct {
	svc       *envelope.Service
	identity  *identity.Service
	alice     domain.Identity
	bob       domain.Identity
	plaintext []byte
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ids := identity.New(2048, 24*time.Hour)
	alice, err := ids.Generate(domain.SubjectInfo{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := ids.Generate(domain.SubjectInfo{Name: "bob", Email: "bob@example.com"})
	require.NoError(t, err)
	return fixture{
		svc:       envelope.New(ids),
		identity:  ids,
		alice:     alice,
		bob:       bob,
		plaintext: []byte("hello bob"),
	}
}

func TestSealOpen_Recipient(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)

	assert.Len(t, env.IV, crypto.IVBytes)
	assert.Len(t, env.RecipientKeyWrap, f.bob.KeyPair.Private.Size())
	assert.Len(t, env.SenderKeyWrap, f.alice.KeyPair.Private.Size())
	assert.NotEqual(t, f.plaintext, env.Ciphertext)

	got, err := f.svc.Open(env, f.bob.KeyPair.Private, domain.RoleRecipient)
	require.NoError(t, err)
	assert.Equal(t, f.plaintext, got)
}

func TestSealOpen_SenderReadsOwnMessage(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)

	got, err := f.svc.Open(env, f.alice.KeyPair.Private, domain.RoleSender)
	require.NoError(t, err)
	assert.Equal(t, f.plaintext, got)
}

func TestSeal_FreshSessionKeyPerMessage(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)
	b, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
	assert.NotEqual(t, a.RecipientKeyWrap, b.RecipientKeyWrap)
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)
	env.Ciphertext[0] ^= 0xff

	_, err = f.svc.Open(env, f.bob.KeyPair.Private, domain.RoleRecipient)
	assert.ErrorIs(t, err, domain.ErrDecryption)
}

func TestOpen_WrongKey(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)

	eve, err := f.identity.Generate(domain.SubjectInfo{Name: "eve", Email: "eve@example.com"})
	require.NoError(t, err)

	_, err = f.svc.Open(env, eve.KeyPair.Private, domain.RoleRecipient)
	assert.ErrorIs(t, err, domain.ErrDecryption)
}

func TestOpen_WrapLengthMismatch(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)
	env.RecipientKeyWrap = env.RecipientKeyWrap[:len(env.RecipientKeyWrap)-1]

	_, err = f.svc.Open(env, f.bob.KeyPair.Private, domain.RoleRecipient)
	assert.ErrorIs(t, err, domain.ErrKeyMismatch)
}

func TestOpen_NilKey(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Open(domain.Envelope{}, nil, domain.RoleRecipient)
	assert.ErrorIs(t, err, domain.ErrInvalidKeyFormat)
}

func TestSeal_NilKeys(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Seal(f.plaintext, nil, f.alice.KeyPair.Private)
	assert.ErrorIs(t, err, domain.ErrInvalidKeyFormat)

	_, err = f.svc.Seal(f.plaintext, f.bob.KeyPair.Public, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidKeyFormat)
}

func TestSealFor(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.SealFor(f.plaintext, f.bob.Certificate, f.alice.KeyPair.Private)
	require.NoError(t, err)

	got, err := f.svc.Open(env, f.bob.KeyPair.Private, domain.RoleRecipient)
	require.NoError(t, err)
	assert.Equal(t, f.plaintext, got)
}

func TestSealFor_RevokedCertificate(t *testing.T) {
	f := newFixture(t)

	revoked, err := f.identity.Revoke(f.bob.Certificate)
	require.NoError(t, err)

	_, err = f.svc.SealFor(f.plaintext, revoked, f.alice.KeyPair.Private)
	var certErr *domain.CertificateInvalidError
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, domain.ReasonRevoked, certErr.Reason)
}

func TestSeal_EmptyPlaintext(t *testing.T) {
	f := newFixture(t)

	env, err := f.svc.Seal(nil, f.bob.KeyPair.Public, f.alice.KeyPair.Private)
	require.NoError(t, err)

	got, err := f.svc.Open(env, f.bob.KeyPair.Private, domain.RoleRecipient)
	require.NoError(t, err)
	assert.Empty(t, got)
}
