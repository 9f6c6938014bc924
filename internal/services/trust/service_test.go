package trust_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloricf/chatSecure/internal/domain"
	"github.com/pauloricf/chatSecure/internal/services/envelope"
	"github.com/pauloricf/chatSecure/internal/services/identity"
	"github.com/pauloricf/chatSecure/internal/services/trust"
)

type fixture struct {
	trust    *trust.Service
	identity *identity.Service
	alice    domain.Identity
	bob      domain.Identity
	env      domain.Envelope
}

// newFixture seals "hello bob" from alice to bob.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ids := identity.New(2048, 24*time.Hour)
	alice, err := ids.Generate(domain.SubjectInfo{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := ids.Generate(domain.SubjectInfo{Name: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	envs := envelope.New(ids)
	env, err := envs.Seal([]byte("hello bob"), bob.KeyPair.Public, alice.KeyPair.Private)
	require.NoError(t, err)

	return fixture{
		trust:    trust.New(ids, envs),
		identity: ids,
		alice:    alice,
		bob:      bob,
		env:      env,
	}
}

func TestVerifyIncoming_Valid(t *testing.T) {
	f := newFixture(t)

	v := f.trust.VerifyIncoming(f.env, f.alice.Certificate, f.bob.KeyPair.Private)

	assert.True(t, v.Valid)
	assert.Empty(t, v.Reasons)
	assert.Equal(t, []byte("hello bob"), v.Plaintext)
}

func TestVerifyIncoming_RevokedSender(t *testing.T) {
	f := newFixture(t)

	revoked, err := f.identity.Revoke(f.alice.Certificate)
	require.NoError(t, err)

	v := f.trust.VerifyIncoming(f.env, revoked, f.bob.KeyPair.Private)

	assert.False(t, v.Valid)
	assert.Equal(t, []domain.CheckFailure{domain.CheckCertificate}, v.Reasons)
	assert.Nil(t, v.Plaintext, "certificate failure must not leak plaintext")
}

func TestVerifyIncoming_WrongRecipientKey(t *testing.T) {
	f := newFixture(t)

	v := f.trust.VerifyIncoming(f.env, f.alice.Certificate, f.alice.KeyPair.Private)

	assert.False(t, v.Valid)
	assert.Equal(t, []domain.CheckFailure{domain.CheckDecryption}, v.Reasons)
	assert.Nil(t, v.Plaintext)
}

func TestVerifyIncoming_TamperedSignature(t *testing.T) {
	f := newFixture(t)
	f.env.Signature[0] ^= 0xff

	v := f.trust.VerifyIncoming(f.env, f.alice.Certificate, f.bob.KeyPair.Private)

	assert.False(t, v.Valid)
	assert.Equal(t, []domain.CheckFailure{domain.CheckSignature}, v.Reasons)
	assert.Equal(t, []byte("hello bob"), v.Plaintext, "readable content with a trust warning")
}

func TestVerifyIncoming_TamperedHash(t *testing.T) {
	f := newFixture(t)
	f.env.ContentHash[0] ^= 0xff

	v := f.trust.VerifyIncoming(f.env, f.alice.Certificate, f.bob.KeyPair.Private)

	assert.False(t, v.Valid)
	assert.Equal(t, []domain.CheckFailure{domain.CheckHash}, v.Reasons)
	assert.Equal(t, []byte("hello bob"), v.Plaintext)
}

func TestVerifyIncoming_SignatureAndHashCollected(t *testing.T) {
	f := newFixture(t)
	f.env.Signature[0] ^= 0xff
	f.env.ContentHash[0] ^= 0xff

	v := f.trust.VerifyIncoming(f.env, f.alice.Certificate, f.bob.KeyPair.Private)

	assert.False(t, v.Valid)
	assert.Equal(t, []domain.CheckFailure{domain.CheckSignature, domain.CheckHash}, v.Reasons)
	assert.Equal(t, []byte("hello bob"), v.Plaintext)
}

func TestVerifyIncoming_ImpostorCertificate(t *testing.T) {
	f := newFixture(t)

	// Eve presents her own valid certificate for alice's message. Her key
	// did not produce the signature, so the envelope must not verify.
	eve, err := f.identity.Generate(domain.SubjectInfo{Name: "eve", Email: "eve@example.com"})
	require.NoError(t, err)

	v := f.trust.VerifyIncoming(f.env, eve.Certificate, f.bob.KeyPair.Private)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reasons, domain.CheckSignature)
}
