package store

import (
	"crypto/rsa"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/pauloricf/chatSecure/internal/domain"
)

const certsFile = "certificates.json"

// CertificateFileStore persists certificates to disk, keyed by serial.
type CertificateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewCertificateFileStore returns a CertificateFileStore rooted at dir.
func NewCertificateFileStore(dir string) *CertificateFileStore {
	return &CertificateFileStore{dir: dir}
}

// SaveCertificate stores or updates cert under its serial number. Updating
// is how revocation reaches disk; the immutable fields never change.
func (s *CertificateFileStore) SaveCertificate(cert domain.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, certsFile)
	certs := make(map[string]domain.Certificate)
	if err := readJSON(path, &certs); err != nil {
		return err
	}
	certs[cert.SerialNumber.String()] = cert
	return writeJSON(path, certs, 0o600)
}

// LoadCertificate retrieves a certificate by serial number.
func (s *CertificateFileStore) LoadCertificate(serial domain.SerialNumber) (domain.Certificate, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	certs := make(map[string]domain.Certificate)
	if err := readJSON(filepath.Join(s.dir, certsFile), &certs); err != nil {
		return domain.Certificate{}, false, err
	}
	cert, ok := certs[serial.String()]
	return cert, ok, nil
}

// CertificateFor returns the newest non-revoked certificate whose subject
// name matches user. Rotation leaves revoked certificates behind; this
// skips them.
func (s *CertificateFileStore) CertificateFor(user domain.Username) (domain.Certificate, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	certs := make(map[string]domain.Certificate)
	if err := readJSON(filepath.Join(s.dir, certsFile), &certs); err != nil {
		return domain.Certificate{}, false, err
	}

	var (
		best  domain.Certificate
		found bool
	)
	for _, cert := range certs {
		if cert.Subject.Name != user.String() || cert.Revoked {
			continue
		}
		if !found || cert.NotBefore.After(best.NotBefore) {
			best = cert
			found = true
		}
	}
	return best, found, nil
}

// ListCertificates returns every stored certificate.
func (s *CertificateFileStore) ListCertificates() ([]domain.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	certs := make(map[string]domain.Certificate)
	if err := readJSON(filepath.Join(s.dir, certsFile), &certs); err != nil {
		return nil, err
	}
	out := make([]domain.Certificate, 0, len(certs))
	for _, cert := range certs {
		out = append(out, cert)
	}
	return out, nil
}

// PublicKeyFor resolves user's current public key from their stored
// certificate, implementing the identity lookup collaborator.
func (s *CertificateFileStore) PublicKeyFor(user domain.Username) (*rsa.PublicKey, error) {
	cert, ok, err := s.CertificateFor(user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no certificate for %q", user)
	}
	return cert.RSAPublicKey()
}

// Compile-time assertions for the store and lookup contracts.
var (
	_ domain.CertificateStore = (*CertificateFileStore)(nil)
	_ domain.PublicKeyLookup  = (*CertificateFileStore)(nil)
)
