package store

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pauloricf/chatSecure/internal/domain"
)

const messagesFile = "messages.json"

// MessageFileStore persists sealed messages to disk. Envelopes are stored
// verbatim; whatever transport carries them later reads them back
// unchanged.
type MessageFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewMessageFileStore returns a MessageFileStore rooted at dir.
func NewMessageFileStore(dir string) *MessageFileStore {
	return &MessageFileStore{dir: dir}
}

// SaveMessage stores msg, assigning a record ID and timestamp when absent,
// and returns the stored record.
func (s *MessageFileStore) SaveMessage(msg domain.SealedMessage) (domain.SealedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.StoredAt == 0 {
		msg.StoredAt = time.Now().Unix()
	}

	path := filepath.Join(s.dir, messagesFile)
	msgs := make(map[string]domain.SealedMessage)
	if err := readJSON(path, &msgs); err != nil {
		return domain.SealedMessage{}, err
	}
	msgs[msg.ID] = msg
	if err := writeJSON(path, msgs, 0o600); err != nil {
		return domain.SealedMessage{}, err
	}
	return msg, nil
}

// LoadMessage retrieves a message by record ID.
func (s *MessageFileStore) LoadMessage(id string) (domain.SealedMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make(map[string]domain.SealedMessage)
	if err := readJSON(filepath.Join(s.dir, messagesFile), &msgs); err != nil {
		return domain.SealedMessage{}, false, err
	}
	msg, ok := msgs[id]
	return msg, ok, nil
}

// ListMessages returns messages sent by or addressed to user, oldest first.
func (s *MessageFileStore) ListMessages(user domain.Username) ([]domain.SealedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make(map[string]domain.SealedMessage)
	if err := readJSON(filepath.Join(s.dir, messagesFile), &msgs); err != nil {
		return nil, err
	}
	out := make([]domain.SealedMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.From == user || m.To == user {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoredAt < out[j].StoredAt })
	return out, nil
}

// Compile-time assertion that MessageFileStore implements domain.MessageStore.
var _ domain.MessageStore = (*MessageFileStore)(nil)
