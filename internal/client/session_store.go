package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coopkiosk/backend/internal/models"
)

// Snapshot is the locally persisted record of the last successful login.
// Its presence is what makes the client consider itself logged in; there is
// no client-side expiry, only explicit logout or an observed 401.
type Snapshot struct {
	Member    models.Member `json:"member"`
	SessionID string        `json:"session_id,omitempty"`
	SavedAt   time.Time     `json:"saved_at"`
}

// SessionStore keeps the snapshot in a single JSON file. Writes replace the
// whole file atomically, so readers never observe a torn snapshot.
type SessionStore struct {
	mu   sync.Mutex
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Set overwrites any existing snapshot.
func (s *SessionStore) Set(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Get returns the stored snapshot. Absence is a normal state (logged out)
// and is reported via ok=false, not an error.
func (s *SessionStore) Get() (Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

// Clear removes the snapshot. Clearing an absent snapshot is a no-op.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
