// Package session tracks who is currently logged in. The session pointer is
// a small JSON file in the config directory, separate from the durable
// store: logging out (or deleting the file) ends the session without
// touching any user data.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// fileName is the session file created inside the config directory.
const fileName = "session.json"

// Session is the active-login record.
type Session struct {
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	StartedAt time.Time `json:"started_at"`
}

// Manager reads and writes the session file.
type Manager struct {
	dir string
	now func() time.Time
}

// NewManager returns a manager rooted at the given config directory.
func NewManager(configDir string) *Manager {
	return &Manager{dir: configDir, now: time.Now}
}

func (m *Manager) path() string {
	return filepath.Join(m.dir, fileName)
}

// Start records userID as the active session, replacing any existing one.
func (m *Manager) Start(userID int64) (Session, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Session{}, fmt.Errorf("creating config dir: %w", err)
	}

	s := Session{
		UserID:    userID,
		Token:     uuid.NewString(),
		StartedAt: m.now(),
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return Session{}, fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(m.path(), raw, 0o600); err != nil {
		return Session{}, fmt.Errorf("writing session file: %w", err)
	}
	return s, nil
}

// Current returns the active session. The second return is false when no
// session exists. A session file that cannot be parsed counts as absent;
// the pointer is ephemeral, so there is nothing worth recovering from it.
func (m *Manager) Current() (Session, bool, error) {
	raw, err := os.ReadFile(m.path())
	if os.IsNotExist(err) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("reading session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, false, nil
	}
	return s, true, nil
}

// Require returns the active session or ErrNoSession.
func (m *Manager) Require() (Session, error) {
	s, ok, err := m.Current()
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, types.ErrNoSession
	}
	return s, nil
}

// End removes the session file. Ending an absent session is not an error.
func (m *Manager) End() error {
	err := os.Remove(m.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
