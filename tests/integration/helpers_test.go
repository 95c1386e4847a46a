// Package integration exercises the full stack: key-value store, master
// record, session manager, and working-set store wired together the way the
// CLI wires them.
package integration

import (
	"testing"
	"time"

	"github.com/mesh-intelligence/shopkeep/internal/export"
	"github.com/mesh-intelligence/shopkeep/internal/kv"
	"github.com/mesh-intelligence/shopkeep/internal/master"
	"github.com/mesh-intelligence/shopkeep/internal/store"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// setupRecord creates a master record backed by an isolated temp-directory
// store. Each test case gets its own database for isolation.
func setupRecord(t *testing.T) (*master.Record, string) {
	t.Helper()
	dir := t.TempDir()
	kvStore, err := kv.Open(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	if err != nil {
		t.Fatalf("Open kv: %v", err)
	}
	t.Cleanup(func() { kvStore.Close() })
	return master.New(kvStore), dir
}

// setupRecordOn wraps an already-open store in a master record.
func setupRecordOn(t *testing.T, kvStore *kv.Store) *master.Record {
	t.Helper()
	return master.New(kvStore)
}

// mustRegister registers a user or fails the test.
func mustRegister(t *testing.T, rec *master.Record, username, password string) types.User {
	t.Helper()
	user, err := rec.RegisterUser(username, password)
	if err != nil {
		t.Fatalf("RegisterUser(%q): %v", username, err)
	}
	return user
}

// mustOpenStore opens the working set for a user or fails the test.
func mustOpenStore(t *testing.T, rec *master.Record, userID int64) *store.Store {
	t.Helper()
	s, err := store.Open(rec, userID, store.Options{})
	if err != nil {
		t.Fatalf("Open store for user %d: %v", userID, err)
	}
	return s
}

// mustCreateContact creates a contact or fails the test.
func mustCreateContact(t *testing.T, s *store.Store, c types.Contact) types.Contact {
	t.Helper()
	created, err := s.CreateContact(c)
	if err != nil {
		t.Fatalf("CreateContact(%s %s): %v", c.FirstName, c.LastName, err)
	}
	return created
}

// backupJSON renders a store's working set as a backup document.
func backupJSON(s *store.Store) ([]byte, error) {
	return export.MarshalBackup(s.WorkingSet(), time.Now())
}

// mustCreateBook creates a book or fails the test.
func mustCreateBook(t *testing.T, s *store.Store, b types.Book) types.Book {
	t.Helper()
	created, err := s.CreateBook(b)
	if err != nil {
		t.Fatalf("CreateBook(%s): %v", b.Title, err)
	}
	return created
}
