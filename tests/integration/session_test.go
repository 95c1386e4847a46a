package integration

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/shopkeep/internal/kv"
	"github.com/mesh-intelligence/shopkeep/internal/session"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// TestSessionFlow drives login, whoami-style lookup, and logout through the
// session manager and master record together.
func TestSessionFlow(t *testing.T) {
	rec, _ := setupRecord(t)
	alice := mustRegister(t, rec, "alice", "secret")

	mgr := session.NewManager(t.TempDir())

	if _, err := mgr.Require(); !errors.Is(err, types.ErrNoSession) {
		t.Fatalf("Require before login: err = %v, want ErrNoSession", err)
	}

	user, err := rec.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	started, err := mgr.Start(user.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if started.UserID != alice.ID || started.Token == "" {
		t.Fatalf("Start returned %+v, want alice's id and a token", started)
	}

	sess, err := mgr.Require()
	if err != nil {
		t.Fatalf("Require after login: %v", err)
	}
	found, err := rec.FindUser(sess.UserID)
	if err != nil || found.Username != "alice" {
		t.Fatalf("FindUser(%d) = %v, %v; want alice", sess.UserID, found, err)
	}

	if err := mgr.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := mgr.Require(); !errors.Is(err, types.ErrNoSession) {
		t.Fatalf("Require after logout: err = %v, want ErrNoSession", err)
	}
}

// TestDataSurvivesReopen closes the database and opens it again from the
// same directory: users and records come back.
func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	first, err := kv.Open(cfg)
	if err != nil {
		t.Fatalf("Open kv: %v", err)
	}
	rec := setupRecordOn(t, first)
	alice := mustRegister(t, rec, "alice", "secret")
	s := mustOpenStore(t, rec, alice.ID)
	created := mustCreateContact(t, s, types.Contact{
		FirstName: "Jo", LastName: "Doe", Phone: "555-1111",
	})
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := kv.Open(cfg)
	if err != nil {
		t.Fatalf("reopen kv: %v", err)
	}
	t.Cleanup(func() { second.Close() })

	rec2 := setupRecordOn(t, second)
	if _, err := rec2.Authenticate("alice", "secret"); err != nil {
		t.Fatalf("Authenticate after reopen: %v", err)
	}
	s2 := mustOpenStore(t, rec2, alice.ID)
	got, err := s2.GetContact(created.ID)
	if err != nil {
		t.Fatalf("GetContact after reopen: %v", err)
	}
	if got.FullName() != "Jo Doe" {
		t.Fatalf("contact after reopen = %q, want Jo Doe", got.FullName())
	}
}
