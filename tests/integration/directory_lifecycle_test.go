package integration

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/shopkeep/internal/store"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// TestContactDirectoryLifecycle walks a user through the contact directory:
// register, add a category and a contact in it, search, and observe that the
// category cannot be deleted until its referent is gone.
func TestContactDirectoryLifecycle(t *testing.T) {
	rec, _ := setupRecord(t)
	alice := mustRegister(t, rec, "alice", "secret")
	s := mustOpenStore(t, rec, alice.ID)

	// The starter dataset seeds contacts and categories.
	if len(s.Categories()) == 0 {
		t.Fatal("expected seeded categories")
	}

	vip, err := s.CreateCategory("VIP", "high-touch accounts")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	jo := mustCreateContact(t, s, types.Contact{
		FirstName:  "Jo",
		LastName:   "Doe",
		Phone:      "555-1111",
		CategoryID: vip.ID,
	})

	// Search is case-insensitive and matches last names.
	matches := s.QueryContacts(store.ContactFilter{Search: "doe"}, store.SortByName)
	if len(matches) != 1 || matches[0].ID != jo.ID {
		t.Fatalf("QueryContacts(doe) = %v, want just %d", matches, jo.ID)
	}

	// The category is referenced, so deletion is refused with the count.
	err = s.DeleteCategory(vip.ID)
	if !errors.Is(err, types.ErrCategoryInUse) {
		t.Fatalf("DeleteCategory with referent: err = %v, want ErrCategoryInUse", err)
	}
	var inUse *types.InUseError
	if !errors.As(err, &inUse) || inUse.Count != 1 {
		t.Fatalf("DeleteCategory error %v, want InUseError with count 1", err)
	}

	if err := s.DeleteContact(jo.ID); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if err := s.DeleteCategory(vip.ID); err != nil {
		t.Fatalf("DeleteCategory after removing referent: %v", err)
	}

	// The mutation trail is flushed: a fresh store sees the same state.
	reopened := mustOpenStore(t, rec, alice.ID)
	for _, c := range reopened.Categories() {
		if c.ID == vip.ID {
			t.Fatal("deleted category survived reopen")
		}
	}
}

// TestDatasetsAreIsolatedPerUser checks that two accounts never see each
// other's records.
func TestDatasetsAreIsolatedPerUser(t *testing.T) {
	rec, _ := setupRecord(t)
	alice := mustRegister(t, rec, "alice", "secret")
	bob := mustRegister(t, rec, "bob", "hunter2")

	aliceStore := mustOpenStore(t, rec, alice.ID)
	mustCreateContact(t, aliceStore, types.Contact{
		FirstName: "Only", LastName: "Alice", Phone: "555-0000",
	})

	bobStore := mustOpenStore(t, rec, bob.ID)
	matches := bobStore.QueryContacts(store.ContactFilter{Search: "alice"}, store.SortByName)
	if len(matches) != 0 {
		t.Fatalf("bob sees alice's contact: %v", matches)
	}
}

// TestAuthenticationFlow covers registration, duplicate usernames, and
// credential checking end to end.
func TestAuthenticationFlow(t *testing.T) {
	rec, _ := setupRecord(t)
	mustRegister(t, rec, "alice", "secret")

	if _, err := rec.RegisterUser("alice", "other"); !errors.Is(err, types.ErrDuplicateUsername) {
		t.Fatalf("duplicate register: err = %v, want ErrDuplicateUsername", err)
	}

	if _, err := rec.Authenticate("alice", "wrong"); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Fatalf("bad password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := rec.Authenticate("ALICE", "secret"); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Fatalf("usernames are case-sensitive: err = %v, want ErrInvalidCredentials", err)
	}

	user, err := rec.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("Authenticate returned %q, want alice", user.Username)
	}
}
