// Package master manages the durable master record: the registry of all
// registered users and one dataset slot per user. The registry lives under
// the "users" key and each dataset under "userdata/<id>", so saving one
// user's data never rewrites another's.
package master

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/shopkeep/internal/kv"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// Storage keys.
const (
	usersKey          = "users"
	userDataKeyPrefix = "userdata/"
)

// Record provides access to the user registry and the per-user dataset slots.
type Record struct {
	store *kv.Store
	now   func() time.Time
}

// New wraps a key-value store in a master record accessor.
func New(store *kv.Store) *Record {
	return &Record{store: store, now: time.Now}
}

// Users returns the registry, initializing it to empty on first access.
func (r *Record) Users() ([]types.User, error) {
	raw, ok, err := r.store.Get(usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := r.saveUsers([]types.User{}); err != nil {
			return nil, err
		}
		return []types.User{}, nil
	}

	var users []types.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: user registry: %v", types.ErrCorruptState, err)
	}
	return users, nil
}

// FindUser returns the registered user with the given id.
func (r *Record) FindUser(id int64) (types.User, error) {
	users, err := r.Users()
	if err != nil {
		return types.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return types.User{}, types.ErrNotFound
}

// RegisterUser adds a new user to the registry and seeds their dataset slot
// with a copy of the default dataset. Usernames are compared exactly, case
// sensitively. Returns ErrDuplicateUsername when the name is taken.
func (r *Record) RegisterUser(username, password string) (types.User, error) {
	if username == "" || password == "" {
		return types.User{}, fmt.Errorf("%w: username and password are required", types.ErrValidation)
	}

	users, err := r.Users()
	if err != nil {
		return types.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return types.User{}, types.ErrDuplicateUsername
		}
	}

	id := r.now().UnixMilli()
	for containsUserID(users, id) {
		id++
	}

	user := types.User{ID: id, Username: username, Password: password}
	users = append(users, user)
	if err := r.saveUsers(users); err != nil {
		return types.User{}, err
	}
	if err := r.SaveDataset(id, types.DefaultDataset()); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Authenticate scans the registry for an exact username and password match.
func (r *Record) Authenticate(username, password string) (types.User, error) {
	users, err := r.Users()
	if err != nil {
		return types.User{}, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return types.User{}, types.ErrInvalidCredentials
}

// LoadDataset returns the dataset stored in the user's slot. A missing slot
// degrades to an empty dataset rather than an error; a session can outlive
// its slot and the caller still gets a usable working set.
func (r *Record) LoadDataset(userID int64) (*types.Dataset, error) {
	raw, ok, err := r.store.Get(userDataKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return types.NewDataset(), nil
	}

	var ds types.Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		return nil, fmt.Errorf("%w: dataset for user %d: %v", types.ErrCorruptState, userID, err)
	}
	return &ds, nil
}

// SaveDataset writes the dataset into the user's slot, replacing the
// previous contents of that slot only.
func (r *Record) SaveDataset(userID int64, ds *types.Dataset) error {
	raw, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encoding dataset for user %d: %w", userID, err)
	}
	return r.store.Set(userDataKey(userID), string(raw))
}

func (r *Record) saveUsers(users []types.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding user registry: %w", err)
	}
	return r.store.Set(usersKey, string(raw))
}

func userDataKey(id int64) string {
	return fmt.Sprintf("%s%d", userDataKeyPrefix, id)
}

func containsUserID(users []types.User, id int64) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
