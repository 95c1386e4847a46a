package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{Backend: "bolt"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestGetAbsentKey(t *testing.T) {
	s := openTestStore(t)

	value, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("users", `[{"id":1}]`))

	value, ok, err := s.Get("users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("users", "old"))
	require.NoError(t, s.Set("users", "new"))

	value, ok, err := s.Get("users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("userdata/1", "{}"))
	require.NoError(t, s.Delete("userdata/1"))

	_, ok, err := s.Get("userdata/1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete("userdata/1"))
}

func TestKeysByPrefix(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("userdata/1", "{}"))
	require.NoError(t, s.Set("userdata/2", "{}"))
	require.NoError(t, s.Set("users", "[]"))

	keys, err := s.Keys("userdata/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"userdata/1", "userdata/2"}, keys)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err := s.Get("users")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.Set("users", ""), types.ErrStoreDetached)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Set("users", `["alice"]`))
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Get("users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["alice"]`, value)
}
