package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

func TestRecordActivityNewestFirst(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.NoError(t, s.RecordActivity("first", types.IconContact))
	require.NoError(t, s.RecordActivity("second", types.IconContact))

	got := s.Activities()
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Text)
	assert.Equal(t, "first", got[1].Text)
}

func TestRecordActivityTruncatesToMax(t *testing.T) {
	s, _, _ := newTestStore(t)

	for i := range 15 {
		require.NoError(t, s.RecordActivity(fmt.Sprintf("entry %d", i), types.IconContact))
	}

	got := s.Activities()
	require.Len(t, got, types.MaxActivities)
	assert.Equal(t, "entry 14", got[0].Text)
	assert.Equal(t, "entry 5", got[len(got)-1].Text)
}

func TestMutationsRecordActivity(t *testing.T) {
	s, _, _ := newTestStore(t)

	created, err := s.CreateContact(validContact())
	require.NoError(t, err)
	require.NoError(t, s.DeleteContact(created.ID))

	got := s.Activities()
	require.Len(t, got, 2)
	assert.Equal(t, "Deleted contact Jo Doe", got[0].Text)
	assert.Equal(t, types.IconDelete, got[0].Icon)
	assert.Equal(t, "Added contact Jo Doe", got[1].Text)
	assert.Equal(t, types.IconContact, got[1].Icon)
}

func TestActivityLogIsFlushed(t *testing.T) {
	s, rec, _ := newTestStore(t)

	require.NoError(t, s.RecordActivity("kept", types.IconBackup))

	ds, err := rec.LoadDataset(testUserID)
	require.NoError(t, err)
	require.Len(t, ds.Activities, 1)
	assert.Equal(t, "kept", ds.Activities[0].Text)
}
