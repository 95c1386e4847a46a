package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearAll(t *testing.T) {
	s, rec, _ := newTestStore(t)

	_, err := s.CreateContact(validContact())
	require.NoError(t, err)
	_, err = s.CreateCategory("Custom", "")
	require.NoError(t, err)
	book := addBook(t, s, "Dune", 10.99, 5)
	_, err = s.LogSale(book.ID, 1)
	require.NoError(t, err)

	require.NoError(t, s.ClearAll())

	ws := s.WorkingSet()
	assert.Empty(t, ws.Contacts)
	assert.Empty(t, ws.Books)
	assert.Empty(t, ws.Sales)
	assert.Empty(t, ws.Activities)

	// The standard classification sets come back.
	assert.Len(t, ws.Categories, 4)
	assert.Equal(t, "Client", ws.Categories[0].Name)
	assert.Len(t, ws.Genres, 4)

	// The reset reached the slot.
	ds, err := rec.LoadDataset(testUserID)
	require.NoError(t, err)
	assert.Empty(t, ds.Contacts)
	assert.Len(t, ds.Categories, 4)
}
