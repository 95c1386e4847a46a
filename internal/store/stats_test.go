package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

func TestDashboardEmpty(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.Equal(t, types.DashboardStats{}, s.Dashboard())
}

func TestDashboardContacts(t *testing.T) {
	s, _, clock := newTestStore(t)

	client, err := s.CreateCategory("Client", "")
	require.NoError(t, err)
	supplier, err := s.CreateCategory("Supplier", "")
	require.NoError(t, err)

	// Two contacts added last month, one this month. The fake clock makes
	// the month window deterministic.
	clock.t = baseTime.AddDate(0, -1, 0)
	_, err = s.CreateContact(types.Contact{FirstName: "A", LastName: "One", Phone: "1", Organization: "Acme", CategoryID: client.ID})
	require.NoError(t, err)
	_, err = s.CreateContact(types.Contact{FirstName: "B", LastName: "Two", Phone: "2", Organization: "Acme", CategoryID: supplier.ID})
	require.NoError(t, err)

	clock.t = baseTime
	_, err = s.CreateContact(types.Contact{FirstName: "C", LastName: "Three", Phone: "3", Organization: "Globex", CategoryID: client.ID})
	require.NoError(t, err)

	stats := s.Dashboard()
	assert.Equal(t, 3, stats.TotalContacts)
	assert.Equal(t, 2, stats.TotalOrganizations)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, 1, stats.NewContactsMonth)
	assert.Equal(t, 2, stats.Clients)
	assert.Equal(t, 1, stats.Suppliers)
	assert.Equal(t, 0, stats.Partners)
}

func TestDashboardNamedCategoriesMatchCaseInsensitively(t *testing.T) {
	s, _, _ := newTestStore(t)

	cat, err := s.CreateCategory("CLIENT", "")
	require.NoError(t, err)
	c := validContact()
	c.CategoryID = cat.ID
	_, err = s.CreateContact(c)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Dashboard().Clients)
}

func TestDashboardBooksAndSales(t *testing.T) {
	s, _, clock := newTestStore(t)

	_, err := s.CreateGenre("Fiction", "")
	require.NoError(t, err)

	dune := addBook(t, s, "Dune", 10.00, 10)
	clock.advance(time.Minute)
	addBook(t, s, "Messiah", 5.00, 4)

	_, err = s.LogSale(dune.ID, 3)
	require.NoError(t, err)
	_, err = s.LogSale(dune.ID, 1)
	require.NoError(t, err)

	stats := s.Dashboard()
	assert.Equal(t, 2, stats.TotalBooks)
	assert.Equal(t, 1, stats.TotalAuthors) // same author on both books
	assert.Equal(t, 1, stats.TotalGenres)
	assert.Equal(t, 2, stats.NewBooksMonth)
	assert.Equal(t, 4, stats.UnitsSold)
	assert.InDelta(t, 40.00, stats.TotalRevenue, 0.0001)
	// 6 remaining Dune at $10 plus 4 Messiah at $5.
	assert.InDelta(t, 80.00, stats.InventoryValue, 0.0001)
}

func TestDashboardRecomputesEachCall(t *testing.T) {
	s, _, _ := newTestStore(t)

	created, err := s.CreateContact(validContact())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Dashboard().TotalContacts)

	require.NoError(t, s.DeleteContact(created.ID))
	assert.Equal(t, 0, s.Dashboard().TotalContacts)
}
