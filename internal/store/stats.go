package store

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// Dashboard computes the full dashboard aggregate from the working set.
// Everything is recomputed on each call; nothing is cached or maintained
// incrementally.
func (s *Store) Dashboard() types.DashboardStats {
	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := types.DashboardStats{
		TotalContacts:   len(s.ws.Contacts),
		TotalCategories: len(s.ws.Categories),
		TotalBooks:      len(s.ws.Books),
		TotalGenres:     len(s.ws.Genres),
	}

	orgs := map[string]bool{}
	for _, c := range s.ws.Contacts {
		if c.Organization != "" {
			orgs[c.Organization] = true
		}
		if !c.DateAdded.Before(firstOfMonth) {
			stats.NewContactsMonth++
		}
		switch strings.ToLower(s.CategoryName(c.CategoryID)) {
		case "client":
			stats.Clients++
		case "supplier":
			stats.Suppliers++
		case "partner":
			stats.Partners++
		}
	}
	stats.TotalOrganizations = len(orgs)

	authors := map[string]bool{}
	for _, b := range s.ws.Books {
		if b.Author != "" {
			authors[b.Author] = true
		}
		if !b.DateAdded.Before(firstOfMonth) {
			stats.NewBooksMonth++
		}
		stats.InventoryValue += float64(b.Stock) * b.Price
	}
	stats.TotalAuthors = len(authors)

	for _, sale := range s.ws.Sales {
		stats.UnitsSold += sale.Quantity
		stats.TotalRevenue += sale.TotalAmount
	}

	return stats
}
