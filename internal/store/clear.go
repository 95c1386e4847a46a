package store

import "github.com/mesh-intelligence/shopkeep/pkg/types"

// ClearAll resets the working set: all records and the activity log are
// dropped and the standard category and genre sets are restored. The reset
// is flushed immediately.
func (s *Store) ClearAll() error {
	defaults := types.DefaultDataset()

	s.ws.Contacts = []types.Contact{}
	s.ws.Categories = defaults.Categories
	s.ws.Books = []types.Book{}
	s.ws.Genres = defaults.Genres
	s.ws.Sales = []types.Sale{}
	s.ws.Activities = []types.Activity{}

	return s.flush()
}
