package store

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// CreateBook validates and appends a new book. The id and DateAdded are
// assigned here; values supplied by the caller are ignored.
func (s *Store) CreateBook(b types.Book) (types.Book, error) {
	if err := s.checkStruct(b); err != nil {
		return types.Book{}, err
	}

	now := s.now()
	b.ID = mintID(now, func(id int64) bool {
		return indexByID(s.ws.Books, bookID, id) >= 0
	})
	b.DateAdded = now

	s.ws.Books = append(s.ws.Books, b)
	s.logActivity(fmt.Sprintf("Added book %s", b.Title), types.IconBook)
	if err := s.flush(); err != nil {
		return types.Book{}, err
	}

	s.log.Debug("book created", zap.Int64("id", b.ID))
	return b, nil
}

// UpdateBook replaces the book with the given id in place, preserving its
// original DateAdded. Sales that copied the old title are left as recorded.
func (s *Store) UpdateBook(id int64, b types.Book) (types.Book, error) {
	i := indexByID(s.ws.Books, bookID, id)
	if i < 0 {
		return types.Book{}, types.ErrNotFound
	}
	if err := s.checkStruct(b); err != nil {
		return types.Book{}, err
	}

	b.ID = id
	b.DateAdded = s.ws.Books[i].DateAdded
	s.ws.Books[i] = b

	s.logActivity(fmt.Sprintf("Updated book %s", b.Title), types.IconEdit)
	if err := s.flush(); err != nil {
		return types.Book{}, err
	}
	return b, nil
}

// DeleteBook removes the book with the given id. Sales referencing the book
// are not cascaded; they keep their recorded BookID and title.
func (s *Store) DeleteBook(id int64) error {
	i := indexByID(s.ws.Books, bookID, id)
	if i < 0 {
		return types.ErrNotFound
	}

	title := s.ws.Books[i].Title
	s.ws.Books = slices.Delete(s.ws.Books, i, i+1)

	s.logActivity(fmt.Sprintf("Deleted book %s", title), types.IconDelete)
	return s.flush()
}

// GetBook returns the book with the given id.
func (s *Store) GetBook(id int64) (types.Book, error) {
	i := indexByID(s.ws.Books, bookID, id)
	if i < 0 {
		return types.Book{}, types.ErrNotFound
	}
	return s.ws.Books[i], nil
}

func bookID(b types.Book) int64 { return b.ID }
