package store

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// CreateCategory validates and appends a new contact category.
func (s *Store) CreateCategory(name, description string) (types.Category, error) {
	cat := types.Category{Name: name, Description: description}
	if err := s.checkStruct(cat); err != nil {
		return types.Category{}, err
	}

	cat.ID = mintID(s.now(), func(id int64) bool {
		return indexByID(s.ws.Categories, categoryID, id) >= 0
	})
	s.ws.Categories = append(s.ws.Categories, cat)

	s.logActivity(fmt.Sprintf("Added category %s", cat.Name), types.IconCategory)
	if err := s.flush(); err != nil {
		return types.Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes the category with the given id. Deletion is
// blocked with an InUseError while any contact references the category.
func (s *Store) DeleteCategory(id int64) error {
	i := indexByID(s.ws.Categories, categoryID, id)
	if i < 0 {
		return types.ErrNotFound
	}

	count := 0
	for _, c := range s.ws.Contacts {
		if c.CategoryID == id {
			count++
		}
	}
	if count > 0 {
		return &types.InUseError{Kind: "category", Name: s.ws.Categories[i].Name, Count: count}
	}

	name := s.ws.Categories[i].Name
	s.ws.Categories = slices.Delete(s.ws.Categories, i, i+1)

	s.logActivity(fmt.Sprintf("Deleted category %s", name), types.IconDelete)
	return s.flush()
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []types.Category {
	return slices.Clone(s.ws.Categories)
}

// CategoryName resolves a category id to its name, empty when unknown.
func (s *Store) CategoryName(id int64) string {
	i := indexByID(s.ws.Categories, categoryID, id)
	if i < 0 {
		return ""
	}
	return s.ws.Categories[i].Name
}

// CreateGenre validates and appends a new book genre.
func (s *Store) CreateGenre(name, description string) (types.Genre, error) {
	g := types.Genre{Name: name, Description: description}
	if err := s.checkStruct(g); err != nil {
		return types.Genre{}, err
	}

	g.ID = mintID(s.now(), func(id int64) bool {
		return indexByID(s.ws.Genres, genreID, id) >= 0
	})
	s.ws.Genres = append(s.ws.Genres, g)

	s.logActivity(fmt.Sprintf("Added genre %s", g.Name), types.IconCategory)
	if err := s.flush(); err != nil {
		return types.Genre{}, err
	}
	return g, nil
}

// DeleteGenre removes the genre with the given id, blocked with an
// InUseError while any book references it.
func (s *Store) DeleteGenre(id int64) error {
	i := indexByID(s.ws.Genres, genreID, id)
	if i < 0 {
		return types.ErrNotFound
	}

	count := 0
	for _, b := range s.ws.Books {
		if b.GenreID == id {
			count++
		}
	}
	if count > 0 {
		return &types.InUseError{Kind: "genre", Name: s.ws.Genres[i].Name, Count: count}
	}

	name := s.ws.Genres[i].Name
	s.ws.Genres = slices.Delete(s.ws.Genres, i, i+1)

	s.logActivity(fmt.Sprintf("Deleted genre %s", name), types.IconDelete)
	return s.flush()
}

// Genres returns a copy of the genre collection.
func (s *Store) Genres() []types.Genre {
	return slices.Clone(s.ws.Genres)
}

// GenreName resolves a genre id to its name, empty when unknown.
func (s *Store) GenreName(id int64) string {
	i := indexByID(s.ws.Genres, genreID, id)
	if i < 0 {
		return ""
	}
	return s.ws.Genres[i].Name
}

func categoryID(c types.Category) int64 { return c.ID }
func genreID(g types.Genre) int64       { return g.ID }
