package store

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// SortKey selects one of the fixed comparators for list queries.
type SortKey string

// Sort keys. Name/Title and Organization/Author use collator comparison;
// Recent orders by DateAdded, newest first. Ties keep their prior relative
// order: both queries sort stably.
const (
	SortByName         SortKey = "name"         // contacts: last name
	SortByOrganization SortKey = "organization" // contacts
	SortByTitle        SortKey = "title"        // books
	SortByAuthor       SortKey = "author"       // books
	SortByRecent       SortKey = "recent"       // both: newest DateAdded first
)

// ContactFilter is a conjunction of predicates for QueryContacts. Zero
// values disable the corresponding predicate.
type ContactFilter struct {
	// Search matches case-insensitively as a substring of the first name,
	// last name, phone, email, or organization.
	Search string

	// CategoryID, when non-zero, requires an exact category match.
	CategoryID int64
}

// BookFilter is the book-family counterpart of ContactFilter.
type BookFilter struct {
	// Search matches case-insensitively as a substring of the title,
	// author, or ISBN.
	Search string

	// GenreID, when non-zero, requires an exact genre match.
	GenreID int64
}

// nameCollator compares strings the way list views expect names ordered:
// case-insensitively and locale-aware.
var nameCollator = collate.New(language.Und, collate.IgnoreCase)

// QueryContacts returns the contacts matching the filter, ordered by the
// sort key. The result is a fresh slice; the working set is never mutated.
func (s *Store) QueryContacts(filter ContactFilter, sort SortKey) []types.Contact {
	term := strings.ToLower(filter.Search)

	result := make([]types.Contact, 0, len(s.ws.Contacts))
	for _, c := range s.ws.Contacts {
		if term != "" && !matchesContact(c, term) {
			continue
		}
		if filter.CategoryID != 0 && c.CategoryID != filter.CategoryID {
			continue
		}
		result = append(result, c)
	}

	switch sort {
	case SortByName:
		slices.SortStableFunc(result, func(a, b types.Contact) int {
			return nameCollator.CompareString(a.LastName, b.LastName)
		})
	case SortByOrganization:
		slices.SortStableFunc(result, func(a, b types.Contact) int {
			return nameCollator.CompareString(a.Organization, b.Organization)
		})
	case SortByRecent:
		slices.SortStableFunc(result, func(a, b types.Contact) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	}
	return result
}

// QueryBooks returns the books matching the filter, ordered by the sort
// key. The result is a fresh slice; the working set is never mutated.
func (s *Store) QueryBooks(filter BookFilter, sort SortKey) []types.Book {
	term := strings.ToLower(filter.Search)

	result := make([]types.Book, 0, len(s.ws.Books))
	for _, b := range s.ws.Books {
		if term != "" && !matchesBook(b, term) {
			continue
		}
		if filter.GenreID != 0 && b.GenreID != filter.GenreID {
			continue
		}
		result = append(result, b)
	}

	switch sort {
	case SortByTitle:
		slices.SortStableFunc(result, func(a, b types.Book) int {
			return nameCollator.CompareString(a.Title, b.Title)
		})
	case SortByAuthor:
		slices.SortStableFunc(result, func(a, b types.Book) int {
			return nameCollator.CompareString(a.Author, b.Author)
		})
	case SortByRecent:
		slices.SortStableFunc(result, func(a, b types.Book) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	}
	return result
}

func matchesContact(c types.Contact, term string) bool {
	return strings.Contains(strings.ToLower(c.FirstName), term) ||
		strings.Contains(strings.ToLower(c.LastName), term) ||
		strings.Contains(c.Phone, term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.Organization), term)
}

func matchesBook(b types.Book, term string) bool {
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term) ||
		strings.Contains(strings.ToLower(b.ISBN), term)
}
