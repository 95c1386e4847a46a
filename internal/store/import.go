package store

import (
	"fmt"

	"github.com/mesh-intelligence/shopkeep/internal/export"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// ImportSummary reports how many records an import added to each collection.
type ImportSummary struct {
	Contacts   int
	Categories int
	Books      int
	Genres     int
	Sales      int
}

// ImportBackup merges a parsed backup document into the working set.
// Imported records are re-minted (imported id plus the current timestamp,
// bumped on collision) so they never collide with existing ids; categories
// and genres are deduplicated by exact name, mapping onto the existing
// record instead of adding a duplicate. References follow the remapping:
// contacts point at the merged category, sales at the merged book.
func (s *Store) ImportBackup(raw []byte) (ImportSummary, error) {
	backup, err := export.ParseBackup(raw)
	if err != nil {
		return ImportSummary{}, err
	}

	nowMs := s.now().UnixMilli()
	var summary ImportSummary

	catMap := make(map[int64]int64, len(backup.Categories))
	for _, cat := range backup.Categories {
		if existing := s.findCategoryByName(cat.Name); existing != 0 {
			catMap[cat.ID] = existing
			continue
		}
		oldID := cat.ID
		cat.ID = remintID(cat.ID, nowMs, func(id int64) bool {
			return indexByID(s.ws.Categories, categoryID, id) >= 0
		})
		s.ws.Categories = append(s.ws.Categories, cat)
		catMap[oldID] = cat.ID
		summary.Categories++
	}

	genreMap := make(map[int64]int64, len(backup.Genres))
	for _, g := range backup.Genres {
		if existing := s.findGenreByName(g.Name); existing != 0 {
			genreMap[g.ID] = existing
			continue
		}
		oldID := g.ID
		g.ID = remintID(g.ID, nowMs, func(id int64) bool {
			return indexByID(s.ws.Genres, genreID, id) >= 0
		})
		s.ws.Genres = append(s.ws.Genres, g)
		genreMap[oldID] = g.ID
		summary.Genres++
	}

	for _, c := range backup.Contacts {
		c.ID = remintID(c.ID, nowMs, func(id int64) bool {
			return indexByID(s.ws.Contacts, contactID, id) >= 0
		})
		if mapped, ok := catMap[c.CategoryID]; ok {
			c.CategoryID = mapped
		}
		s.ws.Contacts = append(s.ws.Contacts, c)
		summary.Contacts++
	}

	bookMap := make(map[int64]int64, len(backup.Books))
	for _, b := range backup.Books {
		oldID := b.ID
		b.ID = remintID(b.ID, nowMs, func(id int64) bool {
			return indexByID(s.ws.Books, bookID, id) >= 0
		})
		if mapped, ok := genreMap[b.GenreID]; ok {
			b.GenreID = mapped
		}
		s.ws.Books = append(s.ws.Books, b)
		bookMap[oldID] = b.ID
		summary.Books++
	}

	for _, sale := range backup.Sales {
		sale.ID = remintID(sale.ID, nowMs, func(id int64) bool {
			return indexByID(s.ws.Sales, saleID, id) >= 0
		})
		if mapped, ok := bookMap[sale.BookID]; ok {
			sale.BookID = mapped
		}
		s.ws.Sales = append(s.ws.Sales, sale)
		summary.Sales++
	}

	s.logActivity(
		fmt.Sprintf("Imported %d contacts and %d books", summary.Contacts, summary.Books),
		types.IconImport)
	if err := s.flush(); err != nil {
		return ImportSummary{}, err
	}
	return summary, nil
}

// remintID offsets an imported id by the import timestamp, then bumps until
// the id is unused in its collection.
func remintID(imported, nowMs int64, taken func(int64) bool) int64 {
	id := imported + nowMs
	for taken(id) {
		id++
	}
	return id
}

func (s *Store) findCategoryByName(name string) int64 {
	for _, c := range s.ws.Categories {
		if c.Name == name {
			return c.ID
		}
	}
	return 0
}

func (s *Store) findGenreByName(name string) int64 {
	for _, g := range s.ws.Genres {
		if g.Name == name {
			return g.ID
		}
	}
	return 0
}
