package store

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// LogSale records a sale of quantity copies of the given book, decrementing
// its stock. Fails with ErrNotFound for an unknown book, ErrValidation for a
// non-positive quantity, and ErrInsufficientStock when quantity exceeds the
// stock on hand; stock is unchanged on every failure path. Sales are
// append-only and are never edited or deleted.
func (s *Store) LogSale(bookID int64, quantity int) (types.Sale, error) {
	i := indexByID(s.ws.Books, func(b types.Book) int64 { return b.ID }, bookID)
	if i < 0 {
		return types.Sale{}, types.ErrNotFound
	}
	if quantity <= 0 {
		return types.Sale{}, fmt.Errorf("%w: quantity must be positive", types.ErrValidation)
	}

	book := &s.ws.Books[i]
	if quantity > book.Stock {
		return types.Sale{}, fmt.Errorf("%w: %d requested, %d available",
			types.ErrInsufficientStock, quantity, book.Stock)
	}

	now := s.now()
	sale := types.Sale{
		ID: mintID(now, func(id int64) bool {
			return indexByID(s.ws.Sales, saleID, id) >= 0
		}),
		BookID:       book.ID,
		BookTitle:    book.Title,
		Quantity:     quantity,
		PricePerItem: book.Price,
		TotalAmount:  float64(quantity) * book.Price,
		Date:         now,
	}

	book.Stock -= quantity
	s.ws.Sales = append(s.ws.Sales, sale)

	s.logActivity(fmt.Sprintf("Sold %d× %s", quantity, book.Title), types.IconSale)
	if err := s.flush(); err != nil {
		return types.Sale{}, err
	}
	return sale, nil
}

// Sales returns a copy of the sales ledger in recorded order.
func (s *Store) Sales() []types.Sale {
	return slices.Clone(s.ws.Sales)
}

func saleID(sl types.Sale) int64 { return sl.ID }
