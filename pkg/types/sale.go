package types

import "time"

// Sale records one sale of a book. Sales are append-only: they are created
// by the sale-logging operation and never edited or deleted. BookID is a
// weak reference: deleting the book leaves the sale in place. BookTitle is
// a copy taken at sale time, so it does not track later edits.
type Sale struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	BookTitle    string    `json:"book_title"`
	Quantity     int       `json:"quantity"`
	PricePerItem float64   `json:"price_per_item"`
	TotalAmount  float64   `json:"total_amount"`
	Date         time.Time `json:"date"`
}
