package types

import "time"

// Book is an inventory entry. Title and Author are required. Stock is the
// number of copies on hand and is decremented by logged sales. GenreID
// references a Genre by id, zero meaning uncategorized.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	ISBN      string    `json:"isbn,omitempty"`
	GenreID   int64     `json:"genre_id,omitempty"`
	Price     float64   `json:"price" validate:"gte=0"`
	Stock     int       `json:"stock" validate:"gte=0"`
	DateAdded time.Time `json:"date_added"`
}
