package types

import (
	"strings"
	"time"
)

// Contact is a directory entry. FirstName, LastName, and Phone are required;
// everything else is optional. CategoryID references a Category by id, zero
// meaning uncategorized. DateAdded is fixed at creation and preserved across
// edits.
type Contact struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name" validate:"required"`
	LastName     string    `json:"last_name" validate:"required"`
	Phone        string    `json:"phone" validate:"required"`
	Email        string    `json:"email,omitempty"`
	Organization string    `json:"organization,omitempty"`
	CategoryID   int64     `json:"category_id,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	DateAdded    time.Time `json:"date_added"`
}

// FullName returns "First Last" with surrounding whitespace trimmed, so a
// contact missing one name part still renders cleanly.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
