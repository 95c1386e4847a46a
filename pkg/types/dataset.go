package types

import (
	"slices"
	"time"
)

// Dataset is one user's full data: the record collections and the bounded
// recent-activity log. A Dataset loaded into the store's working set is a
// detached copy; changes reach durable storage only through an explicit
// flush back to the user's slot.
type Dataset struct {
	Contacts   []Contact  `json:"contacts"`
	Categories []Category `json:"categories"`
	Books      []Book     `json:"books"`
	Genres     []Genre    `json:"genres"`
	Sales      []Sale     `json:"sales"`
	Activities []Activity `json:"activities"`
}

// NewDataset returns an empty dataset with all collections allocated.
func NewDataset() *Dataset {
	return &Dataset{
		Contacts:   []Contact{},
		Categories: []Category{},
		Books:      []Book{},
		Genres:     []Genre{},
		Sales:      []Sale{},
		Activities: []Activity{},
	}
}

// Clone returns a deep copy of the dataset. Slices of value structs copy
// cleanly with slices.Clone; no entity holds reference types.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		Contacts:   slices.Clone(d.Contacts),
		Categories: slices.Clone(d.Categories),
		Books:      slices.Clone(d.Books),
		Genres:     slices.Clone(d.Genres),
		Sales:      slices.Clone(d.Sales),
		Activities: slices.Clone(d.Activities),
	}
}

// DefaultDataset returns a deep copy of the starter dataset seeded into a
// new user's slot at registration: a few example contacts and the standard
// category and genre sets.
func DefaultDataset() *Dataset {
	return defaultDataset.Clone()
}

var defaultDataset = Dataset{
	Contacts: []Contact{
		{
			ID: 1672532400001, FirstName: "Elena", LastName: "Rodriguez",
			Phone: "202-555-0181", Email: "elena.r@innovate.com",
			Organization: "Innovate Inc.", CategoryID: 1,
			Address: "123 Tech Ave", City: "Metropolis", State: "NY",
			Notes:     "Primary contact for Project Alpha.",
			DateAdded: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: 1672532400002, FirstName: "Marcus", LastName: "Chen",
			Phone: "202-555-0199", Email: "marcus.chen@apex.co",
			Organization: "Apex Supplies", CategoryID: 2,
			Address: "456 Industrial Rd", City: "Gotham", State: "NJ",
			Notes:     "Our main supplier for raw materials.",
			DateAdded: time.Date(2023, 2, 15, 11, 30, 0, 0, time.UTC),
		},
		{
			ID: 1672532400003, FirstName: "Sophia", LastName: "Williams",
			Phone: "312-555-0142", Email: "sophia.w@quantum.net",
			Organization: "Quantum Solutions", CategoryID: 3,
			Address: "789 Logic Lane", City: "Star City", State: "CA",
			Notes:     "Partner for the upcoming Q3 initiative.",
			DateAdded: time.Date(2023, 3, 10, 14, 0, 0, 0, time.UTC),
		},
	},
	Categories: []Category{
		{ID: 1, Name: "Client", Description: "Regular customers"},
		{ID: 2, Name: "Supplier", Description: "Product/service suppliers"},
		{ID: 3, Name: "Partner", Description: "Business partners"},
		{ID: 4, Name: "Prospect", Description: "Potential clients"},
	},
	Books: []Book{},
	Genres: []Genre{
		{ID: 1, Name: "Fiction", Description: "Novels and short stories"},
		{ID: 2, Name: "Non-Fiction", Description: "Essays, biography, reference"},
		{ID: 3, Name: "Science", Description: "Popular science and textbooks"},
		{ID: 4, Name: "History", Description: "Historical works"},
	},
	Sales:      []Sale{},
	Activities: []Activity{},
}
