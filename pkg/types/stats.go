package types

// DashboardStats is the full dashboard aggregate. It is recomputed from the
// working set on every call; nothing here is maintained incrementally.
type DashboardStats struct {
	TotalContacts      int `json:"total_contacts"`
	TotalOrganizations int `json:"total_organizations"`
	TotalCategories    int `json:"total_categories"`
	NewContactsMonth   int `json:"new_contacts_this_month"`
	Clients            int `json:"clients"`
	Suppliers          int `json:"suppliers"`
	Partners           int `json:"partners"`

	TotalBooks     int     `json:"total_books"`
	TotalAuthors   int     `json:"total_authors"`
	TotalGenres    int     `json:"total_genres"`
	NewBooksMonth  int     `json:"new_books_this_month"`
	UnitsSold      int     `json:"units_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
	InventoryValue float64 `json:"inventory_value"`
}
