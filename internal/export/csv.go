// Package export serializes the working set for download surfaces: CSV per
// record family, a plain-text report, and the JSON backup document. The
// matching deserializer parses and shape-checks uploaded backups.
package export

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// CSV column headers, fixed order per record family.
var (
	contactHeaders = []string{"First Name", "Last Name", "Phone", "Email", "Organization", "Category", "Address", "City", "State", "Notes"}
	bookHeaders    = []string{"Title", "Author", "ISBN", "Genre", "Price", "Stock", "Date Added"}
	saleHeaders    = []string{"Date", "Book", "Quantity", "Price Per Item", "Total Amount"}
)

// ContactsCSV renders the contacts, one row per contact. The category
// column carries the resolved category name, empty when unresolved. Every
// field is double-quote-wrapped with internal quotes doubled.
func ContactsCSV(contacts []types.Contact, categories []types.Category) string {
	names := categoryNames(categories)

	var b strings.Builder
	b.WriteString(strings.Join(contactHeaders, ",") + "\n")
	for _, c := range contacts {
		writeRow(&b,
			c.FirstName, c.LastName, c.Phone, c.Email, c.Organization,
			names[c.CategoryID], c.Address, c.City, c.State, c.Notes)
	}
	return b.String()
}

// BooksCSV renders the books with resolved genre names.
func BooksCSV(books []types.Book, genres []types.Genre) string {
	names := make(map[int64]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}

	var b strings.Builder
	b.WriteString(strings.Join(bookHeaders, ",") + "\n")
	for _, bk := range books {
		writeRow(&b,
			bk.Title, bk.Author, bk.ISBN, names[bk.GenreID],
			money(bk.Price), strconv.Itoa(bk.Stock),
			bk.DateAdded.Format("2006-01-02"))
	}
	return b.String()
}

// SalesCSV renders the sales ledger.
func SalesCSV(sales []types.Sale) string {
	var b strings.Builder
	b.WriteString(strings.Join(saleHeaders, ",") + "\n")
	for _, s := range sales {
		writeRow(&b,
			s.Date.Format("2006-01-02"), s.BookTitle,
			strconv.Itoa(s.Quantity), money(s.PricePerItem), money(s.TotalAmount))
	}
	return b.String()
}

// writeRow appends one CSV row, quoting every field. Quoting is minimal:
// internal double quotes are doubled; embedded commas and newlines are
// carried as-is inside the quotes.
func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func categoryNames(categories []types.Category) map[int64]string {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
