package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// Report renders the plain-text summary report for the working set. The
// breakdown sections are sorted alphabetically so the output is stable.
func Report(ws *types.Dataset, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SHOPKEEP FULL REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	weekAgo := now.AddDate(0, 0, -7)
	recentContacts := 0
	for _, c := range ws.Contacts {
		if !c.DateAdded.Before(weekAgo) {
			recentContacts++
		}
	}

	fmt.Fprintf(&b, "SUMMARY\n")
	fmt.Fprintf(&b, "Total Contacts: %d\n", len(ws.Contacts))
	fmt.Fprintf(&b, "Added in Last 7 Days: %d\n", recentContacts)
	fmt.Fprintf(&b, "Total Books: %d\n", len(ws.Books))

	unitsSold := 0
	revenue := 0.0
	for _, s := range ws.Sales {
		unitsSold += s.Quantity
		revenue += s.TotalAmount
	}
	inventory := 0.0
	for _, bk := range ws.Books {
		inventory += float64(bk.Stock) * bk.Price
	}
	fmt.Fprintf(&b, "Units Sold: %d\n", unitsSold)
	fmt.Fprintf(&b, "Total Revenue: $%s\n", money(revenue))
	fmt.Fprintf(&b, "Inventory Value: $%s\n", money(inventory))

	names := categoryNames(ws.Categories)
	byCategory := map[string]int{}
	byState := map[string]int{}
	for _, c := range ws.Contacts {
		name := names[c.CategoryID]
		if name == "" {
			name = "Uncategorized"
		}
		byCategory[name]++
		if c.State != "" {
			byState[c.State]++
		}
	}

	b.WriteString("\nBY CATEGORY\n")
	writeBreakdown(&b, byCategory)

	if len(byState) > 0 {
		b.WriteString("\nBY STATE\n")
		writeBreakdown(&b, byState)
	}

	genreNames := make(map[int64]string, len(ws.Genres))
	for _, g := range ws.Genres {
		genreNames[g.ID] = g.Name
	}
	byGenre := map[string]int{}
	for _, bk := range ws.Books {
		name := genreNames[bk.GenreID]
		if name == "" {
			name = "Uncategorized"
		}
		byGenre[name]++
	}
	if len(ws.Books) > 0 {
		b.WriteString("\nBY GENRE\n")
		writeBreakdown(&b, byGenre)
	}

	return b.String()
}

func writeBreakdown(b *strings.Builder, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s: %d\n", k, counts[k])
	}
}
