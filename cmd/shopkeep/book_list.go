// Book list command queries the inventory.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shopkeep/internal/store"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

var (
	bookListSearch string
	bookListGenre  int64
	bookListSort   string
)

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books",
	Long: `List queries the book inventory.

Use --search for a case-insensitive substring match over title, author,
and ISBN, --genre to filter by genre id, and --sort to pick the order
(title, author, recent).

Example:
  shopkeep book list
  shopkeep book list --search dune --sort author
  shopkeep book list --genre 1672532400020 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		s, err := e.openStore()
		if err != nil {
			return err
		}

		books := s.QueryBooks(store.BookFilter{
			Search:  bookListSearch,
			GenreID: bookListGenre,
		}, store.SortKey(bookListSort))

		if flagJSON {
			return printJSON(books)
		}
		printBookTable(s, books)
		return nil
	},
}

func init() {
	bookListCmd.Flags().StringVar(&bookListSearch, "search", "", "substring search over title, author, ISBN")
	bookListCmd.Flags().Int64Var(&bookListGenre, "genre", 0, "filter by genre id")
	bookListCmd.Flags().StringVar(&bookListSort, "sort", string(store.SortByTitle), "sort order (title, author, recent)")
}

func printBookTable(s *store.Store, books []types.Book) {
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGENRE\tPRICE\tSTOCK")
	fmt.Fprintln(w, "--\t-----\t------\t-----\t-----\t-----")
	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			b.ID, b.Title, b.Author, s.GenreName(b.GenreID), formatMoney(b.Price), b.Stock)
	}
	w.Flush()

	printTrimmed(sb.String())
	fmt.Printf("Total: %d book(s)\n", len(books))
}
