// Book add command creates a book in the inventory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

var (
	bookAddTitle  string
	bookAddAuthor string
	bookAddISBN   string
	bookAddGenre  int64
	bookAddPrice  float64
	bookAddStock  int
)

var bookAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new book",
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

		created, err := s.CreateBook(types.Book{
			Title:   bookAddTitle,
			Author:  bookAddAuthor,
			ISBN:    bookAddISBN,
			GenreID: bookAddGenre,
			Price:   bookAddPrice,
			Stock:   bookAddStock,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("Added book %s (id %d)\n", created.Title, created.ID)
		return nil
	},
}

func init() {
	bookAddCmd.Flags().StringVar(&bookAddTitle, "title", "", "book title (required)")
	bookAddCmd.Flags().StringVar(&bookAddAuthor, "author", "", "book author (required)")
	bookAddCmd.Flags().StringVar(&bookAddISBN, "isbn", "", "ISBN")
	bookAddCmd.Flags().Int64Var(&bookAddGenre, "genre", 0, "genre id (0 = uncategorized)")
	bookAddCmd.Flags().Float64Var(&bookAddPrice, "price", 0, "unit price")
	bookAddCmd.Flags().IntVar(&bookAddStock, "stock", 0, "units in stock")
	bookAddCmd.MarkFlagRequired("title")
	bookAddCmd.MarkFlagRequired("author")
}
