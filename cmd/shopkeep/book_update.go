// Book update command edits an existing book. Only the flags that were set
// change; the rest of the record is kept as-is.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	bookUpdateTitle  string
	bookUpdateAuthor string
	bookUpdateISBN   string
	bookUpdateGenre  int64
	bookUpdatePrice  float64
	bookUpdateStock  int
)

var bookUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		s, err := e.openStore()
		if err != nil {
			return err
		}

		book, err := s.GetBook(id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			book.Title = bookUpdateTitle
		}
		if flags.Changed("author") {
			book.Author = bookUpdateAuthor
		}
		if flags.Changed("isbn") {
			book.ISBN = bookUpdateISBN
		}
		if flags.Changed("genre") {
			book.GenreID = bookUpdateGenre
		}
		if flags.Changed("price") {
			book.Price = bookUpdatePrice
		}
		if flags.Changed("stock") {
			book.Stock = bookUpdateStock
		}

		updated, err := s.UpdateBook(id, book)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(updated)
		}
		fmt.Printf("Updated book %s\n", updated.Title)
		return nil
	},
}

func init() {
	bookUpdateCmd.Flags().StringVar(&bookUpdateTitle, "title", "", "book title")
	bookUpdateCmd.Flags().StringVar(&bookUpdateAuthor, "author", "", "book author")
	bookUpdateCmd.Flags().StringVar(&bookUpdateISBN, "isbn", "", "ISBN")
	bookUpdateCmd.Flags().Int64Var(&bookUpdateGenre, "genre", 0, "genre id (0 = uncategorized)")
	bookUpdateCmd.Flags().Float64Var(&bookUpdatePrice, "price", 0, "unit price")
	bookUpdateCmd.Flags().IntVar(&bookUpdateStock, "stock", 0, "units in stock")
}
