// Book command family: add, update, delete, list.
package main

import (
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage book inventory",
}

func init() {
	bookCmd.AddCommand(bookAddCmd)
	bookCmd.AddCommand(bookUpdateCmd)
	bookCmd.AddCommand(bookDeleteCmd)
	bookCmd.AddCommand(bookListCmd)
}
