// Book delete command removes a book. Sales already logged against the
// book keep their recorded title and amounts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bookDeleteYes bool

var bookDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYes(bookDeleteYes, "deleting a book"); err != nil {
			return err
		}

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

		if err := s.DeleteBook(id); err != nil {
			return err
		}

		fmt.Printf("Deleted book %d\n", id)
		return nil
	},
}

func init() {
	bookDeleteCmd.Flags().BoolVar(&bookDeleteYes, "yes", false, "confirm deletion")
}
