// Contact delete command removes a contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contactDeleteYes bool

var contactDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYes(contactDeleteYes, "deleting a contact"); err != nil {
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

		if err := s.DeleteContact(id); err != nil {
			return err
		}

		fmt.Printf("Deleted contact %d\n", id)
		return nil
	},
}

func init() {
	contactDeleteCmd.Flags().BoolVar(&contactDeleteYes, "yes", false, "confirm deletion")
}
