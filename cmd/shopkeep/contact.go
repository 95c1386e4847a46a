// Contact command family: add, update, delete, list.
package main

import (
	"github.com/spf13/cobra"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

func init() {
	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactUpdateCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactListCmd)
}
