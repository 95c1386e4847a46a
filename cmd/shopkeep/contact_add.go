// Contact add command creates a contact in the logged-in user's dataset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

var (
	contactAddFirst    string
	contactAddLast     string
	contactAddPhone    string
	contactAddEmail    string
	contactAddOrg      string
	contactAddCategory int64
	contactAddAddress  string
	contactAddCity     string
	contactAddState    string
	contactAddNotes    string
)

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
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

		created, err := s.CreateContact(types.Contact{
			FirstName:    contactAddFirst,
			LastName:     contactAddLast,
			Phone:        contactAddPhone,
			Email:        contactAddEmail,
			Organization: contactAddOrg,
			CategoryID:   contactAddCategory,
			Address:      contactAddAddress,
			City:         contactAddCity,
			State:        contactAddState,
			Notes:        contactAddNotes,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("Added contact %s (id %d)\n", created.FullName(), created.ID)
		return nil
	},
}

func init() {
	contactAddCmd.Flags().StringVar(&contactAddFirst, "first-name", "", "first name (required)")
	contactAddCmd.Flags().StringVar(&contactAddLast, "last-name", "", "last name (required)")
	contactAddCmd.Flags().StringVar(&contactAddPhone, "phone", "", "phone number (required)")
	contactAddCmd.Flags().StringVar(&contactAddEmail, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&contactAddOrg, "organization", "", "organization")
	contactAddCmd.Flags().Int64Var(&contactAddCategory, "category", 0, "category id (0 = uncategorized)")
	contactAddCmd.Flags().StringVar(&contactAddAddress, "address", "", "street address")
	contactAddCmd.Flags().StringVar(&contactAddCity, "city", "", "city")
	contactAddCmd.Flags().StringVar(&contactAddState, "state", "", "state")
	contactAddCmd.Flags().StringVar(&contactAddNotes, "notes", "", "free-form notes")
	contactAddCmd.MarkFlagRequired("first-name")
	contactAddCmd.MarkFlagRequired("last-name")
	contactAddCmd.MarkFlagRequired("phone")
}
