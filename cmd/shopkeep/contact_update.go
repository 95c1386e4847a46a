// Contact update command edits an existing contact. Only the flags that
// were set change; the rest of the record is kept as-is.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	contactUpdateFirst    string
	contactUpdateLast     string
	contactUpdatePhone    string
	contactUpdateEmail    string
	contactUpdateOrg      string
	contactUpdateCategory int64
	contactUpdateAddress  string
	contactUpdateCity     string
	contactUpdateState    string
	contactUpdateNotes    string
)

var contactUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing contact",
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

		contact, err := s.GetContact(id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("first-name") {
			contact.FirstName = contactUpdateFirst
		}
		if flags.Changed("last-name") {
			contact.LastName = contactUpdateLast
		}
		if flags.Changed("phone") {
			contact.Phone = contactUpdatePhone
		}
		if flags.Changed("email") {
			contact.Email = contactUpdateEmail
		}
		if flags.Changed("organization") {
			contact.Organization = contactUpdateOrg
		}
		if flags.Changed("category") {
			contact.CategoryID = contactUpdateCategory
		}
		if flags.Changed("address") {
			contact.Address = contactUpdateAddress
		}
		if flags.Changed("city") {
			contact.City = contactUpdateCity
		}
		if flags.Changed("state") {
			contact.State = contactUpdateState
		}
		if flags.Changed("notes") {
			contact.Notes = contactUpdateNotes
		}

		updated, err := s.UpdateContact(id, contact)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(updated)
		}
		fmt.Printf("Updated contact %s\n", updated.FullName())
		return nil
	},
}

func init() {
	contactUpdateCmd.Flags().StringVar(&contactUpdateFirst, "first-name", "", "first name")
	contactUpdateCmd.Flags().StringVar(&contactUpdateLast, "last-name", "", "last name")
	contactUpdateCmd.Flags().StringVar(&contactUpdatePhone, "phone", "", "phone number")
	contactUpdateCmd.Flags().StringVar(&contactUpdateEmail, "email", "", "email address")
	contactUpdateCmd.Flags().StringVar(&contactUpdateOrg, "organization", "", "organization")
	contactUpdateCmd.Flags().Int64Var(&contactUpdateCategory, "category", 0, "category id (0 = uncategorized)")
	contactUpdateCmd.Flags().StringVar(&contactUpdateAddress, "address", "", "street address")
	contactUpdateCmd.Flags().StringVar(&contactUpdateCity, "city", "", "city")
	contactUpdateCmd.Flags().StringVar(&contactUpdateState, "state", "", "state")
	contactUpdateCmd.Flags().StringVar(&contactUpdateNotes, "notes", "", "free-form notes")
}
