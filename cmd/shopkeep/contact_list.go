// Contact list command queries the contact directory.
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
	contactListSearch   string
	contactListCategory int64
	contactListSort     string
)

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List queries the contact directory.

Use --search for a case-insensitive substring match over name, phone,
email, and organization, --category to filter by category id, and --sort
to pick the order (name, organization, recent).

Example:
  shopkeep contact list
  shopkeep contact list --search doe --sort organization
  shopkeep contact list --category 1672532400010 --json`,
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

		contacts := s.QueryContacts(store.ContactFilter{
			Search:     contactListSearch,
			CategoryID: contactListCategory,
		}, store.SortKey(contactListSort))

		if flagJSON {
			return printJSON(contacts)
		}
		printContactTable(s, contacts)
		return nil
	},
}

func init() {
	contactListCmd.Flags().StringVar(&contactListSearch, "search", "", "substring search over name, phone, email, organization")
	contactListCmd.Flags().Int64Var(&contactListCategory, "category", 0, "filter by category id")
	contactListCmd.Flags().StringVar(&contactListSort, "sort", string(store.SortByName), "sort order (name, organization, recent)")
}

func printContactTable(s *store.Store, contacts []types.Contact) {
	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tPHONE\tORGANIZATION\tCATEGORY")
	fmt.Fprintln(w, "--\t----\t-----\t------------\t--------")
	for _, c := range contacts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName(), c.Phone, c.Organization, s.CategoryName(c.CategoryID))
	}
	w.Flush()

	printTrimmed(sb.String())
	fmt.Printf("Total: %d contact(s)\n", len(contacts))
}

// printTrimmed prints tabwriter output with trailing spaces removed from
// each line.
func printTrimmed(output string) {
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}
