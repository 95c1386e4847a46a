// Category command family: add, delete, list.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	categoryAddDescription string
	categoryDeleteYes      bool
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage contact categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a contact category",
	Args:  cobra.ExactArgs(1),
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

		created, err := s.CreateCategory(args[0], categoryAddDescription)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("Added category %s (id %d)\n", created.Name, created.ID)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact category",
	Long: `Delete removes a category. A category that is still referenced by
contacts cannot be deleted; reassign or delete the contacts first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYes(categoryDeleteYes, "deleting a category"); err != nil {
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

		if err := s.DeleteCategory(id); err != nil {
			return err
		}

		fmt.Printf("Deleted category %d\n", id)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact categories",
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

		categories := s.Categories()
		if flagJSON {
			return printJSON(categories)
		}

		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		fmt.Fprintln(w, "--\t----\t-----------")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
		}
		w.Flush()

		printTrimmed(sb.String())
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddDescription, "description", "", "category description")
	categoryDeleteCmd.Flags().BoolVar(&categoryDeleteYes, "yes", false, "confirm deletion")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	categoryCmd.AddCommand(categoryListCmd)
}
