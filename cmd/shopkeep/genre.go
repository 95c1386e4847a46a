// Genre command family: add, delete, list.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	genreAddDescription string
	genreDeleteYes      bool
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Manage book genres",
}

var genreAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a book genre",
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

		created, err := s.CreateGenre(args[0], genreAddDescription)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("Added genre %s (id %d)\n", created.Name, created.ID)
		return nil
	},
}

var genreDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book genre",
	Long: `Delete removes a genre. A genre that is still referenced by books
cannot be deleted; reassign or delete the books first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYes(genreDeleteYes, "deleting a genre"); err != nil {
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

		if err := s.DeleteGenre(id); err != nil {
			return err
		}

		fmt.Printf("Deleted genre %d\n", id)
		return nil
	},
}

var genreListCmd = &cobra.Command{
	Use:   "list",
	Short: "List book genres",
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

		genres := s.Genres()
		if flagJSON {
			return printJSON(genres)
		}

		if len(genres) == 0 {
			fmt.Println("No genres found.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		fmt.Fprintln(w, "--\t----\t-----------")
		for _, g := range genres {
			fmt.Fprintf(w, "%d\t%s\t%s\n", g.ID, g.Name, g.Description)
		}
		w.Flush()

		printTrimmed(sb.String())
		return nil
	},
}

func init() {
	genreAddCmd.Flags().StringVar(&genreAddDescription, "description", "", "genre description")
	genreDeleteCmd.Flags().BoolVar(&genreDeleteYes, "yes", false, "confirm deletion")

	genreCmd.AddCommand(genreAddCmd)
	genreCmd.AddCommand(genreDeleteCmd)
	genreCmd.AddCommand(genreListCmd)
}
