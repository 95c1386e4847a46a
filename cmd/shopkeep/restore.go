// Restore command merges a JSON backup into the current dataset. Imported
// records get fresh ids; categories and genres dedupe by name.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var restoreYes bool

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Merge a JSON backup into the current dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYes(restoreYes, "restoring a backup"); err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
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

		summary, err := s.ImportBackup(raw)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(summary)
		}
		fmt.Printf("Imported %d contacts, %d categories, %d books, %d genres, %d sales\n",
			summary.Contacts, summary.Categories, summary.Books, summary.Genres, summary.Sales)
		return nil
	},
}

func init() {
	restoreCmd.Flags().BoolVar(&restoreYes, "yes", false, "confirm restore")
}
