// Export command renders one record family as CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shopkeep/internal/export"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export {contacts|books|sales}",
	Short:     "Export a record family as CSV",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"contacts", "books", "sales"},
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

		ws := s.WorkingSet()
		var csv string
		switch args[0] {
		case "contacts":
			csv = export.ContactsCSV(ws.Contacts, ws.Categories)
		case "books":
			csv = export.BooksCSV(ws.Books, ws.Genres)
		case "sales":
			csv = export.SalesCSV(ws.Sales)
		default:
			return fmt.Errorf("%w: unknown export family %q", types.ErrValidation, args[0])
		}

		if err := s.RecordActivity("Exported "+args[0]+" to CSV", types.IconExport); err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Print(csv)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(csv), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Println("Wrote", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
}
