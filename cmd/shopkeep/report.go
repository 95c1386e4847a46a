// Report command renders the plain-text summary report.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shopkeep/internal/export"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full text report",
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

		text := export.Report(s.WorkingSet(), time.Now())

		if err := s.RecordActivity("Generated full report", types.IconReport); err != nil {
			return err
		}

		if reportOut == "" {
			fmt.Print(text)
			return nil
		}
		if err := os.WriteFile(reportOut, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println("Wrote", reportOut)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output file (default: stdout)")
}
