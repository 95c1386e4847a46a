// Backup command writes the full dataset as a JSON document.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shopkeep/internal/export"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a JSON backup of all records",
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

		now := time.Now()
		raw, err := export.MarshalBackup(s.WorkingSet(), now)
		if err != nil {
			return err
		}

		if err := s.RecordActivity("Created data backup", types.IconBackup); err != nil {
			return err
		}

		out := backupOut
		if out == "" {
			out = export.BackupFilename(now)
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Println("Wrote", out)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupOut, "out", "", "output file (default: shopkeep_backup_<ms>.json)")
}
