// Init command creates the configuration and data directories and the
// backing database so later commands start from a known-good layout.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the shopkeep configuration and data directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already created the config directory and the
		// default config.yaml; attaching creates the database.
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Initialized shopkeep in", dataDir)
		return nil
	},
}
