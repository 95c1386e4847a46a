// Clear command resets the dataset to the default categories and genres.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all records and restore the default categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYes(clearYes, "clearing all data"); err != nil {
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

		if err := s.ClearAll(); err != nil {
			return err
		}

		fmt.Println("All records cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm clear")
}
