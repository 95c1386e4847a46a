// Register command creates a user account and seeds its starter dataset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerUsername string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		user, err := e.rec.RegisterUser(registerUsername, registerPassword)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{"id": user.ID, "username": user.Username})
		}
		fmt.Printf("Registered %s (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "account username (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (required)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
}
