// Logout command ends the current session.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.sess.End(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}
