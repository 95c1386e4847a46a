// Login command authenticates a user and starts a session.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		user, err := e.rec.Authenticate(loginUsername, loginPassword)
		if err != nil {
			return err
		}

		sess, err := e.sess.Start(user.ID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{"user_id": sess.UserID, "token": sess.Token})
		}
		fmt.Printf("Logged in as %s\n", user.Username)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "account username (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
