// Whoami command prints the logged-in user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		sess, err := e.sess.Require()
		if err != nil {
			return err
		}

		user, err := e.rec.FindUser(sess.UserID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"id":         user.ID,
				"username":   user.Username,
				"started_at": sess.StartedAt,
			})
		}
		fmt.Println(user.Username)
		return nil
	},
}
