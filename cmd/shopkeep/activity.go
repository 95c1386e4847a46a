// Activity command prints the recent activity feed, newest first.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the recent activity feed",
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

		activities := s.Activities()
		if flagJSON {
			return printJSON(activities)
		}

		if len(activities) == 0 {
			fmt.Println("No recent activity.")
			return nil
		}
		for _, a := range activities {
			fmt.Printf("%s %s  %s\n", a.Time.Format("2006-01-02 15:04"), a.Icon, a.Text)
		}
		return nil
	},
}
