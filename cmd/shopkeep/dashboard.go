// Dashboard command prints the recomputed dashboard statistics.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show dashboard statistics",
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

		stats := s.Dashboard()
		if flagJSON {
			return printJSON(stats)
		}

		fmt.Println("CONTACTS")
		fmt.Printf("  Total: %d\n", stats.TotalContacts)
		fmt.Printf("  Organizations: %d\n", stats.TotalOrganizations)
		fmt.Printf("  Categories: %d\n", stats.TotalCategories)
		fmt.Printf("  New this month: %d\n", stats.NewContactsMonth)
		fmt.Printf("  Clients: %d  Suppliers: %d  Partners: %d\n",
			stats.Clients, stats.Suppliers, stats.Partners)
		fmt.Println("BOOKS")
		fmt.Printf("  Total: %d\n", stats.TotalBooks)
		fmt.Printf("  Authors: %d\n", stats.TotalAuthors)
		fmt.Printf("  Genres: %d\n", stats.TotalGenres)
		fmt.Printf("  New this month: %d\n", stats.NewBooksMonth)
		fmt.Printf("  Units sold: %d\n", stats.UnitsSold)
		fmt.Printf("  Revenue: %s\n", formatMoney(stats.TotalRevenue))
		fmt.Printf("  Inventory value: %s\n", formatMoney(stats.InventoryValue))
		return nil
	},
}
