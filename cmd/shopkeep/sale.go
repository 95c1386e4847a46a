// Sale command family: log, list.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var saleLogQuantity int

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Log and list sales",
}

var saleLogCmd = &cobra.Command{
	Use:   "log <book-id>",
	Short: "Log a sale and decrement stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseID(args[0])
		if err != nil {
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

		sale, err := s.LogSale(bookID, saleLogQuantity)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(sale)
		}
		fmt.Printf("Sold %d x %s for %s\n", sale.Quantity, sale.BookTitle, formatMoney(sale.TotalAmount))
		return nil
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged sales",
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

		sales := s.Sales()
		if flagJSON {
			return printJSON(sales)
		}

		if len(sales) == 0 {
			fmt.Println("No sales logged.")
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tBOOK\tQTY\tUNIT\tTOTAL")
		fmt.Fprintln(w, "----\t----\t---\t----\t-----")
		for _, sale := range sales {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				sale.Date.Format("2006-01-02"), sale.BookTitle, sale.Quantity,
				formatMoney(sale.PricePerItem), formatMoney(sale.TotalAmount))
		}
		w.Flush()

		printTrimmed(sb.String())
		fmt.Printf("Total: %d sale(s)\n", len(sales))
		return nil
	},
}

func init() {
	saleLogCmd.Flags().IntVar(&saleLogQuantity, "quantity", 1, "units sold")

	saleCmd.AddCommand(saleLogCmd)
	saleCmd.AddCommand(saleListCmd)
}
