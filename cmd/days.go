package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"interest-calculator/service"
)

var (
	daysFrom string
	daysTo   string
)

var daysCmd = &cobra.Command{
	Use:     "days",
	Short:   "Count the days between two dates",
	Example: `  interest-calculator days --from 2024-01-01 --to 2024-12-31`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		from, err := service.ParseDate("from", daysFrom)
		if err != nil {
			return err
		}
		to, err := service.ParseDate("to", daysTo)
		if err != nil {
			return err
		}
		days, ok := service.DeriveDayCount(from, to)
		if !ok {
			return &service.ValidationError{Field: "from/to", Reason: "are both required"}
		}
		fmt.Fprintln(cmd.OutOrStdout(), days)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
	daysCmd.Flags().StringVar(&daysFrom, "from", "", "from date (YYYY-MM-DD)")
	daysCmd.Flags().StringVar(&daysTo, "to", "", "to date (YYYY-MM-DD)")
}
