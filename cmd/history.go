package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear the date-range calculation history",
	Long: `Lists the last 10 date-range calculations, newest first.

Only useful with history.backend=redis; the memory backend starts empty on
every invocation.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the history")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	svc, closeRepo := newService(cfg, log)
	defer func() { _ = closeRepo() }()

	out := cmd.OutOrStdout()
	if historyClear {
		if err := svc.ClearHistory(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(out, "history cleared")
		return nil
	}

	entries, err := svc.ListHistory(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "no calculations yet")
		return nil
	}

	f := newFormatter(cfg)
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s - %s  %4d days  %s @ %g %s %s  interest %s  total %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			f.Date(e.FromDate),
			f.Date(e.ToDate),
			e.Days,
			f.Money(e.Principal),
			e.Rate,
			e.Basis,
			e.RateUnit,
			f.Money(e.InterestAmount),
			f.Money(e.TotalAmount),
		)
	}
	return nil
}
