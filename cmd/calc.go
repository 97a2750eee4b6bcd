package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"interest-calculator/domain"
	"interest-calculator/format"
	"interest-calculator/service"
)

var (
	calcPrincipal string
	calcRate      string
	calcUnit      string
	calcBasis     string
	calcFrom      string
	calcTo        string
	calcMonths    string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run one calculation and print the result",
}

var calcDateRangeCmd = &cobra.Command{
	Use:   "date-range",
	Short: "Simple interest between two dates",
	Example: `  interest-calculator calc date-range --principal 1000 --rate 5 --from 2024-01-01 --to 2024-12-31
  interest-calculator calc date-range --principal 1000 --rate 1 --unit monthly --basis percentage --from 2024-01-01 --to 2024-03-01`,
	RunE: runCalcDateRange,
}

var calcMonthlyCmd = &cobra.Command{
	Use:     "monthly",
	Short:   "Interest per 100 per month",
	Example: `  interest-calculator calc monthly --principal 1000 --rate 2 --months 3`,
	RunE:    runCalcMonthly,
}

var calcOneTimeCmd = &cobra.Command{
	Use:     "one-time",
	Short:   "One-time deduction per 10,000",
	Example: `  interest-calculator calc one-time --principal 10000 --rate 500`,
	RunE:    runCalcOneTime,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.AddCommand(calcDateRangeCmd, calcMonthlyCmd, calcOneTimeCmd)

	for _, c := range []*cobra.Command{calcDateRangeCmd, calcMonthlyCmd, calcOneTimeCmd} {
		c.Flags().StringVarP(&calcPrincipal, "principal", "p", "", "principal amount")
		c.Flags().StringVarP(&calcRate, "rate", "r", "", "interest rate")
	}
	calcDateRangeCmd.Flags().StringVar(&calcUnit, "unit", string(domain.RateAnnual), "rate unit: annual or monthly")
	calcDateRangeCmd.Flags().StringVar(&calcBasis, "basis", string(domain.BasisPerHundred), "interest basis: per100 or percentage")
	calcDateRangeCmd.Flags().StringVar(&calcFrom, "from", "", "from date (YYYY-MM-DD)")
	calcDateRangeCmd.Flags().StringVar(&calcTo, "to", "", "to date (YYYY-MM-DD)")
	calcMonthlyCmd.Flags().StringVarP(&calcMonths, "months", "m", "", "time in months")
}

func runCalcDateRange(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	input, err := service.ParseDateRange(service.DateRangeFields{
		Principal: calcPrincipal,
		Rate:      calcRate,
		RateUnit:  calcUnit,
		Basis:     calcBasis,
		FromDate:  calcFrom,
		ToDate:    calcTo,
	})
	if err != nil {
		return err
	}

	svc, closeRepo := newService(cfg, log)
	defer func() { _ = closeRepo() }()

	result, days, err := svc.CalculateDateRange(cmd.Context(), input)
	if err != nil {
		return err
	}

	f := newFormatter(cfg)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Period:           %s - %s (%d days)\n", f.Date(input.FromDate), f.Date(input.ToDate), days)
	printResult(out, f, result, "Total Amount")
	return nil
}

func runCalcMonthly(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	principal, err := service.ParseAmount("principal", calcPrincipal)
	if err != nil {
		return err
	}
	rate, err := service.ParseAmount("rate", calcRate)
	if err != nil {
		return err
	}
	months, err := service.ParseAmount("months", calcMonths)
	if err != nil {
		return err
	}

	result, err := service.MonthlyInterest(principal, rate, months)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), newFormatter(cfg), result, "Total Amount")
	return nil
}

func runCalcOneTime(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	principal, err := service.ParseAmount("principal", calcPrincipal)
	if err != nil {
		return err
	}
	rate, err := service.ParseAmount("rate", calcRate)
	if err != nil {
		return err
	}

	result, err := service.OneTimeDeduction(principal, rate)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), newFormatter(cfg), result, "After Deduction")
	return nil
}

func printResult(w io.Writer, f *format.Formatter, r domain.CalculationResult, totalLabel string) {
	fmt.Fprintf(w, "Principal Amount: %s\n", f.Money(r.Principal))
	fmt.Fprintf(w, "Interest Amount:  %s\n", f.Money(r.InterestAmount))
	fmt.Fprintf(w, "%-17s %s\n", totalLabel+":", f.Money(r.TotalAmount))
}
