package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func cashbackCmd() *cobra.Command {
	now := time.Now()

	cmd := &cobra.Command{
		Use:   "cashback",
		Short: "Estimate cashback per category for a month",
		RunE:  runCashback,
	}

	cmd.Flags().IntP("year", "y", now.Year(), "year to analyze")
	cmd.Flags().IntP("month", "m", int(now.Month()), "month to analyze (1-12)")
	cmd.Flags().String("from", "", "first statement day to load, YYYY-MM-DD (default first day of the month)")
	cmd.Flags().String("to", "", "last statement day to load, YYYY-MM-DD (default last day of the month)")
	cmd.Flags().Bool("save", false, "also write "+cashbackFile+" to the output directory")

	return cmd
}

func runCashback(cmd *cobra.Command, _ []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	save, _ := cmd.Flags().GetBool("save")

	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}

	rng, err := rangeFlags(from, to, monthRange(year, time.Month(month)))
	if err != nil {
		return err
	}

	svc, err := newDigestService(cmd.Context(), appCfg)
	if err != nil {
		return err
	}

	txns, _ := svc.LoadTransactions(cmd.Context(), rng)
	cashback := svc.CashbackAnalysis(txns, year, time.Month(month))

	if err := printJSON(cmd.OutOrStdout(), cashback); err != nil {
		return err
	}

	if save {
		if _, err := newReportWriter(appCfg).SaveAs(cashbackFile, cashback); err != nil {
			return err
		}
	}
	return nil
}
