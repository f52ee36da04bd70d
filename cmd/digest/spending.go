package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tirasundara/statement-digest/internal/report"
)

func spendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spending",
		Short: "List a category's expenses over the last three months",
		RunE:  runSpending,
	}

	cmd.Flags().StringP("category", "c", "", "category to report on")
	cmd.Flags().String("date", "", "report date, YYYY-MM-DD (default today)")
	cmd.Flags().String("from", "", "first statement day to load, YYYY-MM-DD (default start of the window)")
	cmd.Flags().String("to", "", "last statement day to load, YYYY-MM-DD (default the report date)")
	cmd.Flags().Bool("save", false, "also write a timestamped report file to the output directory")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runSpending(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")
	date, _ := cmd.Flags().GetString("date")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	save, _ := cmd.Flags().GetBool("save")

	asOf, err := parseDay(date, time.Now())
	if err != nil {
		return err
	}

	rng, err := rangeFlags(from, to, report.SpendingWindow(asOf))
	if err != nil {
		return err
	}

	svc, err := newDigestService(cmd.Context(), appCfg)
	if err != nil {
		return err
	}

	txns, _ := svc.LoadTransactions(cmd.Context(), rng)
	spending := svc.SpendingByCategory(txns, category, asOf)

	if err := printJSON(cmd.OutOrStdout(), spending); err != nil {
		return err
	}

	if save {
		path, err := newReportWriter(appCfg).Save(category, spending)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", path)
	}
	return nil
}
