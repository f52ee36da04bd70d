package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tirasundara/statement-digest/internal/domain"
)

// runCategoryLimit is how many categories get a spending report
const runCategoryLimit = 3

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build every digest for a statement period and save the results",
		Long: `Load the statement for a period and build the home page digest, the
cashback analysis for the month the period ends in, and spending reports for
the first three categories. Every result is printed and written to the
output directory.`,
		RunE: runAll,
	}

	cmd.Flags().String("from", "", "first statement day, YYYY-MM-DD")
	cmd.Flags().String("to", "", "last statement day, YYYY-MM-DD")
	cmd.Flags().String("at", "", "home page timestamp as YYYY-MM-DD HH:MM:SS (default the last day at 12:00:00)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runAll(cmd *cobra.Command, _ []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	at, _ := cmd.Flags().GetString("at")

	rng, err := domain.ParseDateRange(from, to)
	if err != nil {
		return err
	}
	if at == "" {
		at = rng.End.Format(domain.DateLayout) + " 12:00:00"
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	svc, err := newDigestService(ctx, appCfg)
	if err != nil {
		return err
	}
	writer := newReportWriter(appCfg)

	txns, stats := svc.LoadTransactions(ctx, rng)
	if len(txns) == 0 {
		fmt.Fprintln(out, "No transactions to analyze")
		return nil
	}
	logger.Info("statement period loaded", "range", rng.String(), "transactions", len(txns), "dropped", stats.Dropped())

	page := svc.HomePage(ctx, at)
	cashback := svc.CashbackAnalysis(txns, rng.End.Year(), rng.End.Month())

	section(out, "HOME PAGE")
	if err := printJSON(out, page); err != nil {
		return err
	}

	section(out, "CASHBACK BY CATEGORY")
	if err := printJSON(out, cashback); err != nil {
		return err
	}

	section(out, "CATEGORY REPORTS")
	categories := distinctCategories(txns)
	if len(categories) > runCategoryLimit {
		categories = categories[:runCategoryLimit]
	}

	for _, category := range categories {
		fmt.Fprintf(out, "\nCategory: %s\n", category)

		spending := svc.SpendingByCategory(txns, category, rng.End)
		if len(spending) == 0 {
			fmt.Fprintln(out, "No spending in the last three months")
			continue
		}

		fmt.Fprintf(out, "Spending in the last three months: %d transactions\n", len(spending))
		if err := printJSON(out, spending); err != nil {
			return err
		}
		if _, err := writer.Save(category, spending); err != nil {
			return err
		}
	}

	if _, err := writer.SaveAs(cashbackFile, cashback); err != nil {
		return err
	}
	if _, err := writer.SaveAs(homePageFile, page); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nResults saved to %s:\n- %s\n- %s\n- report_*.json\n", appCfg.OutputDir, cashbackFile, homePageFile)
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", 50))
}
