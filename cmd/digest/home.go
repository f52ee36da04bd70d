package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tirasundara/statement-digest/internal/domain"
)

func homeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Build the home page digest",
		Long: `Build the home page digest for a moment in time: a greeting, card totals
and the top expenses from the first of the month up to that moment, and the
currency rates and stock prices listed in the user settings.`,
		RunE: runHome,
	}

	cmd.Flags().String("at", "", "timestamp as YYYY-MM-DD HH:MM:SS (default now)")
	cmd.Flags().Bool("save", false, "also write "+homePageFile+" to the output directory")

	return cmd
}

func runHome(cmd *cobra.Command, _ []string) error {
	at, _ := cmd.Flags().GetString("at")
	save, _ := cmd.Flags().GetBool("save")

	if at == "" {
		at = time.Now().Format(domain.TimestampLayout)
	}

	svc, err := newDigestService(cmd.Context(), appCfg)
	if err != nil {
		return err
	}

	page := svc.HomePage(cmd.Context(), at)

	if err := printJSON(cmd.OutOrStdout(), page); err != nil {
		return err
	}

	if save {
		if _, err := newReportWriter(appCfg).SaveAs(homePageFile, page); err != nil {
			return err
		}
	}
	return nil
}
