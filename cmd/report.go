package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"techfeed/week"
)

var reportWeek string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the weekly engagement snapshot",
	Long: `Generate the ranked weekly report for one week. Engagement counts are
frozen at generation time; re-running for the same week replaces the
previous snapshot. Defaults to the current week.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}

		start := reportWeek
		if start == "" {
			start = week.Current().Start()
		} else {
			if !week.IsValidDateString(start) {
				return fmt.Errorf("invalid week %q: expected yyyy-MM-dd", start)
			}
			parsed, err := week.ParseDate(start)
			if err != nil {
				return err
			}
			start = week.FormatDate(week.StartOfWeek(parsed))
		}

		if err := st.GenerateWeeklyReport(start); err != nil {
			return err
		}
		slog.Info("weekly report generated", "week", start)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportWeek, "week", "", "week start date (yyyy-MM-dd), defaults to current week")
	rootCmd.AddCommand(reportCmd)
}
