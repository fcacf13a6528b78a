package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"techfeed/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one ingestion cycle and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		ingestor := scraper.NewIngestor(st, scraper.DefaultSources(cfg)...)
		saved, err := ingestor.RunOnce(ctx)
		if err != nil {
			return err
		}
		slog.Info("scrape finished", "stored", saved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
