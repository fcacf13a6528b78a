package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"techfeed/handlers"
	"techfeed/scraper"
	"techfeed/tenant"
	"techfeed/week"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and the ingestion scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore()
		if err != nil {
			return err
		}

		sched, err := scraper.NewScheduler(cfg.Timezone)
		if err != nil {
			return err
		}

		ingestor := scraper.NewIngestor(st, scraper.DefaultSources(cfg)...)
		err = sched.Add(cfg.ScrapeSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if _, err := ingestor.RunOnce(ctx); err != nil {
				slog.Error("scheduled scrape failed", "error", err)
			}
		})
		if err != nil {
			return err
		}

		err = sched.Add(cfg.ReportSchedule, func() {
			// Snapshot the week that just ended.
			lastWeek := week.StartOfWeek(time.Now().AddDate(0, 0, -7))
			start := week.FormatDate(lastWeek)
			if err := st.GenerateWeeklyReport(start); err != nil {
				slog.Error("weekly report generation failed", "week", start, "error", err)
			} else {
				slog.Info("weekly report generated", "week", start)
			}
		})
		if err != nil {
			return err
		}

		sched.Start()
		defer sched.Stop()

		gin.SetMode(gin.ReleaseMode)
		registry := tenant.DefaultRegistry(cfg.BaseDomain)
		router := handlers.New(st, registry, cfg.PageSize).Router()

		slog.Info("starting server", "addr", cfg.Addr, "base_domain", cfg.BaseDomain)
		return router.Run(cfg.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
