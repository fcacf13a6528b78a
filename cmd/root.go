package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"techfeed/config"
	"techfeed/database"
	"techfeed/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "techfeed",
	Short: "Multi-tenant technical-article curation service",
	Long: `techfeed ingests article metadata from Zenn, Qiita, Hatena Bookmark
and configured feeds, stores it in sqlite, and serves filtered listings
plus a weekly digest with per-subdomain tenant branding.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// openStore loads config and opens the article store, the shared setup
// of every subcommand.
func openStore() (config.Config, *store.Store, error) {
	cfg, err := config.Load(configPath, rootCmd.PersistentFlags().Changed("config"))
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}
	setupLogger(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, store.New(db), nil
}
