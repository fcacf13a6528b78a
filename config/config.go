package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// FeedSource is one RSS/Atom feed ingested alongside the scraped
// platforms, mapped onto a site key (note, docs).
type FeedSource struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Site    string `yaml:"site"`
	Enabled bool   `yaml:"enabled"`
}

// Config holds all application configuration.
type Config struct {
	Addr           string       `yaml:"addr"`
	BaseDomain     string       `yaml:"base_domain"`
	DBPath         string       `yaml:"db_path"`
	PageSize       int          `yaml:"page_size"`
	ScrapeSchedule string       `yaml:"scrape_schedule"` // cron expression
	ReportSchedule string       `yaml:"report_schedule"` // cron expression
	Timezone       string       `yaml:"timezone"`
	Feeds          []FeedSource `yaml:"feeds"`
	LogLevel       string       `yaml:"log_level"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		Addr:           ":8090",
		BaseDomain:     "ai-feed.dev",
		DBPath:         "./techfeed.db",
		PageSize:       24,
		ScrapeSchedule: "0 * * * *",   // hourly
		ReportSchedule: "0 6 * * MON", // Monday morning JST
		Timezone:       "Asia/Tokyo",
		LogLevel:       "info",
	}
}

// Load reads a YAML config file over the defaults. When required is
// false a missing file is not an error: the defaults stand. A path the
// operator chose explicitly must exist, so callers pass required=true
// for it; TECHFEED_CONFIG overrides the path and is always required.
// TECHFEED_DB overrides the database location.
func Load(path string, required bool) (Config, error) {
	if envPath := os.Getenv("TECHFEED_CONFIG"); envPath != "" {
		path = envPath
		required = true
	}

	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err) && !required:
			// Implicit default path, nothing to layer over the defaults.
		default:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if envDB := os.Getenv("TECHFEED_DB"); envDB != "" {
		cfg.DBPath = envDB
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	for _, f := range c.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed: name is required")
		}
		u, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("feed %q: invalid url: %w", f.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed %q: url scheme must be http or https, got %q", f.Name, u.Scheme)
		}
		if f.Site != "note" && f.Site != "docs" {
			return fmt.Errorf("feed %q: site must be note or docs, got %q", f.Name, f.Site)
		}
	}
	return nil
}

// EnabledFeeds returns the feeds to ingest.
func (c *Config) EnabledFeeds() []FeedSource {
	var out []FeedSource
	for _, f := range c.Feeds {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}
