package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"techfeed/config"
	"techfeed/store"
)

// Ingestor runs one scrape cycle across every configured source and
// upserts the results. A failing source is logged and skipped; it never
// aborts the cycle for the others.
type Ingestor struct {
	store   *store.Store
	sources []Source
}

func NewIngestor(st *store.Store, sources ...Source) *Ingestor {
	return &Ingestor{store: st, sources: sources}
}

// DefaultSources builds the platform sources plus any enabled feeds.
func DefaultSources(cfg config.Config) []Source {
	sources := []Source{
		NewZennSource(),
		NewQiitaSource(),
		NewHatenaSource(),
	}
	for _, f := range cfg.EnabledFeeds() {
		sources = append(sources, NewFeedSource(f))
	}
	return sources
}

// RunOnce fetches every source and upserts what it got. It returns the
// number of stored articles and the first fetch error seen, if all
// sources failed.
func (in *Ingestor) RunOnce(ctx context.Context) (int, error) {
	start := time.Now()
	saved := 0
	failed := 0
	var firstErr error

	for _, src := range in.sources {
		articles, err := src.Fetch(ctx)
		if err != nil {
			slog.Error("source fetch failed", "source", src.Name(), "error", err)
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		stored := 0
		for i := range articles {
			if err := in.store.Upsert(&articles[i]); err != nil {
				slog.Error("upsert failed", "source", src.Name(), "id", articles[i].ID, "error", err)
				continue
			}
			stored++
		}
		saved += stored
		slog.Info("source ingested", "source", src.Name(), "fetched", len(articles), "stored", stored)
	}

	slog.Info("scrape cycle done", "stored", saved, "elapsed", time.Since(start).Round(time.Millisecond))

	if failed == len(in.sources) && firstErr != nil {
		return saved, fmt.Errorf("scraper: all %d sources failed: %w", failed, firstErr)
	}
	return saved, nil
}
