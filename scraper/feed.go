package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"techfeed/config"
	"techfeed/models"
)

// FeedSource ingests an RSS/Atom feed configured in yaml, covering the
// platforms (note, docs) that publish feeds instead of scrapeable
// listings. Feeds carry no engagement counts; those stay zero.
type FeedSource struct {
	cfg    config.FeedSource
	parser *gofeed.Parser
}

func NewFeedSource(cfg config.FeedSource) *FeedSource {
	return &FeedSource{cfg: cfg, parser: gofeed.NewParser()}
}

func (f *FeedSource) Name() string { return f.cfg.Name }

func (f *FeedSource) Fetch(ctx context.Context) ([]models.Article, error) {
	feed, err := f.parser.ParseURLWithContext(f.cfg.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("scraper: fetch feed %s: %w", f.cfg.Name, err)
	}

	site := models.Site(f.cfg.Site)
	articles := make([]models.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		published := time.Now()
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		author := ""
		if item.Author != nil {
			author = item.Author.Name
		}
		if author == "" {
			author = feed.Title
		}
		articles = append(articles, models.Article{
			ID:          urlID(f.cfg.Site, item.Link),
			Title:       item.Title,
			URL:         item.Link,
			Author:      author,
			PublishedAt: published,
			Site:        site,
		})
	}
	return articles, nil
}
