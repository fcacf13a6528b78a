package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"techfeed/models"
	"techfeed/week"
)

const hatenaHotentryURL = "https://b.hatena.ne.jp/hotentry/it"

// HatenaSource scrapes the Hatena Bookmark IT hotentry page. Hatena has
// no public JSON listing for this page, so it is parsed from markup.
type HatenaSource struct {
	url string
}

func NewHatenaSource() *HatenaSource {
	return &HatenaSource{url: hatenaHotentryURL}
}

func (h *HatenaSource) Name() string { return "hatena" }

func (h *HatenaSource) Fetch(ctx context.Context) ([]models.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("scraper: build request %s: %w", h.url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scraper: fetch %s: %w", h.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper: fetch %s: unexpected status %d", h.url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scraper: parse %s: %w", h.url, err)
	}

	return parseHatenaDocument(doc), nil
}

func parseHatenaDocument(doc *goquery.Document) []models.Article {
	var articles []models.Article

	doc.Find(".entrylist-contents").Each(func(i int, s *goquery.Selection) {
		a, ok := parseHatenaEntry(s)
		if ok {
			articles = append(articles, a)
		}
	})

	return articles
}

func parseHatenaEntry(s *goquery.Selection) (models.Article, bool) {
	titleLink := s.Find(".entrylist-contents-title a").First()
	title := strings.TrimSpace(titleLink.AttrOr("title", ""))
	if title == "" {
		title = strings.TrimSpace(titleLink.Text())
	}
	url := titleLink.AttrOr("href", "")
	if title == "" || url == "" {
		return models.Article{}, false
	}

	bookmarks := parseHatenaUsers(s.Find(".entrylist-contents-users span").First().Text())

	// The page carries no article author; the source domain stands in.
	author := strings.TrimSpace(s.Find(".entrylist-contents-domain a").First().Text())
	if author == "" {
		author = "unknown"
	}

	published := parseHatenaDate(strings.TrimSpace(s.Find(".entrylist-contents-date").First().Text()))

	return models.Article{
		ID:          urlID("hatena", url),
		Title:       title,
		URL:         url,
		Author:      author,
		PublishedAt: published,
		Site:        models.SiteHatena,
		Bookmarks:   bookmarks,
	}, true
}

// parseHatenaUsers extracts the count from a "123 users" label.
func parseHatenaUsers(text string) int {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// parseHatenaDate parses the "2006/01/02 15:04" entry date, falling back
// to the current time when absent. The page prints JST wall-clock times,
// so the timestamp is anchored there; reading it as UTC would push
// late-Sunday entries into the following week.
func parseHatenaDate(text string) time.Time {
	for _, layout := range []string{"2006/01/02 15:04", "2006/01/02"} {
		if t, err := time.ParseInLocation(layout, text, week.JST()); err == nil {
			return t
		}
	}
	return time.Now()
}
