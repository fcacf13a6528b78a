package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"techfeed/models"
)

// Source fetches article metadata from one external platform.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Article, error)
}

const userAgent = "techfeed/1.0 (+https://github.com/techfeed)"

var httpClient = &http.Client{Timeout: 15 * time.Second}

func getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("scraper: build request %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scraper: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scraper: fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("scraper: decode %s: %w", url, err)
	}
	return nil
}

// urlID derives a stable platform-prefixed id from an article URL, for
// platforms that expose no native id.
func urlID(prefix, url string) string {
	h := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%s-%x", prefix, h[:8])
}
