package scraper

import (
	"context"
	"time"

	"techfeed/models"
)

const qiitaAPI = "https://qiita.com/api/v2/items?per_page=50"

// QiitaSource reads Qiita's public items API.
type QiitaSource struct {
	url string
}

func NewQiitaSource() *QiitaSource {
	return &QiitaSource{url: qiitaAPI}
}

func (q *QiitaSource) Name() string { return "qiita" }

type qiitaItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	LikesCount  int       `json:"likes_count"`
	StocksCount int       `json:"stocks_count"`
	User        struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
}

func (q *QiitaSource) Fetch(ctx context.Context) ([]models.Article, error) {
	var items []qiitaItem
	if err := getJSON(ctx, q.url, &items); err != nil {
		return nil, err
	}
	return mapQiitaItems(items), nil
}

func mapQiitaItems(items []qiitaItem) []models.Article {
	articles := make([]models.Article, 0, len(items))
	for _, it := range items {
		if it.ID == "" || it.Title == "" || it.URL == "" {
			continue
		}
		author := it.User.Name
		if author == "" {
			author = it.User.ID
		}
		// Qiita "stocks" are its bookmark equivalent.
		articles = append(articles, models.Article{
			ID:          "qiita-" + it.ID,
			Title:       it.Title,
			URL:         it.URL,
			Author:      author,
			PublishedAt: it.CreatedAt,
			Site:        models.SiteQiita,
			Likes:       it.LikesCount,
			Bookmarks:   it.StocksCount,
		})
	}
	return articles
}
