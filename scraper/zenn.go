package scraper

import (
	"context"
	"fmt"
	"time"

	"techfeed/models"
)

const zennAPI = "https://zenn.dev/api/articles?order=latest&count=48"

// ZennSource reads Zenn's public article listing API.
type ZennSource struct {
	url string
}

func NewZennSource() *ZennSource {
	return &ZennSource{url: zennAPI}
}

func (z *ZennSource) Name() string { return "zenn" }

type zennResponse struct {
	Articles []zennArticle `json:"articles"`
}

type zennArticle struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Path            string    `json:"path"`
	LikedCount      int       `json:"liked_count"`
	BookmarkedCount int       `json:"bookmarked_count"`
	PublishedAt     time.Time `json:"published_at"`
	User            struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	} `json:"user"`
}

func (z *ZennSource) Fetch(ctx context.Context) ([]models.Article, error) {
	var resp zennResponse
	if err := getJSON(ctx, z.url, &resp); err != nil {
		return nil, err
	}
	return mapZennArticles(resp.Articles), nil
}

func mapZennArticles(in []zennArticle) []models.Article {
	articles := make([]models.Article, 0, len(in))
	for _, a := range in {
		if a.Title == "" || a.Path == "" {
			continue
		}
		author := a.User.Name
		if author == "" {
			author = a.User.Username
		}
		articles = append(articles, models.Article{
			ID:          fmt.Sprintf("zenn-%d", a.ID),
			Title:       a.Title,
			URL:         "https://zenn.dev" + a.Path,
			Author:      author,
			PublishedAt: a.PublishedAt,
			Site:        models.SiteZenn,
			Likes:       a.LikedCount,
			Bookmarks:   a.BookmarkedCount,
		})
	}
	return articles
}
