package models

import "time"

// Site identifies the platform an article was collected from.
type Site string

const (
	SiteHatena Site = "hatena"
	SiteQiita  Site = "qiita"
	SiteZenn   Site = "zenn"
	SiteNote   Site = "note"
	SiteDocs   Site = "docs"
)

// Sites lists every valid site key.
var Sites = []Site{SiteHatena, SiteQiita, SiteZenn, SiteNote, SiteDocs}

// ValidSite reports whether s is one of the enumerated site keys.
func ValidSite(s string) bool {
	for _, site := range Sites {
		if string(site) == s {
			return true
		}
	}
	return false
}

// Article is one scraped article. ID is platform-prefixed
// ("zenn-<slug>", "qiita-<item id>", ...) and URL is unique;
// re-ingesting the same article overwrites engagement counts.
type Article struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:text"`
	URL         string    `json:"url" gorm:"uniqueIndex"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`
	Site        Site      `json:"site" gorm:"index"`
	Likes       int       `json:"likes" gorm:"not null;default:0"`
	Bookmarks   int       `json:"bookmarks" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Engagement is the trending score: likes plus bookmarks.
func (a Article) Engagement() int {
	return a.Likes + a.Bookmarks
}

// WeeklyArticle is an article's entry in a generated weekly report.
// Likes and Bookmarks are frozen at report-generation time so historical
// reports stay stable while the live counters keep moving.
type WeeklyArticle struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	ArticleID string    `json:"article_id" gorm:"index"`
	WeekStart string    `json:"week_start" gorm:"index:idx_week_site_rank,unique,priority:1"`
	Site      Site      `json:"site" gorm:"index:idx_week_site_rank,unique,priority:2"`
	Rank      int       `json:"rank" gorm:"index:idx_week_site_rank,unique,priority:3"`
	Likes     int       `json:"likes"`
	Bookmarks int       `json:"bookmarks"`
	CreatedAt time.Time `json:"created_at"`

	Article *Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID"`
}

// PaginatedArticles is one page of a filtered listing.
type PaginatedArticles struct {
	Articles    []Article `json:"articles"`
	TotalCount  int64     `json:"total_count"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
	HasNext     bool      `json:"has_next"`
	HasPrevious bool      `json:"has_previous"`
}
