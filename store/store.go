package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"techfeed/models"
)

// Order selects the listing sort.
type Order string

const (
	OrderLatest   Order = "latest"
	OrderTrending Order = "trending"
)

// DefaultPageSize is the listing page size when none is given.
const DefaultPageSize = 24

// MaxQueryLen caps the free-text search parameter.
const MaxQueryLen = 100

// ListParams are the filter/sort/page inputs of a listing request.
type ListParams struct {
	Site  string // one of the site keys, or "all"
	Order Order
	Page  int
	Limit int
	Query string // case-insensitive title substring, trimmed

	// ContentFilter scopes the listing to titles matching any of the
	// keywords. Empty means no tenant scoping.
	ContentFilter []string
}

// Store runs article queries against the relational table.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Upsert inserts the article, replacing engagement counts and timestamps
// when the id or url already exists. The url is the stable identity: a
// re-ingested url arriving under a new id replaces the old row rather
// than failing the unique constraint.
func (s *Store) Upsert(a *models.Article) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("url = ? AND id <> ?", a.URL, a.ID).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(a).Error
	})
	if err != nil {
		return fmt.Errorf("store: upsert article %s: %w", a.ID, err)
	}
	return nil
}

// List returns one page of articles for the given filters.
func (s *Store) List(p ListParams) (*models.PaginatedArticles, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}

	filtered := func() *gorm.DB {
		query := s.db.Model(&models.Article{})
		if p.Site != "" && p.Site != "all" {
			query = query.Where("site = ?", p.Site)
		}
		if q := strings.TrimSpace(p.Query); q != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
		if len(p.ContentFilter) > 0 {
			query = query.Where(contentFilterClause(s.db, p.ContentFilter))
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("store: count articles: %w", err)
	}

	query := filtered()
	switch p.Order {
	case OrderTrending:
		query = query.Order("(likes + bookmarks) DESC").Order("published_at DESC")
	default:
		query = query.Order("published_at DESC")
	}

	var articles []models.Article
	offset := (p.Page - 1) * p.Limit
	if err := query.Offset(offset).Limit(p.Limit).Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("store: list articles: %w", err)
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return &models.PaginatedArticles{
		Articles:    articles,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: p.Page,
		HasNext:     p.Page < totalPages,
		HasPrevious: p.Page > 1,
	}, nil
}

func contentFilterClause(db *gorm.DB, keywords []string) *gorm.DB {
	scope := db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(keywords[0])+"%")
	for _, kw := range keywords[1:] {
		scope = scope.Or("LOWER(title) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}
	return scope
}

// Stats summarizes the stored corpus for the stats endpoint.
type Stats struct {
	Total   int64            `json:"total"`
	BySite  map[string]int64 `json:"by_site"`
	Authors int64            `json:"authors"`
}

// Stats counts articles overall, per site, and by distinct author.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{BySite: make(map[string]int64)}

	if err := s.db.Model(&models.Article{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("store: count total: %w", err)
	}
	for _, site := range models.Sites {
		var n int64
		if err := s.db.Model(&models.Article{}).Where("site = ?", site).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("store: count site %s: %w", site, err)
		}
		if n > 0 {
			stats.BySite[string(site)] = n
		}
	}
	if err := s.db.Model(&models.Article{}).Distinct("author").Count(&stats.Authors).Error; err != nil {
		return nil, fmt.Errorf("store: count authors: %w", err)
	}

	return stats, nil
}
