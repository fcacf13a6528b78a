package store

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"techfeed/models"
	"techfeed/week"
)

// weeklyTopN caps how many ranked articles a site keeps per week.
const weeklyTopN = 10

// GenerateWeeklyReport snapshots the top articles per site for the week
// starting at weekStart (yyyy-MM-dd), ranked by engagement at generation
// time. Re-running for the same week replaces the previous snapshot.
func (s *Store) GenerateWeeklyReport(weekStart string) error {
	start, err := week.ParseDate(weekStart)
	if err != nil {
		return err
	}
	// Inclusive Monday through Sunday: [start, start+7d).
	end := start.AddDate(0, 0, 7)

	var articles []models.Article
	err = s.db.
		Where("published_at >= ? AND published_at < ?", start, end).
		Find(&articles).Error
	if err != nil {
		return fmt.Errorf("store: load week %s articles: %w", weekStart, err)
	}

	bySite := make(map[models.Site][]models.Article)
	for _, a := range articles {
		bySite[a.Site] = append(bySite[a.Site], a)
	}

	var rows []models.WeeklyArticle
	now := time.Now()
	for site, group := range bySite {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Engagement() != group[j].Engagement() {
				return group[i].Engagement() > group[j].Engagement()
			}
			return group[i].PublishedAt.After(group[j].PublishedAt)
		})
		if len(group) > weeklyTopN {
			group = group[:weeklyTopN]
		}
		for i, a := range group {
			rows = append(rows, models.WeeklyArticle{
				ArticleID: a.ID,
				WeekStart: weekStart,
				Site:      site,
				Rank:      i + 1,
				Likes:     a.Likes,
				Bookmarks: a.Bookmarks,
				CreatedAt: now,
			})
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_start = ?", weekStart).Delete(&models.WeeklyArticle{}).Error; err != nil {
			return fmt.Errorf("store: clear weekly report %s: %w", weekStart, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("store: save weekly report %s: %w", weekStart, err)
		}
		return nil
	})
}

// WeeklyReport returns the snapshot rows for the week starting at
// weekStart, ordered by site then rank, with articles preloaded.
func (s *Store) WeeklyReport(weekStart string) ([]models.WeeklyArticle, error) {
	var rows []models.WeeklyArticle
	err := s.db.
		Preload("Article").
		Where("week_start = ?", weekStart).
		Order("site ASC").
		Order("rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("store: load weekly report %s: %w", weekStart, err)
	}
	return rows, nil
}
