package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"techfeed/models"
)

// Open connects to the sqlite database at path and migrates the article
// tables. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.Article{}, &models.WeeklyArticle{}); err != nil {
		return nil, fmt.Errorf("database: migrate: %w", err)
	}

	return db, nil
}
