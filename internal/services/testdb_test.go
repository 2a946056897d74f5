package services

import (
	"testing"
	"time"

	"github.com/everafter-app/everafter-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Timeline{},
		&models.TimelineItem{},
		&models.TimelineOption{},
		&models.BlogComment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	weddingDate := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	user := &models.User{
		FullName:    "Test Couple",
		Email:       email,
		Password:    "not-a-real-hash",
		Provider:    "email",
		WeddingDate: &weddingDate,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
