package database

import (
	"path/filepath"
	"testing"

	"counter_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestSeedSampleSurvey(t *testing.T) {
	db := setupTestDB(t)

	if err := SeedSampleSurvey(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var questions, answers int64
	db.Model(&model.Question{}).Count(&questions)
	db.Model(&model.Answer{}).Count(&answers)
	if questions != 5 {
		t.Fatalf("expected 5 questions, got %d", questions)
	}
	if answers != 20 {
		t.Fatalf("expected 20 answers, got %d", answers)
	}

	var first model.Question
	if err := db.Order("`order` asc").First(&first).Error; err != nil {
		t.Fatalf("load first question failed: %v", err)
	}
	if first.Text != "What is your favorite programming language?" {
		t.Fatalf("unexpected first question: %q", first.Text)
	}
}

func TestSeedSampleSurveyIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := SeedSampleSurvey(db); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := SeedSampleSurvey(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var questions int64
	db.Model(&model.Question{}).Count(&questions)
	if questions != 5 {
		t.Fatalf("seed is not idempotent: %d questions", questions)
	}
}
