package store

import (
	"path/filepath"
	"testing"

	"lawfirm-backend/config"
	"lawfirm-backend/database"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Config{DBPath: filepath.Join(t.TempDir(), "lawfirm_test.db")}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}
