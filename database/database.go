package database

import (
	"lawfirm-backend/config"
	"lawfirm-backend/internal/domain/admin"
	"lawfirm-backend/internal/domain/blog"
	"lawfirm-backend/internal/domain/messages"
	"lawfirm-backend/internal/domain/settings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Open connects to the sqlite file and creates any missing tables.
// A failure here is fatal for the caller; there is no retry.
func Open(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        cfg.DBPath,
	}, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&messages.ContactMessage{},
		&blog.BlogPost{},
		&admin.AdminUser{},
		&admin.PasswordReset{},
		&settings.SiteSettings{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
