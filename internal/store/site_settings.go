package store

import (
	"time"

	"lawfirm-backend/internal/domain/settings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings wraps the singleton site_settings row.
type SiteSettings struct {
	db *gorm.DB
}

func NewSiteSettings(db *gorm.DB) *SiteSettings {
	return &SiteSettings{db: db}
}

// Get returns the settings row, creating an empty one on first call.
func (r *SiteSettings) Get() (*settings.SiteSettings, error) {
	var row settings.SiteSettings
	err := r.db.First(&row).Error
	if err == nil {
		return &row, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	row = settings.SiteSettings{ID: uuid.NewString()}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the set fields of the patch to the singleton row,
// leaving omitted fields untouched.
func (r *SiteSettings) Update(patch settings.Patch) (bool, error) {
	current, err := r.Get()
	if err != nil {
		return false, err
	}

	columns := patch.Columns()
	if len(columns) == 0 {
		return true, nil
	}
	columns["updated_at"] = time.Now()

	res := r.db.Model(&settings.SiteSettings{}).
		Where("id = ?", current.ID).
		Updates(columns)
	return res.RowsAffected > 0, res.Error
}
