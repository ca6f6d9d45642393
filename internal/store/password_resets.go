package store

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"lawfirm-backend/internal/domain/admin"

	"gorm.io/gorm"
)

// PasswordResets wraps the password_resets table. The reset-consumption
// endpoint is not wired up; this exists to back the reset flow when it
// lands.
type PasswordResets struct {
	db *gorm.DB
}

func NewPasswordResets(db *gorm.DB) *PasswordResets {
	return &PasswordResets{db: db}
}

// Create inserts a fresh token for the admin and returns it.
func (r *PasswordResets) Create(adminID string, expiresAt time.Time) (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b[:])

	reset := admin.PasswordReset{
		AdminID:   adminID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := r.db.Create(&reset).Error; err != nil {
		return "", err
	}
	return token, nil
}

// GetByToken resolves a token only while it is unused and unexpired.
func (r *PasswordResets) GetByToken(token string) (*admin.PasswordReset, error) {
	var reset admin.PasswordReset
	err := r.db.First(&reset, "token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResets) MarkAsUsed(token string) (bool, error) {
	res := r.db.Model(&admin.PasswordReset{}).
		Where("token = ?", token).
		Update("used", true)
	return res.RowsAffected > 0, res.Error
}
