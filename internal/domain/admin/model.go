package admin

import "time"

// AdminUser is the single back-office account. The password hash never
// leaves the store: it is excluded from JSON output.
type AdminUser struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
}

// PasswordReset is a one-shot reset token for an admin account. A row is
// usable only while used=false and expires_at lies in the future.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   string    `gorm:"not null" json:"admin_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
}
