package store

import (
	"lawfirm-backend/internal/domain/admin"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminUsers wraps the admin_users table. Passwords are hashed here so
// no plaintext ever reaches the database layer below.
type AdminUsers struct {
	db *gorm.DB
}

func NewAdminUsers(db *gorm.DB) *AdminUsers {
	return &AdminUsers{db: db}
}

func (r *AdminUsers) Create(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := admin.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	return r.db.Create(&user).Error
}

// Authenticate returns the user when the hash verifies and the account
// is active; any other combination returns nil.
func (r *AdminUsers) Authenticate(username, password string) (*admin.AdminUser, error) {
	var user admin.AdminUser
	err := r.db.First(&user, "username = ? AND is_active = ?", username, true).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return &user, nil
}

func (r *AdminUsers) GetByID(id string) (*admin.AdminUser, error) {
	var user admin.AdminUser
	err := r.db.First(&user, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ActiveCount backs the one-time setup guard.
func (r *AdminUsers) ActiveCount() (int64, error) {
	var count int64
	err := r.db.Model(&admin.AdminUser{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *AdminUsers) UpdatePassword(id, newPassword string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	res := r.db.Model(&admin.AdminUser{}).
		Where("id = ?", id).
		Update("password_hash", string(hash))
	return res.RowsAffected > 0, res.Error
}
