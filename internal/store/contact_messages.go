package store

import (
	"lawfirm-backend/internal/domain/messages"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessages wraps the contact_messages table.
type ContactMessages struct {
	db *gorm.DB
}

func NewContactMessages(db *gorm.DB) *ContactMessages {
	return &ContactMessages{db: db}
}

// Create assigns a fresh id and persists the message unread.
func (r *ContactMessages) Create(m *messages.ContactMessage) error {
	m.ID = uuid.NewString()
	m.IsRead = false
	return r.db.Create(m).Error
}

// GetAll returns every message, newest first. created_at has second
// resolution, so the id breaks ties to keep the order stable.
func (r *ContactMessages) GetAll() ([]messages.ContactMessage, error) {
	rows := make([]messages.ContactMessage, 0)
	if err := r.db.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ContactMessages) GetByID(id string) (*messages.ContactMessage, error) {
	var m messages.ContactMessage
	err := r.db.First(&m, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkAsRead flips is_read. The bool reports whether a row matched.
func (r *ContactMessages) MarkAsRead(id string) (bool, error) {
	res := r.db.Model(&messages.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *ContactMessages) Delete(id string) (bool, error) {
	res := r.db.Delete(&messages.ContactMessage{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
