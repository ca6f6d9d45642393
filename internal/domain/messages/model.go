package messages

import "time"

// ContactMessage is a public contact-form submission. Only is_read ever
// changes after creation.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Subject   string    `gorm:"not null" json:"subject"`
	LegalArea string    `gorm:"not null" json:"legal_area"`
	Urgency   string    `gorm:"not null" json:"urgency"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
}
