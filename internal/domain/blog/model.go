package blog

import "time"

// BlogPost carries a title and body in all four site languages. Content
// fields hold raw HTML written by the admin and are stored unescaped.
type BlogPost struct {
	ID        string `gorm:"primaryKey" json:"id"`
	TitleTR   string `gorm:"column:title_tr;not null" json:"title_tr"`
	TitleEN   string `gorm:"column:title_en;not null" json:"title_en"`
	TitleDE   string `gorm:"column:title_de;not null" json:"title_de"`
	TitleRU   string `gorm:"column:title_ru;not null" json:"title_ru"`
	ContentTR string `gorm:"column:content_tr;not null" json:"content_tr"`
	ContentEN string `gorm:"column:content_en;not null" json:"content_en"`
	ContentDE string `gorm:"column:content_de;not null" json:"content_de"`
	ContentRU string `gorm:"column:content_ru;not null" json:"content_ru"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
	// No column default here: gorm drops zero-value fields that carry a
	// default tag from the INSERT, so an explicit false would be lost.
	// Callers set the publish state; the API layer defaults it to true.
	Published bool `gorm:"not null" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
