package store

import (
	"time"

	"lawfirm-backend/internal/domain/blog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPosts wraps the blog_posts table. Slug uniqueness is enforced by
// the unique index, not here; a duplicate surfaces as a create error.
type BlogPosts struct {
	db *gorm.DB
}

func NewBlogPosts(db *gorm.DB) *BlogPosts {
	return &BlogPosts{db: db}
}

func (r *BlogPosts) Create(p *blog.BlogPost) error {
	p.ID = uuid.NewString()
	return r.db.Create(p).Error
}

// GetAll returns posts newest first, optionally only published ones.
func (r *BlogPosts) GetAll(publishedOnly bool) ([]blog.BlogPost, error) {
	q := r.db.Order("created_at DESC, id")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	rows := make([]blog.BlogPost, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BlogPosts) GetByID(id string) (*blog.BlogPost, error) {
	return r.getOne("id = ?", id)
}

func (r *BlogPosts) GetBySlug(slug string) (*blog.BlogPost, error) {
	return r.getOne("slug = ?", slug)
}

func (r *BlogPosts) getOne(query string, arg string) (*blog.BlogPost, error) {
	var p blog.BlogPost
	err := r.db.First(&p, query, arg).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces every language field plus slug and published state.
// The bool reports whether a row matched.
func (r *BlogPosts) Update(id string, p *blog.BlogPost) (bool, error) {
	res := r.db.Model(&blog.BlogPost{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title_tr":   p.TitleTR,
			"title_en":   p.TitleEN,
			"title_de":   p.TitleDE,
			"title_ru":   p.TitleRU,
			"content_tr": p.ContentTR,
			"content_en": p.ContentEN,
			"content_de": p.ContentDE,
			"content_ru": p.ContentRU,
			"slug":       p.Slug,
			"published":  p.Published,
			"updated_at": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *BlogPosts) Delete(id string) (bool, error) {
	res := r.db.Delete(&blog.BlogPost{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
