package blogapi

import (
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"lawfirm-backend/internal/api/respond"
	"lawfirm-backend/internal/app/http/middleware"
	"lawfirm-backend/internal/domain/blog"
	"lawfirm-backend/internal/session"
	"lawfirm-backend/internal/store"
	"lawfirm-backend/internal/validate"

	"github.com/gin-gonic/gin"
)

// uuidShape classifies the /blog/:idOrSlug segment: a v4-shaped value
// is an id lookup, anything else a slug lookup.
var uuidShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type Handler struct {
	Posts    *store.BlogPosts
	Sessions *session.Store
}

func NewHandler(posts *store.BlogPosts, sessions *session.Store) *Handler {
	return &Handler{Posts: posts, Sessions: sessions}
}

type postInput struct {
	TitleTR   string `json:"title_tr"`
	TitleEN   string `json:"title_en"`
	TitleDE   string `json:"title_de"`
	TitleRU   string `json:"title_ru"`
	ContentTR string `json:"content_tr"`
	ContentEN string `json:"content_en"`
	ContentDE string `json:"content_de"`
	ContentRU string `json:"content_ru"`
	Slug      string `json:"slug"`
	Published *bool  `json:"published"`
}

// bind validates and shapes a post payload. Titles are sanitized,
// contents kept as raw HTML, the slug regenerated from the supplied
// text. published defaults to true when omitted.
func (h *Handler) bind(c *gin.Context) (*blog.BlogPost, bool) {
	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return nil, false
	}

	missing := validate.Required(map[string]string{
		"title_tr":   input.TitleTR,
		"title_en":   input.TitleEN,
		"title_de":   input.TitleDE,
		"title_ru":   input.TitleRU,
		"content_tr": input.ContentTR,
		"content_en": input.ContentEN,
		"content_de": input.ContentDE,
		"content_ru": input.ContentRU,
		"slug":       input.Slug,
	}, []string{
		"title_tr", "title_en", "title_de", "title_ru",
		"content_tr", "content_en", "content_de", "content_ru",
		"slug",
	})
	if len(missing) > 0 {
		respond.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return nil, false
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	return &blog.BlogPost{
		TitleTR:   validate.SanitizeString(input.TitleTR),
		TitleEN:   validate.SanitizeString(input.TitleEN),
		TitleDE:   validate.SanitizeString(input.TitleDE),
		TitleRU:   validate.SanitizeString(input.TitleRU),
		ContentTR: input.ContentTR,
		ContentEN: input.ContentEN,
		ContentDE: input.ContentDE,
		ContentRU: input.ContentRU,
		Slug:      blog.MakeSlug(input.Slug),
		Published: published,
	}, true
}

func (h *Handler) authenticated(c *gin.Context) bool {
	_, ok := middleware.CurrentSession(c, h.Sessions)
	return ok
}

// POST /blog (auth)
func (h *Handler) Create(c *gin.Context) {
	post, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.Posts.Create(post); err != nil {
		log.Println("create blog post:", err)
		respond.Error(c, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	respond.Success(c, nil, "Blog post created successfully")
}

// GET /blog?published_only=bool — listing drafts requires a session.
func (h *Handler) List(c *gin.Context) {
	publishedOnly := true
	if raw, exists := c.GetQuery("published_only"); exists {
		if v, err := strconv.ParseBool(raw); err == nil {
			publishedOnly = v
		}
	}

	if !publishedOnly && !h.authenticated(c) {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	rows, err := h.Posts.GetAll(publishedOnly)
	if err != nil {
		log.Println("list blog posts:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.Success(c, rows, "Success")
}

// GET /blog/:idOrSlug — unpublished posts require a session.
func (h *Handler) GetOne(c *gin.Context) {
	key := c.Param("idOrSlug")

	var (
		post *blog.BlogPost
		err  error
	)
	if uuidShape.MatchString(key) {
		post, err = h.Posts.GetByID(key)
	} else {
		post, err = h.Posts.GetBySlug(key)
	}
	if err != nil {
		log.Println("get blog post:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if post == nil {
		respond.Error(c, http.StatusNotFound, "Blog post not found")
		return
	}

	if !post.Published && !h.authenticated(c) {
		respond.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	respond.Success(c, post, "Success")
}

// PUT /blog/:id (auth) — full replace of all language fields.
func (h *Handler) Update(c *gin.Context) {
	post, ok := h.bind(c)
	if !ok {
		return
	}
	updated, err := h.Posts.Update(c.Param("id"), post)
	if err != nil {
		log.Println("update blog post:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !updated {
		respond.Error(c, http.StatusNotFound, "Blog post not found")
		return
	}
	respond.Success(c, nil, "Blog post updated successfully")
}

// DELETE /blog/:id (auth)
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.Posts.Delete(c.Param("id"))
	if err != nil {
		log.Println("delete blog post:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "Blog post not found")
		return
	}
	respond.Success(c, nil, "Blog post deleted successfully")
}
