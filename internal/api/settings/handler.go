package settingsapi

import (
	"log"
	"net/http"

	"lawfirm-backend/internal/api/respond"
	"lawfirm-backend/internal/store"
	"lawfirm-backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Settings *store.SiteSettings
}

func NewHandler(settings *store.SiteSettings) *Handler {
	return &Handler{Settings: settings}
}

// GET /settings (public) — creates the empty singleton on first read.
func (h *Handler) Get(c *gin.Context) {
	row, err := h.Settings.Get()
	if err != nil {
		log.Println("get site settings:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond.Success(c, row, "Success")
}

// PUT /settings (auth) — partial update; omitted fields stay untouched.
// Plain-text fields are sanitized, the description and about blocks
// keep their HTML.
func (h *Handler) Update(c *gin.Context) {
	var patch settingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	updated, err := h.Settings.Update(patch.toDomain())
	if err != nil {
		log.Println("update site settings:", err)
		respond.Error(c, http.StatusInternalServerError, "Failed to update site settings")
		return
	}
	if !updated {
		respond.Error(c, http.StatusInternalServerError, "Failed to update site settings")
		return
	}
	respond.Success(c, nil, "Site settings updated successfully")
}

func sanitized(value *string) *string {
	if value == nil {
		return nil
	}
	clean := validate.SanitizeString(*value)
	return &clean
}
