package uploadsapi

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lawfirm-backend/config"
	"lawfirm-backend/internal/api/respond"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var imageExtensions = []string{"jpg", "jpeg", "png", "gif"}

type Handler struct {
	Cfg config.Config
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{Cfg: cfg}
}

// publicPrefix is the upload root in the slash form used in returned
// file paths and accepted by Delete.
func (h *Handler) publicPrefix() string {
	return strings.Trim(filepath.ToSlash(filepath.Clean(h.Cfg.UploadPath)), "/")
}

// POST /upload (auth) — multipart field "file", any allowed extension.
func (h *Handler) Upload(c *gin.Context) {
	path, ok := h.save(c, "file", h.Cfg.AllowedFileTypes, "File type not allowed")
	if !ok {
		return
	}
	respond.Success(c, gin.H{
		"file_path": path,
		"url":       "/" + path,
	}, "File uploaded successfully")
}

// POST /upload/logo (auth) — multipart field "logo", images only.
func (h *Handler) UploadLogo(c *gin.Context) {
	path, ok := h.save(c, "logo", imageExtensions, "Logo must be an image file (jpg, png, gif)")
	if !ok {
		return
	}
	respond.Success(c, gin.H{
		"logo_path": path,
		"url":       "/" + path,
	}, "Logo uploaded successfully")
}

// save validates and stores one multipart file, returning its path
// under the configured upload root ("<root>/<name>").
func (h *Handler) save(c *gin.Context, field string, allowed []string, typeError string) (string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return "", false
	}

	if fileHeader.Size > h.Cfg.MaxUploadSize {
		respond.Error(c, http.StatusBadRequest, "File too large")
		return "", false
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !extensionAllowed(ext, allowed) {
		respond.Error(c, http.StatusBadRequest, typeError)
		return "", false
	}

	if err := os.MkdirAll(h.Cfg.UploadPath, 0o755); err != nil {
		log.Println("create upload dir:", err)
		respond.Error(c, http.StatusBadRequest, "Failed to upload file")
		return "", false
	}

	name := uuid.NewString() + "." + ext
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(h.Cfg.UploadPath, name)); err != nil {
		log.Println("save upload:", err)
		respond.Error(c, http.StatusBadRequest, "Failed to upload file")
		return "", false
	}

	return h.publicPrefix() + "/" + name, true
}

// DELETE /upload (auth) — removes a previously uploaded file. Only
// paths under the uploads root are accepted.
func (h *Handler) Delete(c *gin.Context) {
	var input struct {
		FilePath string `json:"file_path"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.FilePath == "" {
		respond.Error(c, http.StatusBadRequest, "File path is required")
		return
	}

	prefix := h.publicPrefix() + "/"
	rel := filepath.ToSlash(filepath.Clean(strings.TrimPrefix(input.FilePath, "/")))
	if !strings.HasPrefix(rel, prefix) {
		respond.Error(c, http.StatusBadRequest, "Invalid file path")
		return
	}
	name := strings.TrimPrefix(rel, prefix)
	if name == "" || strings.Contains(name, "..") {
		respond.Error(c, http.StatusBadRequest, "Invalid file path")
		return
	}

	full := filepath.Join(h.Cfg.UploadPath, name)
	if _, err := os.Stat(full); err != nil {
		respond.Error(c, http.StatusNotFound, "File not found")
		return
	}
	if err := os.Remove(full); err != nil {
		log.Println("delete upload:", err)
		respond.Error(c, http.StatusInternalServerError, "Failed to delete file")
		return
	}
	respond.Success(c, nil, "File deleted successfully")
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
