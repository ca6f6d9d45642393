package uploadsapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lawfirm-backend/config"

	"github.com/gin-gonic/gin"
)

func newTestHandler(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	h := NewHandler(config.Config{
		MaxUploadSize:    1024,
		AllowedFileTypes: []string{"jpg", "png", "pdf"},
		UploadPath:       filepath.Join(dir, "uploads"),
	})

	r := gin.New()
	r.POST("/upload", h.Upload)
	r.POST("/upload/logo", h.UploadLogo)
	r.DELETE("/upload", h.Delete)
	return r, h
}

func multipartBody(t *testing.T, field, filename string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(bytes.Repeat([]byte("x"), size)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

func post(r *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadStoresFile(t *testing.T) {
	r, h := newTestHandler(t)

	body, ct := multipartBody(t, "file", "brief.pdf", 100)
	w := post(r, "/upload", body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			FilePath string `json:"file_path"`
			URL      string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(resp.Data.FilePath, h.publicPrefix()+"/") || !strings.HasSuffix(resp.Data.FilePath, ".pdf") {
		t.Errorf("file_path = %q", resp.Data.FilePath)
	}
	if resp.Data.URL != "/"+resp.Data.FilePath {
		t.Errorf("url = %q", resp.Data.URL)
	}

	name := strings.TrimPrefix(resp.Data.FilePath, h.publicPrefix()+"/")
	if _, err := os.Stat(filepath.Join(h.Cfg.UploadPath, name)); err != nil {
		t.Errorf("file not on disk: %v", err)
	}
}

func TestUploadHonorsConfiguredRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	root := filepath.Join(t.TempDir(), "media", "files")
	h := NewHandler(config.Config{
		MaxUploadSize:    1024,
		AllowedFileTypes: []string{"pdf"},
		UploadPath:       root,
	})
	r := gin.New()
	r.POST("/upload", h.Upload)
	r.DELETE("/upload", h.Delete)

	body, ct := multipartBody(t, "file", "brief.pdf", 10)
	w := post(r, "/upload", body, ct)
	if w.Code != http.StatusOK {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			FilePath string `json:"file_path"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// The returned path names the configured root, not a fixed segment.
	name := strings.TrimPrefix(resp.Data.FilePath, h.publicPrefix()+"/")
	if name == resp.Data.FilePath {
		t.Fatalf("file_path %q does not start with the upload root", resp.Data.FilePath)
	}
	if _, err := os.Stat(filepath.Join(root, name)); err != nil {
		t.Fatalf("file not under configured root: %v", err)
	}

	payload, _ := json.Marshal(map[string]string{"file_path": "uploads/" + name})
	req := httptest.NewRequest(http.MethodDelete, "/upload", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("path outside the root accepted: %d", rec.Code)
	}

	payload, _ = json.Marshal(map[string]string{"file_path": resp.Data.FilePath})
	req = httptest.NewRequest(http.MethodDelete, "/upload", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("returned path not accepted by delete: %d %s", rec.Code, rec.Body.String())
	}
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	r, _ := newTestHandler(t)

	body, ct := multipartBody(t, "file", "evil.exe", 10)
	if w := post(r, "/upload", body, ct); w.Code != http.StatusBadRequest {
		t.Fatalf("exe accepted: %d", w.Code)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r, _ := newTestHandler(t)

	body, ct := multipartBody(t, "file", "big.pdf", 4096)
	w := post(r, "/upload", body, ct)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "File too large") {
		t.Fatalf("oversized accepted: %d %s", w.Code, w.Body.String())
	}
}

func TestUploadRequiresFileField(t *testing.T) {
	r, _ := newTestHandler(t)

	body, ct := multipartBody(t, "wrong_field", "a.pdf", 10)
	if w := post(r, "/upload", body, ct); w.Code != http.StatusBadRequest {
		t.Fatalf("missing field accepted: %d", w.Code)
	}
}

func TestLogoUploadImagesOnly(t *testing.T) {
	r, _ := newTestHandler(t)

	body, ct := multipartBody(t, "logo", "logo.png", 50)
	if w := post(r, "/upload/logo", body, ct); w.Code != http.StatusOK {
		t.Fatalf("png logo rejected: %d %s", w.Code, w.Body.String())
	}

	body, ct = multipartBody(t, "logo", "logo.pdf", 50)
	w := post(r, "/upload/logo", body, ct)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "image file") {
		t.Fatalf("pdf logo accepted: %d %s", w.Code, w.Body.String())
	}
}

func TestDeleteUpload(t *testing.T) {
	r, h := newTestHandler(t)

	body, ct := multipartBody(t, "file", "gone.pdf", 10)
	w := post(r, "/upload", body, ct)
	var resp struct {
		Data struct {
			FilePath string `json:"file_path"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	del := func(path string) *httptest.ResponseRecorder {
		payload, _ := json.Marshal(map[string]string{"file_path": path})
		req := httptest.NewRequest(http.MethodDelete, "/upload", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	if rec := del("../etc/passwd"); rec.Code != http.StatusBadRequest {
		t.Errorf("traversal path accepted: %d", rec.Code)
	}
	if rec := del(h.publicPrefix() + "/../../etc/passwd"); rec.Code != http.StatusBadRequest {
		t.Errorf("nested traversal accepted: %d", rec.Code)
	}
	if rec := del(h.publicPrefix() + "/does-not-exist.pdf"); rec.Code != http.StatusNotFound {
		t.Errorf("missing file: %d", rec.Code)
	}

	if rec := del(resp.Data.FilePath); rec.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}
	name := strings.TrimPrefix(resp.Data.FilePath, h.publicPrefix()+"/")
	if _, err := os.Stat(filepath.Join(h.Cfg.UploadPath, name)); !os.IsNotExist(err) {
		t.Error("file still on disk after delete")
	}
}
