package adminapi

import (
	"log"
	"net/http"
	"strings"

	"lawfirm-backend/config"
	"lawfirm-backend/internal/api/respond"
	"lawfirm-backend/internal/app/http/middleware"
	"lawfirm-backend/internal/session"
	"lawfirm-backend/internal/store"
	"lawfirm-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Admins   *store.AdminUsers
	Sessions *session.Store
	Cfg      config.Config
}

func NewHandler(admins *store.AdminUsers, sessions *session.Store, cfg config.Config) *Handler {
	return &Handler{Admins: admins, Sessions: sessions, Cfg: cfg}
}

func userPayload(id, username string) gin.H {
	return gin.H{"user": gin.H{"id": id, "username": username}}
}

// POST /admin/setup — one-time bootstrap. Refused while any active
// admin exists, making the system single-tenant by construction.
func (h *Handler) Setup(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	missing := validate.Required(map[string]string{
		"username": input.Username,
		"password": input.Password,
	}, []string{"username", "password"})
	if len(missing) > 0 {
		respond.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	count, err := h.Admins.ActiveCount()
	if err != nil {
		log.Println("count admins:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if count > 0 {
		respond.Error(c, http.StatusBadRequest, "Admin user already exists")
		return
	}

	if len(input.Password) < 8 {
		respond.Error(c, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	if err := h.Admins.Create(validate.SanitizeString(input.Username), input.Password); err != nil {
		log.Println("create admin:", err)
		respond.Error(c, http.StatusInternalServerError, "Failed to create admin user")
		return
	}
	respond.Success(c, nil, "Admin user created successfully")
}

// POST /admin/login — verifies credentials and opens a session.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	missing := validate.Required(map[string]string{
		"username": input.Username,
		"password": input.Password,
	}, []string{"username", "password"})
	if len(missing) > 0 {
		respond.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	user, err := h.Admins.Authenticate(validate.SanitizeString(input.Username), input.Password)
	if err != nil {
		log.Println("authenticate admin:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := h.Sessions.New(user.ID, user.Username)
	c.SetCookie(middleware.SessionCookie, token, int(h.Cfg.SessionLifetime.Seconds()), "/", "", false, true)

	respond.Success(c, userPayload(user.ID, user.Username), "Login successful")
}

// POST /admin/logout — destroys the session if one exists.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.Sessions.Delete(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	respond.Success(c, nil, "Logout successful")
}

// GET /admin/check — validates the session against the store; a session
// whose admin is gone or deactivated is destroyed on the spot.
func (h *Handler) Check(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	sess, ok := h.Sessions.Get(token)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Admins.GetByID(sess.AdminID)
	if err != nil {
		log.Println("check admin session:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil || !user.IsActive {
		h.Sessions.Delete(token)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		respond.Error(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	respond.Success(c, userPayload(user.ID, user.Username), "Success")
}

// PUT /admin/password (auth) — change own password.
func (h *Handler) ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	missing := validate.Required(map[string]string{
		"current_password": input.CurrentPassword,
		"new_password":     input.NewPassword,
	}, []string{"current_password", "new_password"})
	if len(missing) > 0 {
		respond.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if len(input.NewPassword) < 8 {
		respond.Error(c, http.StatusBadRequest, "New password must be at least 8 characters long")
		return
	}

	adminID := c.GetString(middleware.CtxAdminID)
	user, err := h.Admins.GetByID(adminID)
	if err != nil {
		log.Println("load admin:", err)
		respond.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		respond.Error(c, http.StatusNotFound, "User not found")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		respond.Error(c, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	updated, err := h.Admins.UpdatePassword(user.ID, input.NewPassword)
	if err != nil || !updated {
		if err != nil {
			log.Println("update password:", err)
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to update password")
		return
	}
	respond.Success(c, nil, "Password updated successfully")
}

// POST /admin/reset-password — placeholder. Always answers "sent" so
// the response does not reveal whether the email exists. No token is
// created and no mail goes out.
func (h *Handler) ResetPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid JSON input")
		return
	}
	if input.Email == "" {
		respond.Error(c, http.StatusBadRequest, "Missing required fields: email")
		return
	}
	respond.Success(c, nil, "Password reset email sent (if email exists)")
}
