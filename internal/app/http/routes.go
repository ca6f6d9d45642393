package routes

import (
	"net/http"
	"time"

	"lawfirm-backend/config"
	adminapi "lawfirm-backend/internal/api/admin"
	blogapi "lawfirm-backend/internal/api/blog"
	messagesapi "lawfirm-backend/internal/api/messages"
	settingsapi "lawfirm-backend/internal/api/settings"
	uploadsapi "lawfirm-backend/internal/api/uploads"
	"lawfirm-backend/internal/app/http/middleware"
	"lawfirm-backend/internal/session"
	"lawfirm-backend/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the handlers need; nothing here is global.
type Deps struct {
	DB       *gorm.DB
	Sessions *session.Store
	Cfg      config.Config
}

// RegisterRoutes wires the full route table. Every route is exposed
// both bare and under /api, matching the frontend's deployment modes.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	register(r.Group("/"), deps)
	register(r.Group("/api"), deps)
}

func register(g *gin.RouterGroup, deps Deps) {
	messages := messagesapi.NewHandler(store.NewContactMessages(deps.DB))
	blog := blogapi.NewHandler(store.NewBlogPosts(deps.DB), deps.Sessions)
	settings := settingsapi.NewHandler(store.NewSiteSettings(deps.DB))
	admin := adminapi.NewHandler(store.NewAdminUsers(deps.DB), deps.Sessions, deps.Cfg)
	uploads := uploadsapi.NewHandler(deps.Cfg)

	requireAuth := middleware.RequireAuth(deps.Sessions)

	// Liveness probe: static payload, never touches the store.
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format("2006-01-02 15:04:05"),
		})
	})

	g.POST("/messages", messages.Create)
	g.GET("/messages", requireAuth, messages.List)
	g.DELETE("/messages/:id", requireAuth, messages.Delete)
	g.PUT("/messages/:id/read", requireAuth, messages.MarkRead)

	g.POST("/blog", requireAuth, blog.Create)
	g.GET("/blog", blog.List)
	g.GET("/blog/:idOrSlug", blog.GetOne)
	g.PUT("/blog/:id", requireAuth, blog.Update)
	g.DELETE("/blog/:id", requireAuth, blog.Delete)

	g.GET("/settings", settings.Get)
	g.PUT("/settings", requireAuth, settings.Update)

	g.POST("/admin/setup", admin.Setup)
	g.POST("/admin/login", admin.Login)
	g.POST("/admin/logout", admin.Logout)
	g.GET("/admin/check", admin.Check)
	g.PUT("/admin/password", requireAuth, admin.ChangePassword)
	g.POST("/admin/reset-password", admin.ResetPassword)

	g.POST("/upload", requireAuth, uploads.Upload)
	g.POST("/upload/logo", requireAuth, uploads.UploadLogo)
	g.DELETE("/upload", requireAuth, uploads.Delete)
}
