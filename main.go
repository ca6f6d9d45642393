package main

import (
	"log"
	"time"

	"lawfirm-backend/config"
	"lawfirm-backend/database"
	routes "lawfirm-backend/internal/app/http"
	"lawfirm-backend/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sessions := session.NewStore(cfg.SessionLifetime)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{DB: db, Sessions: sessions, Cfg: cfg})

	if err := r.Run(cfg.Host + ":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
