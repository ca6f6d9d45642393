package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime knob. It is built once in main and passed
// down explicitly; nothing reads the environment after Load returns.
type Config struct {
	Host string
	Port string

	CORSOrigins []string

	DBPath string

	SessionLifetime time.Duration

	MaxUploadSize    int64
	AllowedFileTypes []string
	UploadPath       string

	Debug bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return Config{
		Host:             getEnv("HOST", "127.0.0.1"),
		Port:             getEnv("PORT", "8000"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000,https://hancer.av.tr,https://www.hancer.av.tr")),
		DBPath:           getEnv("DB_PATH", "./hancer_law.db"),
		SessionLifetime:  time.Duration(getEnvInt("SESSION_LIFETIME", 3600)) * time.Second,
		MaxUploadSize:    getEnvInt("MAX_UPLOAD_SIZE", 10485760),
		AllowedFileTypes: splitCSV(getEnv("ALLOWED_FILE_TYPES", "jpg,jpeg,png,gif,pdf,doc,docx")),
		UploadPath:       getEnv("UPLOAD_PATH", "uploads"),
		Debug:            strings.EqualFold(getEnv("DEBUG", "false"), "true"),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
