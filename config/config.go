package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	HTTPAddr      string
	DBDriver      string // "mysql" or "sqlite"
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	SessionSecret string
	CORSOrigin    string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from a .env file when present, then from
// environment variables, with defaults matching local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment variables")
	}

	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8000"),
		DBDriver:      getenv("DB_DRIVER", "mysql"),
		DBDSN:         getenv("DB_DSN", "root:12345@tcp(127.0.0.1:3306)/taskmanagement?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionSecret: getenv("SESSION_SECRET", "your_secret_key"),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:3000"),
		AdminName:     getenv("ADMIN_NAME", "Admin"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
