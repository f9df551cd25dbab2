package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven server configuration
type Config struct {
	Port         string
	Env          string
	JWTSecret    string
	PostgresURL  string
	SQLitePath   string
	UploadRoot   string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailSender   string
	TranslateKey string
	PostsPerPage int
}

// Load reads configuration from the environment, applying defaults. A .env
// file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", "you-will-never-guess"),
		PostgresURL:  getEnv("POSTGRES_CONN_STR", ""),
		SQLitePath:   getEnv("SQLITE_PATH", "app.db"),
		UploadRoot:   getEnv("UPLOAD_ROOT", "static/uploads"),
		SMTPHost:     getEnv("MAIL_SERVER", ""),
		SMTPPort:     getEnvInt("MAIL_PORT", 25),
		SMTPUsername: getEnv("MAIL_USERNAME", ""),
		SMTPPassword: getEnv("MAIL_PASSWORD", ""),
		MailSender:   getEnv("MAIL_DEFAULT_SENDER", "no-reply@mybubble.local"),
		TranslateKey: getEnv("MS_TRANSLATOR_KEY", ""),
		PostsPerPage: getEnvInt("POSTS_PER_PAGE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
