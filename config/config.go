package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// Users REST backend
	UsersAPIBaseURL string
	UsersAPITimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (only useful locally, silently ignored when the file is missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:4200"), "/"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// Strip trailing slash so "/users" can be appended without producing "//users"
		UsersAPIBaseURL: strings.TrimRight(getEnv("USERS_API_BASE_URL", "http://localhost:3000"), "/"),
		UsersAPITimeout: time.Duration(getEnvInt("USERS_API_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if cfg.UsersAPITimeout <= 0 {
		log.Println("WARNING: USERS_API_TIMEOUT_SECONDS must be positive, falling back to 10s.")
		cfg.UsersAPITimeout = 10 * time.Second
	}

	if !strings.HasPrefix(cfg.UsersAPIBaseURL, "http://") && !strings.HasPrefix(cfg.UsersAPIBaseURL, "https://") {
		log.Printf("WARNING: USERS_API_BASE_URL %q has no http(s) scheme. Requests will fail.", cfg.UsersAPIBaseURL)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
