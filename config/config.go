package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	ServerPort string

	// Gemini API
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	// Admin access
	AdminUsername string
	AdminPassword string
	JWTSecret     string

	// Booking defaults
	DefaultDayLimit int
	WhatsAppNumber  string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		AdminUsername: getEnv("ADMIN_USERNAME", "Admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "eva1997"),
		JWTSecret:     getEnv("JWT_SECRET", "reserva-eva-secret"),

		DefaultDayLimit: getEnvInt("DEFAULT_DAY_LIMIT", 50),
		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "5516981394818"),
	}

	if config.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set, concierge will answer with the fallback message")
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("WARNING: invalid value for %s: %q (using %d)", key, value, defaultValue)
		return defaultValue
	}
	return n
}
