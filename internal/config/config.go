package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"career-studio/internal/auth"
)

// Config holds all configuration for the studio.
type Config struct {
	// Backend
	BackendBaseURL string

	// Firebase Authentication
	FirebaseAPIKey   string
	FirebaseAuthURL  string
	FirebaseTokenURL string

	// Server
	Port  string
	Debug bool

	// Rendering
	TemplatesDir string
	ChromePath   string

	// Sync timing
	AutosaveInterval time.Duration
	RenderDebounce   time.Duration

	// Timeouts
	HTTPTimeout time.Duration

	// Drafts store; file path used unless a DSN is set
	DraftsFile string
	DraftsDSN  string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8000"),

		FirebaseAPIKey:   getEnv("FIREBASE_API_KEY", ""),
		FirebaseAuthURL:  getEnv("FIREBASE_AUTH_URL", auth.DefaultAuthURL),
		FirebaseTokenURL: getEnv("FIREBASE_TOKEN_URL", auth.DefaultTokenURL),

		Port:  getEnv("PORT", "3000"),
		Debug: getEnvBool("DEBUG", false),

		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		ChromePath:   getEnv("CHROME_PATH", ""),

		AutosaveInterval: getEnvDuration("AUTOSAVE_INTERVAL", 10*time.Second),
		RenderDebounce:   getEnvDuration("RENDER_DEBOUNCE", 500*time.Millisecond),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		DraftsFile: getEnv("DRAFTS_FILE", ".careerstudio/drafts.json"),
		DraftsDSN:  getEnv("DRAFTS_DATABASE_URL", ""),
	}
}

// Validate checks if required configuration is present.
func (c *Config) Validate() error {
	if c.BackendBaseURL == "" {
		return &ConfigError{Field: "BACKEND_BASE_URL", Message: "BACKEND_BASE_URL is required"}
	}
	if c.FirebaseAPIKey == "" {
		return &ConfigError{Field: "FIREBASE_API_KEY", Message: "FIREBASE_API_KEY is required for authentication"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
