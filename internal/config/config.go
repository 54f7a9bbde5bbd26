/*
Package config builds the run configuration from the process environment.
The struct is constructed once in main and passed into every component;
nothing reads environment variables ad hoc.
*/
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all tracker configuration. Every field has a default; the
// distribution fields (Google Sheets, SMTP, Gemini) are optional and their
// absence disables the channel rather than failing the run.
type Config struct {
	DaysBack       int
	OutputDir      string
	CategoryFilter string
	ExtractPDFText bool

	GoogleCredentials string
	GoogleSheetID     string

	SMTPServer    string
	SMTPPort      int
	EmailAddress  string
	EmailPassword string
	NotifyEmail   string

	GeminiAPIKey string
	GeminiModel  string

	LogLevel string
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded first if present.
func Load() Config {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		DaysBack:          getenvInt("DAYS_BACK", 4),
		OutputDir:         getenv("OUTPUT_DIR", "output"),
		CategoryFilter:    getenv("CATEGORY_FILTER", "-1"),
		ExtractPDFText:    getenvBool("EXTRACT_PDF_TEXT", false),
		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS"),
		GoogleSheetID:     os.Getenv("GOOGLE_SHEET_ID"),
		SMTPServer:        getenv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:          getenvInt("SMTP_PORT", 587),
		EmailAddress:      os.Getenv("EMAIL_ADDRESS"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		NotifyEmail:       os.Getenv("NOTIFY_EMAIL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
	}

	if cfg.NotifyEmail == "" {
		cfg.NotifyEmail = cfg.EmailAddress
	}

	return cfg
}

// SheetsEnabled reports whether the Google Sheets channel is configured.
func (c Config) SheetsEnabled() bool {
	return c.GoogleCredentials != "" && c.GoogleSheetID != ""
}

// EmailEnabled reports whether the email channel is configured.
func (c Config) EmailEnabled() bool {
	return c.EmailAddress != "" && c.EmailPassword != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
