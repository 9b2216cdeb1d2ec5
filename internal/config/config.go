package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	GmailAccessToken    string
	Timezone            string
	PollIntervalSeconds int
	MaxSearchResults    int64
	MediaDir            string
	Env                 string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                GetEnv("PORT", "8080"),
		DatabaseURL:         GetEnv("DATABASE_URL", ""),
		GmailAccessToken:    GetEnv("GMAIL_ACCESS_TOKEN", ""),
		Timezone:            GetEnv("TIMEZONE", ""),
		PollIntervalSeconds: GetEnvInt("POLL_INTERVAL_SECONDS", 30),
		MaxSearchResults:    int64(GetEnvInt("MAX_SEARCH_RESULTS", 20)),
		MediaDir:            GetEnv("MEDIA_DIR", "media"),
		Env:                 GetEnv("ENV", "development"),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// Location resolves the configured time zone for the "today" search window.
// Empty means server-local time.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) Validate() error {
	if c.GmailAccessToken == "" {
		return fmt.Errorf("GMAIL_ACCESS_TOKEN is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
