// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Public Citi Bike GBFS endpoints, overridable for tests and other regions.
const (
	defaultStatusURL = "https://gbfs.citibikenyc.com/gbfs/en/station_status.json"
	defaultInfoURL   = "https://gbfs.citibikenyc.com/gbfs/en/station_information.json"

	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultOSRMURL      = "http://router.project-osrm.org"
)

// Config holds all application configuration.
type Config struct {
	Port string
	Env  string

	StatusFeedURL string
	InfoFeedURL   string
	StatusTTL     time.Duration
	InfoTTL       time.Duration

	NominatimURL string
	OSRMURL      string

	FeedTimeout  time.Duration
	RouteTimeout time.Duration
	HTTPTimeout  time.Duration
}

// Load reads configuration from the environment with sensible defaults.
// A local .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		StatusFeedURL: getEnv("GBFS_STATUS_URL", defaultStatusURL),
		InfoFeedURL:   getEnv("GBFS_INFO_URL", defaultInfoURL),
		StatusTTL:     getDurationEnv("STATUS_TTL_SECONDS", 60) * time.Second,
		InfoTTL:       getDurationEnv("INFO_TTL_SECONDS", 3600) * time.Second,
		NominatimURL:  getEnv("NOMINATIM_URL", defaultNominatimURL),
		OSRMURL:       getEnv("OSRM_URL", defaultOSRMURL),
		FeedTimeout:   getDurationEnv("FEED_TIMEOUT_SECONDS", 10) * time.Second,
		RouteTimeout:  getDurationEnv("ROUTE_TIMEOUT_SECONDS", 10) * time.Second,
		HTTPTimeout:   getDurationEnv("HTTP_TIMEOUT_SECONDS", 15) * time.Second,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.StatusFeedURL == "" || c.InfoFeedURL == "" {
		return fmt.Errorf("GBFS feed URLs must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}
