package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Sheets SheetsConfig
	App    AppConfig
	Leave  LeaveConfig
}

// SheetsConfig holds the spreadsheet collaborator connection
type SheetsConfig struct {
	BaseURL  string
	APIToken string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port            int
	Env             string
	LogLevel        string
	Timezone        string
	PageSize        int
	FrontendURL     string
	PrefsDBPath     string
	RefreshInterval time.Duration
}

// LeaveConfig holds the fallback leave allocations
type LeaveConfig struct {
	DefaultAnnual int
	DefaultCasual int
	DefaultSick   int
}

func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	config := &Config{}

	config.Sheets = SheetsConfig{
		BaseURL:  getEnv("SHEETS_BASE_URL", ""),
		APIToken: getEnv("SHEETS_API_TOKEN", ""),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %w", err)
	}

	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Timezone:        getEnv("TIMEZONE", "Asia/Dhaka"),
		PageSize:        pageSize,
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		PrefsDBPath:     getEnv("PREFS_DB_PATH", "attendance-prefs.db"),
		RefreshInterval: refreshInterval,
	}

	defaultAnnual, err := strconv.Atoi(getEnv("DEFAULT_ANNUAL_QUOTA", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_ANNUAL_QUOTA: %w", err)
	}
	defaultCasual, err := strconv.Atoi(getEnv("DEFAULT_CASUAL_QUOTA", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_CASUAL_QUOTA: %w", err)
	}
	defaultSick, err := strconv.Atoi(getEnv("DEFAULT_SICK_QUOTA", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_SICK_QUOTA: %w", err)
	}

	config.Leave = LeaveConfig{
		DefaultAnnual: defaultAnnual,
		DefaultCasual: defaultCasual,
		DefaultSick:   defaultSick,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sheets.BaseURL == "" {
		return fmt.Errorf("SHEETS_BASE_URL is required")
	}
	if c.App.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
