package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"teamdash/internal/errors"
	"teamdash/internal/logger"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Data   DataConfig
	Chart  ChartConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string // CORS origins for /api; empty disables CORS
}

// LogConfig holds logger settings
type LogConfig struct {
	Mode  string // "dev" or "prod"
	Level string // ERROR, WARN, INFO, DEBUG or TRACE
}

// DataConfig holds roster seeding settings
type DataConfig struct {
	RosterFile       string // .xlsx or .csv; empty means synthetic members
	SyntheticMembers int
	SyntheticSeed    int64
}

// MaxChartPixels bounds Chart.Width*Chart.Height; it matches the renderer's cap
const MaxChartPixels = 1 << 26

// ChartConfig holds title chart dimensions in pixels
type ChartConfig struct {
	Width  int
	Height int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		Log:    loadLogConfig(),
		Data:   loadDataConfig(),
		Chart:  loadChartConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", nil),
	}
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Mode:  strings.ToLower(getEnvOrDefault("LOG_MODE", "dev")),
		Level: strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		RosterFile:       getEnvOrDefault("ROSTER_FILE", ""),
		SyntheticMembers: getEnvIntOrDefault("SYNTHETIC_MEMBERS", 12),
		SyntheticSeed:    int64(getEnvIntOrDefault("SYNTHETIC_SEED", 42)),
	}
}

func loadChartConfig() ChartConfig {
	return ChartConfig{
		Width:  getEnvIntOrDefault("CHART_WIDTH", 832),
		Height: getEnvIntOrDefault("CHART_HEIGHT", 500),
	}
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be one of debug, release, test")
	}
	switch config.Log.Mode {
	case "dev", "prod", "production":
	default:
		return errors.ConfigInvalid("LOG_MODE must be dev or prod")
	}
	if _, ok := logger.ParseLevel(config.Log.Level); !ok {
		return errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
	}
	if config.Data.SyntheticMembers < 0 {
		return errors.ConfigInvalid("SYNTHETIC_MEMBERS cannot be negative")
	}
	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if int64(config.Chart.Width)*int64(config.Chart.Height) > MaxChartPixels {
		return errors.ConfigInvalid("CHART_WIDTH*CHART_HEIGHT exceeds the chart pixel limit")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
