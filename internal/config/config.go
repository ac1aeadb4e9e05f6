// Package config provides configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Search limit defaults
const (
	DefaultSearchLimitValue = 150
	MaxSearchLimitValue     = 1000
)

// Local processing defaults
const (
	AnalyzeSampleLimitValue = 500
	ExtractMaxResultsValue  = 200
)

// Config holds all configuration for the MCP server.
type Config struct {
	// Connection settings, required. Set via GRAYLOG_BASE_URL,
	// GRAYLOG_USERNAME and GRAYLOG_PASSWORD or the matching flags.
	BaseURL  string
	Username string
	Password string

	HTTPClientTimeout time.Duration // GRAYLOG_HTTP_TIMEOUT_MS, default 30000ms (30s)

	// Search tool limits
	DefaultSearchLimit int // GRAYLOG_DEFAULT_SEARCH_LIMIT, default 150
	MaxSearchLimit     int // GRAYLOG_MAX_SEARCH_LIMIT, default 1000

	// Metadata cache sizing (streams and field listings, never search results)
	MetadataCacheSize int           // GRAYLOG_METADATA_CACHE_SIZE, default 64
	MetadataCacheTTL  time.Duration // GRAYLOG_METADATA_CACHE_TTL_MS, default 30000ms

	// Local processing caps
	AnalyzeSampleLimit int // GRAYLOG_ANALYZE_SAMPLE_LIMIT, default 500
	ExtractMaxResults  int // GRAYLOG_EXTRACT_MAX_RESULTS, default 200

	// Logging configuration
	LogLevel      string // GRAYLOG_LOG_LEVEL, default "info"
	LogFile       string // GRAYLOG_LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // GRAYLOG_LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // GRAYLOG_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // GRAYLOG_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // GRAYLOG_LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
// Connection settings have no defaults; Resolve reports what is missing.
func Load() *Config {
	return &Config{
		BaseURL:  getEnvString("GRAYLOG_BASE_URL", ""),
		Username: getEnvString("GRAYLOG_USERNAME", ""),
		Password: getEnvString("GRAYLOG_PASSWORD", ""),

		HTTPClientTimeout: getEnvDurationMs("GRAYLOG_HTTP_TIMEOUT_MS", 30000),

		DefaultSearchLimit: getEnvInt("GRAYLOG_DEFAULT_SEARCH_LIMIT", DefaultSearchLimitValue),
		MaxSearchLimit:     getEnvInt("GRAYLOG_MAX_SEARCH_LIMIT", MaxSearchLimitValue),

		MetadataCacheSize: getEnvInt("GRAYLOG_METADATA_CACHE_SIZE", 64),
		MetadataCacheTTL:  getEnvDurationMs("GRAYLOG_METADATA_CACHE_TTL_MS", 30000),

		AnalyzeSampleLimit: getEnvInt("GRAYLOG_ANALYZE_SAMPLE_LIMIT", AnalyzeSampleLimitValue),
		ExtractMaxResults:  getEnvInt("GRAYLOG_EXTRACT_MAX_RESULTS", ExtractMaxResultsValue),

		LogLevel:      getEnvString("GRAYLOG_LOG_LEVEL", "info"),
		LogFile:       getEnvString("GRAYLOG_LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("GRAYLOG_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("GRAYLOG_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("GRAYLOG_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("GRAYLOG_LOG_COMPRESS", true),
	}
}

// Resolve validates the connection settings and normalizes the base URL so it
// always ends with "/". Every missing value is reported in a single error.
func (c *Config) Resolve() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "base URL (GRAYLOG_BASE_URL)")
	}
	if c.Username == "" {
		missing = append(missing, "username (GRAYLOG_USERNAME)")
	}
	if c.Password == "" {
		missing = append(missing, "password (GRAYLOG_PASSWORD)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete Graylog configuration: missing %s", strings.Join(missing, ", "))
	}

	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	return nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
