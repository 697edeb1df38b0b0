// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/olgasafonova/notion-cms-mcp-server/cms"
	"github.com/olgasafonova/notion-cms-mcp-server/internal/base"
)

// Environment variables read by Load.
const (
	EnvNamespace   = "NOTION_CMS_NAMESPACE"
	EnvAPIPath     = "NOTION_CMS_API_PATH"
	EnvBaseURL     = "NOTION_CMS_BASE_URL"
	EnvAPIKey      = "NOTION_CMS_API_KEY"
	EnvTimeout     = "NOTION_CMS_TIMEOUT"
	EnvUserAgent   = "NOTION_CMS_USER_AGENT"
	EnvMetricsAddr = "METRICS_ADDR"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config holds host settings for the MCP server.
type Config struct {
	CMS         cms.Config
	Timeout     time.Duration
	UserAgent   string
	MetricsAddr string // empty disables the /metrics endpoint
	LogLevel    slog.Level
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	namespace := os.Getenv(EnvNamespace)
	if strings.TrimSpace(namespace) == "" {
		return nil, errors.New(EnvNamespace + " environment variable is required")
	}
	apiPath := os.Getenv(EnvAPIPath)
	if strings.TrimSpace(apiPath) == "" {
		return nil, errors.New(EnvAPIPath + " environment variable is required")
	}

	timeout := base.DefaultTimeout
	if t := os.Getenv(EnvTimeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive duration", EnvTimeout, t)
		}
		timeout = d
	}

	userAgent := os.Getenv(EnvUserAgent)
	if userAgent == "" {
		userAgent = base.DefaultUserAgent
	}

	level, err := ParseLogLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return nil, err
	}

	return &Config{
		CMS: cms.Config{
			Namespace: namespace,
			APIPath:   apiPath,
			BaseURL:   os.Getenv(EnvBaseURL),
			APIKey:    os.Getenv(EnvAPIKey),
		},
		Timeout:     timeout,
		UserAgent:   userAgent,
		MetricsAddr: os.Getenv(EnvMetricsAddr),
		LogLevel:    level,
	}, nil
}

// ParseLogLevel maps debug, info, warn or error to a slog level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, s, err)
	}
	return level, nil
}

// ClientOptions returns the cms client options implied by the configuration.
func (c *Config) ClientOptions(logger *slog.Logger) []cms.ClientOption {
	return []cms.ClientOption{
		cms.WithLogger(logger),
		cms.WithTimeout(c.Timeout),
		cms.WithUserAgent(c.UserAgent),
	}
}

// NewClient builds the cms client for this configuration.
func (c *Config) NewClient(logger *slog.Logger) (*cms.Client, error) {
	return cms.NewClient(c.CMS, c.ClientOptions(logger)...)
}
