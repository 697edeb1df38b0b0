package config

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/olgasafonova/notion-cms-mcp-server/internal/base"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv(EnvNamespace, "johndoe")
	t.Setenv(EnvAPIPath, "blog")
	for _, key := range []string{EnvBaseURL, EnvAPIKey, EnvTimeout, EnvUserAgent, EnvMetricsAddr, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CMS.Namespace != "johndoe" || cfg.CMS.APIPath != "blog" {
		t.Errorf("CMS = %+v", cfg.CMS)
	}
	if cfg.CMS.BaseURL != "" || cfg.CMS.APIKey != "" {
		t.Errorf("optional fields should be empty, got %+v", cfg.CMS)
	}
	if cfg.Timeout != base.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, base.DefaultTimeout)
	}
	if cfg.UserAgent != base.DefaultUserAgent {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_AllSet(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvBaseURL, "https://cms.internal")
	t.Setenv(EnvAPIKey, "k1")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvUserAgent, "my-agent/2.0")
	t.Setenv(EnvMetricsAddr, ":9090")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CMS.BaseURL != "https://cms.internal" || cfg.CMS.APIKey != "k1" {
		t.Errorf("CMS = %+v", cfg.CMS)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.UserAgent != "my-agent/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing namespace", EnvNamespace, "", EnvNamespace},
		{"blank api path", EnvAPIPath, "  ", EnvAPIPath},
		{"bad timeout", EnvTimeout, "soon", EnvTimeout},
		{"negative timeout", EnvTimeout, "-1s", EnvTimeout},
		{"bad log level", EnvLogLevel, "verbose", EnvLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %s", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigNewClient(t *testing.T) {
	setRequired(t)
	t.Setenv(EnvTimeout, "7s")
	t.Setenv(EnvUserAgent, "bench/1.0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	client, err := cfg.NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.HTTPClient.Timeout != 7*time.Second {
		t.Errorf("HTTP timeout = %v, want 7s", client.HTTPClient.Timeout)
	}
	if client.UserAgent != "bench/1.0" {
		t.Errorf("UserAgent = %q", client.UserAgent)
	}
	if client.Config().Namespace != "johndoe" {
		t.Errorf("Namespace = %q", client.Config().Namespace)
	}
}
