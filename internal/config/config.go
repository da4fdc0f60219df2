package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Validation errors returned by Load.
var (
	ErrInvalidBaseURL  = errors.New("PUBLIC_STRAPI_URL must be an absolute http(s) URL")
	ErrInvalidLogLevel = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidSchedule = errors.New("REFRESH_CRON is not a valid cron expression")
	ErrInvalidTimeout  = errors.New("REQUEST_TIMEOUT must be a non-negative duration such as 30s")
)

// File is the path of an optional YAML config file. Empty means environment only.
type File string

// Config contains runtime configuration values.
type Config struct {
	StrapiURL      string
	RequestTimeout time.Duration
	LogLevel       string
	RefreshCron    string
}

const (
	defaultStrapiURL   = "http://localhost:8080"
	defaultTimeout     = 30 * time.Second
	defaultLogLevel    = "info"
	defaultRefreshCron = "*/15 * * * *"
)

// Environment variable bound to each config key. The same keys are read
// from the config file.
var envBindings = map[string]string{
	"strapi_url":      "PUBLIC_STRAPI_URL",
	"request_timeout": "REQUEST_TIMEOUT",
	"log_level":       "LOG_LEVEL",
	"refresh_cron":    "REFRESH_CRON",
}

// Load builds a Config from the optional file and environment variables with
// sane defaults. Environment variables win over the file.
func Load(file File) (*Config, error) {
	v := viper.New()

	v.SetDefault("strapi_url", defaultStrapiURL)
	v.SetDefault("request_timeout", defaultTimeout.String())
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("refresh_cron", defaultRefreshCron)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if file != "" {
		v.SetConfigFile(string(file))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		StrapiURL:   strings.TrimRight(strings.TrimSpace(v.GetString("strapi_url")), "/"),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		RefreshCron: strings.TrimSpace(v.GetString("refresh_cron")),
	}

	if cfg.StrapiURL == "" {
		cfg.StrapiURL = defaultStrapiURL
	}
	if err := validateBaseURL(cfg.StrapiURL); err != nil {
		return nil, err
	}

	timeout, err := parseTimeout(v.GetString("request_timeout"))
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = defaultLogLevel
	case "warning":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	if cfg.RefreshCron == "" {
		cfg.RefreshCron = defaultRefreshCron
	}
	if _, err := cron.ParseStandard(cfg.RefreshCron); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	return cfg, nil
}

// parseTimeout accepts Go duration strings. Zero disables the client timeout.
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidTimeout, raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidTimeout, raw)
	}
	return d, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidBaseURL, raw)
	}
	return nil
}
