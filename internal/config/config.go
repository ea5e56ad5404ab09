// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port     string `validate:"required,numeric"`
	GinMode  string `validate:"oneof=debug release test"`
	LogLevel string `validate:"oneof=debug info warn error"`
	LogFile  string

	DatabasePath      string `validate:"required"`
	TrackingEnabled   bool
	TrackingRetention time.Duration `validate:"gt=0"`

	AdminUsername string `validate:"required"`
	// AdminPassword empty disables the admin pages.
	AdminPassword string

	SMTP SMTP

	ContactRatePerMinute int `validate:"gte=1,lte=60"`
}

type SMTP struct {
	Host     string `validate:"required,hostname"`
	Port     string `validate:"required,numeric"`
	User     string
	Password string
	To       string `validate:"omitempty,email"`
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Password != ""
}

// Addr returns host:port.
func (s SMTP) Addr() string {
	return s.Host + ":" + s.Port
}

// AdminEnabled reports whether the admin pages should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.AdminPassword != ""
}

// Load reads the environment. A .env file is picked up by godotenv before
// this runs.
func Load() (*Config, error) {
	retentionDays, err := intEnv("TRACKING_RETENTION_DAYS", 365)
	if err != nil {
		return nil, err
	}
	rate, err := intEnv("CONTACT_RATE_PER_MINUTE", 3)
	if err != nil {
		return nil, err
	}
	tracking, err := boolEnv("TRACKING_ENABLED", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                 env("PORT", "8080"),
		GinMode:              env("GIN_MODE", "debug"),
		LogLevel:             strings.ToLower(env("LOG_LEVEL", "info")),
		LogFile:              os.Getenv("LOG_FILE"),
		DatabasePath:         env("DATABASE_PATH", "portfolio.db"),
		TrackingEnabled:      tracking,
		TrackingRetention:    time.Duration(retentionDays) * 24 * time.Hour,
		AdminUsername:        env("ADMIN_USERNAME", "admin"),
		AdminPassword:        os.Getenv("ADMIN_PASSWORD"),
		ContactRatePerMinute: rate,
		SMTP: SMTP{
			Host:     env("SMTP_HOST", "smtp.gmail.com"),
			Port:     env("SMTP_PORT", "587"),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			To:       os.Getenv("TO_EMAIL"),
		},
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.User
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config error: %s: %w", key, err)
	}
	return b, nil
}
