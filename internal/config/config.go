// Package config loads and validates process-wide configuration from
// environment variables. Validation happens once at startup; a config that
// fails validation must prevent the service from accepting any events.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the notification service.
type Config struct {
	// ConnectionString is the storage account connection string used to
	// sign download links.
	ConnectionString string `envconfig:"CONNECTION_STRING"`

	// ContainerName is the container whose uploads trigger notifications.
	ContainerName string `envconfig:"CONTAINER_NAME"`

	// SenderName is the sending mailbox address, also used as the SMTP username.
	SenderName string `envconfig:"EMAIL_SENDER_NAME"`

	// SenderPass is the SMTP password for the sending mailbox.
	SenderPass string `envconfig:"EMAIL_SENDER_PASS"`

	// SenderPort is the SMTP server port.
	SenderPort int `envconfig:"EMAIL_SENDER_PORT"`

	// SenderHost is the SMTP server hostname.
	SenderHost string `envconfig:"EMAIL_SENDER_HOST"`

	// Port is the HTTP server port the trigger host talks to. Defaults to 8990.
	Port int `envconfig:"PORT" default:"8990"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads Config from environment variables and validates it.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields in a fixed order and returns the first
// failure. Blank fields yield a MissingValueError; a non-positive SMTP port
// yields an OutOfRangeError.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"CONNECTION_STRING", c.ConnectionString},
		{"CONTAINER_NAME", c.ContainerName},
		{"EMAIL_SENDER_NAME", c.SenderName},
		{"EMAIL_SENDER_PASS", c.SenderPass},
		{"EMAIL_SENDER_HOST", c.SenderHost},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingValueError{Name: f.name}
		}
	}
	if c.SenderPort <= 0 {
		return &OutOfRangeError{Name: "EMAIL_SENDER_PORT", Value: c.SenderPort}
	}
	return nil
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
