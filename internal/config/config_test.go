package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/uploadnotify/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		ConnectionString: "DefaultEndpointsProtocol=https;AccountName=acct;AccountKey=a2V5;EndpointSuffix=core.windows.net",
		ContainerName:    "uploads",
		SenderName:       "sender@example.com",
		SenderPass:       "secret",
		SenderPort:       587,
		SenderHost:       "smtp.example.com",
	}
}

func TestValidate_AllFieldsPresent(t *testing.T) {
	c := validConfig()
	assert.NoError(t, c.Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		wantName string
	}{
		{"connection string", func(c *config.Config) { c.ConnectionString = "" }, "CONNECTION_STRING"},
		{"container name", func(c *config.Config) { c.ContainerName = "" }, "CONTAINER_NAME"},
		{"sender name", func(c *config.Config) { c.SenderName = "" }, "EMAIL_SENDER_NAME"},
		{"sender pass", func(c *config.Config) { c.SenderPass = "" }, "EMAIL_SENDER_PASS"},
		{"sender host", func(c *config.Config) { c.SenderHost = "" }, "EMAIL_SENDER_HOST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)

			err := c.Validate()
			var missing *config.MissingValueError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantName, missing.Name)
		})
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	for _, port := range []int{0, -1} {
		c := validConfig()
		c.SenderPort = port

		err := c.Validate()
		var oor *config.OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "EMAIL_SENDER_PORT", oor.Name)
		assert.Equal(t, port, oor.Value)
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	// With every field missing, the connection string is reported first.
	var c config.Config
	err := c.Validate()

	var missing *config.MissingValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "CONNECTION_STRING", missing.Name)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CONNECTION_STRING", "DefaultEndpointsProtocol=https;AccountName=acct;AccountKey=a2V5")
	t.Setenv("CONTAINER_NAME", "uploads")
	t.Setenv("EMAIL_SENDER_NAME", "sender@example.com")
	t.Setenv("EMAIL_SENDER_PASS", "secret")
	t.Setenv("EMAIL_SENDER_PORT", "465")
	t.Setenv("EMAIL_SENDER_HOST", "smtp.example.com")

	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "uploads", c.ContainerName)
	assert.Equal(t, 465, c.SenderPort)
	assert.Equal(t, 9100, c.Port)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_MissingRequired(t *testing.T) {
	// Only the connection string is blanked; the ordered validation reports it.
	t.Setenv("CONNECTION_STRING", "")
	t.Setenv("CONTAINER_NAME", "uploads")
	t.Setenv("EMAIL_SENDER_NAME", "sender@example.com")
	t.Setenv("EMAIL_SENDER_PASS", "secret")
	t.Setenv("EMAIL_SENDER_PORT", "587")
	t.Setenv("EMAIL_SENDER_HOST", "smtp.example.com")

	_, err := config.Load()
	var missing *config.MissingValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "CONNECTION_STRING", missing.Name)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		c := &config.Config{LogLevel: tt.logLevel}
		assert.Equal(t, tt.want, c.SlogLevel())
	}
}
