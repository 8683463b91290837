package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		HTTPPort:      "8080",
		DBHost:        "localhost",
		DBPort:        "5432",
		DBUser:        "postgres",
		DBName:        "imprenta",
		SMTPHost:      "smtp.example.com",
		SMTPPort:      587,
		SMTPFrom:      "envios@example.com",
		SMTPTimeout:   15 * time.Second,
		UploadDir:     "static/uploads",
		MaxUploadSize: "4M",
		TimeZone:      "America/Santiago",
		LogLevel:      "info",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_USER", "postgres")
	t.Setenv("SMTP_USER", "envios@example.com")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "mandatory", cfg.SMTPTLS)
	assert.Equal(t, 15*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, "envios@example.com", cfg.SMTPFrom)
	assert.Equal(t, "static/uploads", cfg.UploadDir)
	assert.Equal(t, "4M", cfg.MaxUploadSize)
	assert.Equal(t, "America/Santiago", cfg.TimeZone)
	assert.Equal(t, time.Hour, cfg.UploadSweepMaxAge)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_TIMEOUT", "3s")
	t.Setenv("SMTP_FROM", "no-reply@example.com")
	t.Setenv("S3_BUCKET", "entregas")
	t.Setenv("UPLOAD_SWEEP_SCHEDULE", "0 0 * * * *")

	cfg := LoadConfig()

	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, 3*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, "no-reply@example.com", cfg.SMTPFrom)
	assert.True(t, cfg.ArchiveEnabled())
	assert.Equal(t, "0 0 * * * *", cfg.UploadSweepSchedule)
}

func TestLoadConfig_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "abc")
	t.Setenv("SMTP_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 15*time.Second, cfg.SMTPTimeout)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should accept valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("should report every missing setting", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBUser = ""
		cfg.SMTPHost = " "

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER is required")
		assert.Contains(t, err.Error(), "SMTP_HOST is required")
	})

	tests := map[string]func(*Config){
		"bad upload size": func(c *Config) { c.MaxUploadSize = "lots" },
		"bad time zone":   func(c *Config) { c.TimeZone = "Mars/Olympus" },
		"bad log level":   func(c *Config) { c.LogLevel = "loud" },
		"bad smtp port":   func(c *Config) { c.SMTPPort = 70000 },
		"zero timeout":    func(c *Config) { c.SMTPTimeout = 0 },
	}
	for name, mutate := range tests {
		t.Run("should reject "+name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := validConfig()
	cfg.DBPassword = "secret"
	cfg.DBSslMode = "require"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=imprenta sslmode=require",
		cfg.DSN())
}
