package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"deliveryproof/internal/adapters/out/postgres"
	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/logging"

	"github.com/labstack/gommon/bytes"
)

// Config holds all application configuration. It is built once in main and
// passed to constructors.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPTLS      string
	SMTPTimeout  time.Duration

	UploadDir     string
	MaxUploadSize string
	TimeZone      string

	LogLevel  string
	LogFormat string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string

	UploadSweepSchedule string
	UploadSweepMaxAge   time.Duration
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() Config {
	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", ""),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),
		SMTPTLS:      getEnv("SMTP_TLS", "mandatory"),
		SMTPTimeout:  getEnvAsDuration("SMTP_TIMEOUT", 15*time.Second),

		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		MaxUploadSize: getEnv("MAX_UPLOAD_SIZE", "4M"),
		TimeZone:      getEnv("TIME_ZONE", kernel.DefaultTimeZone),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", logging.FormatJSON),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Prefix:    getEnv("S3_PREFIX", ""),

		UploadSweepSchedule: getEnv("UPLOAD_SWEEP_SCHEDULE", ""),
		UploadSweepMaxAge:   getEnvAsDuration("UPLOAD_SWEEP_MAX_AGE", time.Hour),
	}
}

// DSN returns the Postgres connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ArchiveEnabled reports whether processed photos are copied to S3.
func (c Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var errList []error

	for _, setting := range []struct{ key, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"SMTP_HOST", c.SMTPHost},
		{"SMTP_FROM", c.SMTPFrom},
		{"UPLOAD_DIR", c.UploadDir},
	} {
		if strings.TrimSpace(setting.value) == "" {
			errList = append(errList, fmt.Errorf("%s is required", setting.key))
		}
	}

	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		errList = append(errList, fmt.Errorf("SMTP_PORT %d is out of range", c.SMTPPort))
	}
	if c.SMTPTimeout <= 0 {
		errList = append(errList, errors.New("SMTP_TIMEOUT must be positive"))
	}
	if size, err := bytes.Parse(c.MaxUploadSize); err != nil || size <= 0 {
		errList = append(errList, fmt.Errorf("MAX_UPLOAD_SIZE %q is invalid", c.MaxUploadSize))
	}
	if _, err := kernel.LoadZone(c.TimeZone); err != nil {
		errList = append(errList, fmt.Errorf("TIME_ZONE: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errList...)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
