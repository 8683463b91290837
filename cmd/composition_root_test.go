package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) *gorm.DB {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB
}

func TestCompositionRoot(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	t.Run("should wire router with all routes", func(t *testing.T) {
		cfg := validConfig()
		cfg.UploadDir = t.TempDir()

		root, err := NewCompositionRoot(context.Background(), cfg, newMockGorm(t), logger)
		require.NoError(t, err)

		e, err := root.CreateRouter()
		require.NoError(t, err)

		for _, path := range []string{"/health", "/metrics"} {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
		assert.Nil(t, root.archive)
	})

	t.Run("should create archive when bucket is set", func(t *testing.T) {
		cfg := validConfig()
		cfg.S3Bucket = "entregas"
		cfg.S3Region = "us-east-1"
		cfg.S3AccessKey = "key"
		cfg.S3SecretKey = "secret"

		root, err := NewCompositionRoot(context.Background(), cfg, newMockGorm(t), logger)

		require.NoError(t, err)
		assert.NotNil(t, root.archive)
	})

	t.Run("should fail on invalid smtp settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.SMTPTLS = "sometimes"

		_, err := NewCompositionRoot(context.Background(), cfg, newMockGorm(t), logger)

		assert.Error(t, err)
	})

	t.Run("should create job manager", func(t *testing.T) {
		root, err := NewCompositionRoot(context.Background(), validConfig(), newMockGorm(t), logger)
		require.NoError(t, err)

		assert.NotNil(t, root.CreateJobManager())
	})
}
