package config_test

import (
	"testing"

	"github.com/Sierra-Arn/minio-core/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Endpoint = "localhost:9000"
	cfg.Storage.AccessKey = "minioadmin"
	cfg.Storage.SecretKey = "minioadmin"
	cfg.Storage.TimeoutSeconds = 30
	cfg.Buckets.Documents = config.BucketConfig{
		Name:                    "documents",
		MaxObjectSize:           5242880,
		AllowedMIMETypes:        "application/pdf",
		RetentionDays:           7,
		PresignMaxExpirySeconds: 604800,
	}
	cfg.Buckets.Images = config.BucketConfig{
		Name:                    "images",
		MaxObjectSize:           1048576,
		AllowedMIMETypes:        "image/png,image/jpeg",
		PresignMaxExpirySeconds: 604800,
	}
	return cfg
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(".")
		require.NoError(t, err)

		assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
		assert.Equal(t, "us-east-1", cfg.Storage.Region)
		assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, int64(5242880), cfg.Buckets.Documents.MaxObjectSize)
		assert.Equal(t, 604800, cfg.Buckets.Documents.PresignMaxExpirySeconds)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("STORAGE_ENDPOINT", "minio.internal:9000")
		t.Setenv("BUCKETS_DOCUMENTS_NAME", "docs-prod")
		t.Setenv("BUCKETS_DOCUMENTS_RETENTION_DAYS", "30")
		t.Setenv("BUCKETS_IMAGES_ALLOWED_MIME_TYPES", "image/png,image/webp")

		cfg, err := config.LoadConfig(".")
		require.NoError(t, err)

		assert.Equal(t, "minio.internal:9000", cfg.Storage.Endpoint)
		assert.Equal(t, "docs-prod", cfg.Buckets.Documents.Name)
		assert.Equal(t, 30, cfg.Buckets.Documents.RetentionDays)
		assert.Equal(t, []string{"image/png", "image/webp"}, cfg.Buckets.Images.MIMETypes())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"MissingEndpoint", func(c *config.Config) { c.Storage.Endpoint = "" }},
		{"MissingAccessKey", func(c *config.Config) { c.Storage.AccessKey = "" }},
		{"MissingSecretKey", func(c *config.Config) { c.Storage.SecretKey = "" }},
		{"NegativeTimeout", func(c *config.Config) { c.Storage.TimeoutSeconds = -1 }},
		{"MissingDocumentsBucketName", func(c *config.Config) { c.Buckets.Documents.Name = "" }},
		{"BlankImagesBucketName", func(c *config.Config) { c.Buckets.Images.Name = "   " }},
		{"ZeroMaxObjectSize", func(c *config.Config) { c.Buckets.Documents.MaxObjectSize = 0 }},
		{"NegativeRetention", func(c *config.Config) { c.Buckets.Images.RetentionDays = -7 }},
		{"ZeroPresignCeiling", func(c *config.Config) { c.Buckets.Documents.PresignMaxExpirySeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestBucketConfig_MIMETypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"Empty", "", nil},
		{"Blank", "   ", nil},
		{"Single", "application/pdf", []string{"application/pdf"}},
		{"SpacesAroundCommas", "image/png, image/jpeg ,image/gif", []string{"image/png", "image/jpeg", "image/gif"}},
		{"TrailingComma", "application/pdf,", []string{"application/pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := config.BucketConfig{AllowedMIMETypes: tt.raw}
			assert.Equal(t, tt.want, b.MIMETypes())
		})
	}
}
