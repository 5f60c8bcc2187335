package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Sierra-Arn/minio-core/core/logger"
	"github.com/Sierra-Arn/minio-core/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by Validate when a required setting is missing or
// malformed. It is fatal at startup.
var ErrInvalid = errors.New("invalid configuration")

// BucketConfig holds the per-bucket constraints enforced before any object
// reaches the storage server.
type BucketConfig struct {
	// Name is the bucket name on the storage server.
	Name string `mapstructure:"name" default:""`
	// MaxObjectSize is the maximum allowed object size in bytes.
	MaxObjectSize int64 `mapstructure:"max_object_size" default:"5242880"`
	// AllowedMIMETypes is a comma-separated list of allowed content types.
	// Empty means any content type is accepted.
	AllowedMIMETypes string `mapstructure:"allowed_mime_types" default:""`
	// RetentionDays is the number of days after which objects expire.
	// Zero disables the expiration policy.
	RetentionDays int `mapstructure:"retention_days" default:"0"`
	// PresignMaxExpirySeconds caps the expiry of presigned URLs.
	// Default is the S3 ceiling of 7 days.
	PresignMaxExpirySeconds int `mapstructure:"presign_max_expiry_seconds" default:"604800"`
}

// MIMETypes returns the allow-list as a slice, or nil when unrestricted.
func (b BucketConfig) MIMETypes() []string {
	if strings.TrimSpace(b.AllowedMIMETypes) == "" {
		return nil
	}
	parts := strings.Split(b.AllowedMIMETypes, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Buckets holds the fixed set of buckets this application manages.
type Buckets struct {
	// Documents is the bucket for document files.
	Documents BucketConfig `mapstructure:"documents"`
	// Images is the bucket for image files.
	Images BucketConfig `mapstructure:"images"`
}

// All returns the configured buckets in a stable order.
func (b Buckets) All() []BucketConfig {
	return []BucketConfig{b.Documents, b.Images}
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Storage holds connection settings for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Buckets holds the per-bucket names and constraints.
	Buckets Buckets `mapstructure:"buckets"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STORAGE_ENDPOINT -> storage.endpoint)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required settings are present and well-formed.
// It must be called once at startup, before any storage client is built.
func (c *Config) Validate() error {
	if c.Storage.Endpoint == "" {
		return fmt.Errorf("%w: storage endpoint is required", ErrInvalid)
	}
	if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
		return fmt.Errorf("%w: storage credentials are required", ErrInvalid)
	}
	if c.Storage.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: storage timeout_seconds must not be negative", ErrInvalid)
	}

	sections := []struct {
		key    string
		bucket BucketConfig
	}{
		{"buckets.documents", c.Buckets.Documents},
		{"buckets.images", c.Buckets.Images},
	}
	for _, s := range sections {
		if err := validateBucket(s.key, s.bucket); err != nil {
			return err
		}
	}
	return nil
}

func validateBucket(key string, b BucketConfig) error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: %s.name is required", ErrInvalid, key)
	}
	if b.MaxObjectSize <= 0 {
		return fmt.Errorf("%w: %s.max_object_size must be positive", ErrInvalid, key)
	}
	if b.RetentionDays < 0 {
		return fmt.Errorf("%w: %s.retention_days must not be negative", ErrInvalid, key)
	}
	if b.PresignMaxExpirySeconds <= 0 {
		return fmt.Errorf("%w: %s.presign_max_expiry_seconds must be positive", ErrInvalid, key)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
