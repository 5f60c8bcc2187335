// Package config provides configuration management for the storage facade.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Storage: S3/MinIO endpoint, credentials, region and timeouts
//   - Log: Logging level and format
//   - Buckets: the fixed documents/images buckets with their size, MIME and retention constraints
//
// # Validation
//
// Validate enforces the required-settings contract at startup. A missing
// endpoint, missing credentials or a malformed bucket section fails fast
// with an error wrapping ErrInvalid, before any network client is built.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
