// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Context Awareness
//
// The Op helper scopes a logger to a bucket and operation name, ensuring that
// all logs related to one storage call can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Buckets bootstrapped")
//
//	// In an operation:
//	l := logger.Op(log, "documents", "upload")
//	l.Debug("Object stored", zap.String("key", key))
package logger
