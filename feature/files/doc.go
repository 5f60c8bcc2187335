// Package files exposes file operations on a fixed, configured bucket:
// upload, download, delete, stat, lazy listing and presigned URLs.
//
// # Validation precedes I/O
//
// Every request is checked against the bucket's constraints (object size
// ceiling, MIME allow-list, presign expiry bound, clean object keys) before
// any network call is made. Violations fail with ErrValidation and leave no
// side effect on the storage server.
//
// # Error taxonomy
//
// Operations return errors discriminable with errors.Is: ErrValidation,
// ErrObjectNotFound, ErrBucketNotFound, ErrTimeout, ErrStorage and, for
// EnsureBucket, ErrBootstrap. This layer implements no retry loops; timeouts
// and server errors are surfaced for the caller to retry with backoff.
//
// # Execution models
//
// Service is the blocking fulfillment of the Operations interface; Async
// wraps any fulfillment so each call returns immediately with a one-shot
// result channel. Both expose functionally identical operations.
//
// # Bootstrap
//
// EnsureBucket must run once per bucket at startup, before any other
// operation. It creates the bucket when absent and reconciles the expiration
// policy with the configured retention, idempotently.
package files
