package files

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Stable error taxonomy for all file operations. Callers discriminate with
// errors.Is; the wrapped chain keeps the provider diagnostic detail.
var (
	// ErrValidation marks caller input that violates the bucket's size,
	// MIME or expiry constraints. Raised before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrObjectNotFound marks an absent object key.
	ErrObjectNotFound = errors.New("object not found")
	// ErrBucketNotFound marks a bucket deleted out-of-band.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrTimeout marks a network deadline exceeded. Retryable with backoff.
	ErrTimeout = errors.New("storage operation timed out")
	// ErrStorage marks an unexpected provider-side failure.
	ErrStorage = errors.New("storage server error")
	// ErrBootstrap marks a bucket or lifecycle setup failure. Startup-fatal.
	ErrBootstrap = errors.New("bucket bootstrap failed")
)

// mapError translates a provider failure into the taxonomy. A deliberate
// caller cancellation passes through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return fmt.Errorf("%w: %v", ErrObjectNotFound, err)
	case "NoSuchBucket":
		return fmt.Errorf("%w: %v", ErrBucketNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
