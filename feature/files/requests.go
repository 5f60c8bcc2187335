package files

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// DefaultPresignExpiry is applied when a presign request leaves the
	// expiry unset.
	DefaultPresignExpiry = 5 * time.Minute
	// DefaultPresignContentType is applied when a presigned upload request
	// leaves the content type unset.
	DefaultPresignContentType = "binary/octet-stream"
)

// validKey rejects keys that are empty, blank, or carry surrounding
// whitespace. Object keys are identifiers; invisible whitespace in them is
// never acceptable.
func validKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: object key must not be empty", ErrValidation)
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: object key must not be blank", ErrValidation)
	}
	if key != strings.TrimSpace(key) {
		return fmt.Errorf("%w: object key must not have leading or trailing whitespace", ErrValidation)
	}
	return nil
}

// UploadRequest carries one object upload. Size must state the exact payload
// length so the size ceiling can be checked before transmission.
type UploadRequest struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
}

// DownloadRequest names the object to stream back.
type DownloadRequest struct {
	Key string
}

// DeleteRequest names the object to remove.
type DeleteRequest struct {
	Key string
}

// StatRequest names the object whose metadata is fetched.
type StatRequest struct {
	Key string
}

// ListRequest bounds a listing to a key prefix. An empty prefix lists the
// whole bucket.
type ListRequest struct {
	Prefix string
}

// PresignUploadRequest asks for a time-limited upload URL.
type PresignUploadRequest struct {
	Key         string
	Expiry      time.Duration
	ContentType string
}

// PresignDownloadRequest asks for a time-limited download URL.
type PresignDownloadRequest struct {
	Key    string
	Expiry time.Duration
}
