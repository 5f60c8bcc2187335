package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/Sierra-Arn/minio-core/core/config"
	"github.com/Sierra-Arn/minio-core/core/logger"
	"github.com/Sierra-Arn/minio-core/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectMetadata describes one stored object without its body.
type ObjectMetadata struct {
	Key          string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// ListEntry is one element of a lazy listing. Exactly one of Object or Err
// is meaningful, mirroring the provider's own listing channel.
type ListEntry struct {
	Object ObjectMetadata
	Err    error
}

// Operations is the bucket-scoped file-operation surface. Service fulfills
// it in the blocking model; Async wraps any fulfillment in the suspending
// model.
type Operations interface {
	Upload(ctx context.Context, req UploadRequest) (ObjectMetadata, error)
	Download(ctx context.Context, req DownloadRequest) (io.ReadCloser, error)
	Delete(ctx context.Context, req DeleteRequest) (bool, error)
	Stat(ctx context.Context, req StatRequest) (ObjectMetadata, error)
	List(ctx context.Context, req ListRequest) (<-chan ListEntry, error)
	PresignUpload(ctx context.Context, req PresignUploadRequest) (*url.URL, error)
	PresignDownload(ctx context.Context, req PresignDownloadRequest) (*url.URL, error)
}

// Service handles file operations on a single bucket. It is instantiated per
// bucket rather than subtyped: every bucket follows the same operational
// semantics, only the constraints differ.
type Service struct {
	factory   *storage.Factory
	bucket    config.BucketConfig
	allowed   map[string]struct{}
	maxExpiry time.Duration
	logger    *zap.Logger
}

var _ Operations = (*Service)(nil)

// NewService creates a file service bound to one bucket.
func NewService(factory *storage.Factory, bucket config.BucketConfig, log *zap.Logger) *Service {
	var allowed map[string]struct{}
	if types := bucket.MIMETypes(); types != nil {
		allowed = make(map[string]struct{}, len(types))
		for _, t := range types {
			allowed[t] = struct{}{}
		}
	}
	return &Service{
		factory:   factory,
		bucket:    bucket,
		allowed:   allowed,
		maxExpiry: time.Duration(bucket.PresignMaxExpirySeconds) * time.Second,
		logger:    log,
	}
}

// Bucket returns the name of the bucket this service operates on.
func (s *Service) Bucket() string { return s.bucket.Name }

func (s *Service) validateContentType(contentType string) error {
	if s.allowed == nil {
		return nil
	}
	if _, ok := s.allowed[contentType]; !ok {
		return fmt.Errorf("%w: content type %q is not allowed for bucket %q", ErrValidation, contentType, s.bucket.Name)
	}
	return nil
}

func (s *Service) validateExpiry(expiry time.Duration) (time.Duration, error) {
	if expiry == 0 {
		expiry = DefaultPresignExpiry
	}
	if expiry < 0 || expiry > s.maxExpiry {
		return 0, fmt.Errorf("%w: presign expiry must be positive and at most %s", ErrValidation, s.maxExpiry)
	}
	return expiry, nil
}

// Upload stores the payload under the given key. An existing object under
// the same key is overwritten without warning (last-write-wins); the storage
// server decides the outcome of concurrent writes. Size and content type are
// checked against the bucket constraints before any network call.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (ObjectMetadata, error) {
	if err := validKey(req.Key); err != nil {
		return ObjectMetadata{}, err
	}
	if req.Body == nil {
		return ObjectMetadata{}, fmt.Errorf("%w: upload payload must not be nil", ErrValidation)
	}
	if req.Size < 0 {
		return ObjectMetadata{}, fmt.Errorf("%w: upload size must be known", ErrValidation)
	}
	if req.Size > s.bucket.MaxObjectSize {
		return ObjectMetadata{}, fmt.Errorf("%w: object size %d exceeds maximum of %d bytes", ErrValidation, req.Size, s.bucket.MaxObjectSize)
	}
	if err := s.validateContentType(req.ContentType); err != nil {
		return ObjectMetadata{}, err
	}

	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return ObjectMetadata{}, err
	}
	defer lease.Release()

	info, err := lease.Client().PutObject(ctx, s.bucket.Name, req.Key, req.Body, req.Size, minio.PutObjectOptions{
		ContentType: req.ContentType,
	})
	if err != nil {
		return ObjectMetadata{}, mapError(err)
	}

	logger.Op(s.logger, s.bucket.Name, "upload").Debug("Object stored",
		zap.String("key", req.Key),
		zap.Int64("size", req.Size),
	)
	return ObjectMetadata{
		Key:          req.Key,
		Size:         req.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// Download returns the object body as a stream. Closing the stream releases
// the underlying lease, so callers must always close it.
func (s *Service) Download(ctx context.Context, req DownloadRequest) (io.ReadCloser, error) {
	if err := validKey(req.Key); err != nil {
		return nil, err
	}

	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return nil, err
	}

	// The provider reader reports a missing key only on first read; stat
	// first so absence surfaces here, before a stream is handed out.
	if _, err := lease.Client().StatObject(ctx, s.bucket.Name, req.Key, minio.StatObjectOptions{}); err != nil {
		lease.Release()
		return nil, mapError(err)
	}

	body, err := lease.Client().GetObject(ctx, s.bucket.Name, req.Key, minio.GetObjectOptions{})
	if err != nil {
		lease.Release()
		return nil, mapError(err)
	}
	return &leasedReader{ReadCloser: body, lease: lease}, nil
}

// Delete removes the object and reports whether it existed. Deleting a
// nonexistent key is not an error.
func (s *Service) Delete(ctx context.Context, req DeleteRequest) (bool, error) {
	if err := validKey(req.Key); err != nil {
		return false, err
	}

	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return false, err
	}
	defer lease.Release()

	// The provider's delete cannot report prior existence, so probe first.
	// A concurrent delete between probe and remove still counts as success.
	if _, err := lease.Client().StatObject(ctx, s.bucket.Name, req.Key, minio.StatObjectOptions{}); err != nil {
		mapped := mapError(err)
		if isObjectNotFound(mapped) {
			return false, nil
		}
		return false, mapped
	}

	if err := lease.Client().RemoveObject(ctx, s.bucket.Name, req.Key, minio.RemoveObjectOptions{}); err != nil {
		return false, mapError(err)
	}

	logger.Op(s.logger, s.bucket.Name, "delete").Debug("Object removed", zap.String("key", req.Key))
	return true, nil
}

// Stat fetches object metadata without transferring the body.
func (s *Service) Stat(ctx context.Context, req StatRequest) (ObjectMetadata, error) {
	if err := validKey(req.Key); err != nil {
		return ObjectMetadata{}, err
	}

	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return ObjectMetadata{}, err
	}
	defer lease.Release()

	info, err := lease.Client().StatObject(ctx, s.bucket.Name, req.Key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectMetadata{}, mapError(err)
	}
	return metadataFromInfo(info), nil
}

// List produces a lazy sequence of object metadata under the prefix. Pages
// are fetched from the provider as the channel is consumed; nothing is
// buffered beyond the provider's page. The sequence is restartable by
// calling List again.
func (s *Service) List(ctx context.Context, req ListRequest) (<-chan ListEntry, error) {
	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return nil, err
	}

	src := lease.Client().ListObjects(ctx, s.bucket.Name, minio.ListObjectsOptions{
		Prefix:    req.Prefix,
		Recursive: true,
	})

	out := make(chan ListEntry)
	go func() {
		defer close(out)
		defer lease.Release()
		for info := range src {
			var entry ListEntry
			if info.Err != nil {
				entry = ListEntry{Err: mapError(info.Err)}
			} else {
				entry = ListEntry{Object: metadataFromInfo(info)}
			}
			select {
			case out <- entry:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// PresignUpload issues a time-limited URL for uploading directly to the
// bucket, without application-server involvement in the transfer.
func (s *Service) PresignUpload(ctx context.Context, req PresignUploadRequest) (*url.URL, error) {
	if err := validKey(req.Key); err != nil {
		return nil, err
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = DefaultPresignContentType
	}
	if err := s.validateContentType(contentType); err != nil {
		return nil, err
	}
	expiry, err := s.validateExpiry(req.Expiry)
	if err != nil {
		return nil, err
	}

	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	u, err := lease.Client().PresignedPutObject(ctx, s.bucket.Name, req.Key, expiry)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

// PresignDownload issues a time-limited URL for downloading directly from
// the bucket. The object must exist at issuance time.
func (s *Service) PresignDownload(ctx context.Context, req PresignDownloadRequest) (*url.URL, error) {
	if err := validKey(req.Key); err != nil {
		return nil, err
	}
	expiry, err := s.validateExpiry(req.Expiry)
	if err != nil {
		return nil, err
	}

	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	if _, err := lease.Client().StatObject(ctx, s.bucket.Name, req.Key, minio.StatObjectOptions{}); err != nil {
		return nil, mapError(err)
	}

	u, err := lease.Client().PresignedGetObject(ctx, s.bucket.Name, req.Key, expiry, url.Values{})
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func metadataFromInfo(info minio.ObjectInfo) ObjectMetadata {
	return ObjectMetadata{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}
}

func isObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// leasedReader ties the lease lifetime to the returned stream.
type leasedReader struct {
	io.ReadCloser
	lease *storage.Lease
}

func (r *leasedReader) Close() error {
	err := r.ReadCloser.Close()
	r.lease.Release()
	return err
}
