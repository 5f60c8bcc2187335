// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the facade needs: bucket existence and creation, object
// upload/download/stat/removal, lazy listing, presigned URLs and lifecycle
// (expiration) configuration. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Factory and Leases
//
// Factory owns the one shared connection pool for the process and hands out
// bucket-scoped leases. A lease must be released on every exit path; Close
// tears the pool down at shutdown and reports unreleased leases.
//
// # Usage
//
//	factory, err := storage.Open(cfg)
//	defer factory.Close()
//
//	lease, err := factory.Acquire("documents")
//	if err != nil {
//	    return err
//	}
//	defer lease.Release()
//	exists, err := lease.Client().BucketExists(ctx, lease.Bucket())
package storage
