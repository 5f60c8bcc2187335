package storage

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrClosed is returned by Acquire after the factory has been shut down.
var ErrClosed = errors.New("storage factory is closed")

// Factory hands out bucket-scoped leases over one shared, pooled client.
// The underlying Minio client is stateless and safe for concurrent use, so
// leases for different buckets share the connection pool but no mutable
// state. The factory is the single owner of the pool: it is created once at
// startup and torn down once at shutdown via Close.
type Factory struct {
	client    Client
	transport *http.Transport

	mu     sync.Mutex
	closed bool
	leases map[string]int
}

// NewFactory wraps an existing client, typically a mock in tests.
func NewFactory(client Client) *Factory {
	return &Factory{
		client: client,
		leases: make(map[string]int),
	}
}

// Open builds the shared client from configuration and returns a factory
// owning its connection pool.
func Open(cfg Config) (*Factory, error) {
	client, transport, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	f := NewFactory(client)
	f.transport = transport
	return f, nil
}

// Lease is a scoped client handle bound to one bucket. Release is safe to
// call more than once and must run on every exit path, typically deferred
// immediately after a successful Acquire.
type Lease struct {
	bucket  string
	client  Client
	factory *Factory
	once    sync.Once
}

// Client returns the shared storage client.
func (l *Lease) Client() Client { return l.client }

// Bucket returns the bucket this lease is bound to.
func (l *Lease) Bucket() string { return l.bucket }

// Release returns the lease to the factory. Idempotent.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.factory.release(l.bucket)
	})
}

// Acquire returns a lease bound to the named bucket.
func (f *Factory) Acquire(bucket string) (*Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClosed
	}
	f.leases[bucket]++
	return &Lease{bucket: bucket, client: f.client, factory: f}, nil
}

func (f *Factory) release(bucket string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.leases[bucket] <= 1 {
		delete(f.leases, bucket)
		return
	}
	f.leases[bucket]--
}

// Outstanding reports the number of leases not yet released.
func (f *Factory) Outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.leases {
		total += n
	}
	return total
}

// Close shuts down the connection pool. It reports an error when leases are
// still outstanding, which indicates a missing Release somewhere.
func (f *Factory) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	leaked := 0
	for _, n := range f.leases {
		leaked += n
	}
	f.mu.Unlock()

	if f.transport != nil {
		f.transport.CloseIdleConnections()
	}
	if leaked > 0 {
		return fmt.Errorf("storage factory closed with %d unreleased leases", leaked)
	}
	return nil
}
