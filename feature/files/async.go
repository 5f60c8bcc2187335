package files

import (
	"context"
	"io"
	"net/url"
)

// Result types for the suspending model. Each pairs one operation's outcome
// with its error, delivered once on a buffered channel.
type (
	UploadResult struct {
		Metadata ObjectMetadata
		Err      error
	}
	DownloadResult struct {
		Body io.ReadCloser
		Err  error
	}
	DeleteResult struct {
		Existed bool
		Err     error
	}
	StatResult struct {
		Metadata ObjectMetadata
		Err      error
	}
	ListResult struct {
		Entries <-chan ListEntry
		Err     error
	}
	PresignResult struct {
		URL *url.URL
		Err error
	}
)

// Async is the suspending fulfillment of the operation set. It wraps a
// blocking fulfillment and runs each operation on its own goroutine; the
// caller receives a channel that yields exactly one result. Cancellation and
// timeouts flow through the context, and the wrapped operation releases its
// lease on every path, so an abandoned channel never leaks resources.
//
// Both execution models expose functionally identical operations; callers
// pick one at composition time:
//
//	svc := files.NewService(factory, cfg.Buckets.Documents, log)
//	async := files.NewAsync(svc)
type Async struct {
	ops Operations
}

// NewAsync wraps a blocking operation set in the suspending model.
func NewAsync(ops Operations) *Async {
	return &Async{ops: ops}
}

func (a *Async) Upload(ctx context.Context, req UploadRequest) <-chan UploadResult {
	ch := make(chan UploadResult, 1)
	go func() {
		defer close(ch)
		meta, err := a.ops.Upload(ctx, req)
		ch <- UploadResult{Metadata: meta, Err: err}
	}()
	return ch
}

func (a *Async) Download(ctx context.Context, req DownloadRequest) <-chan DownloadResult {
	ch := make(chan DownloadResult, 1)
	go func() {
		defer close(ch)
		body, err := a.ops.Download(ctx, req)
		ch <- DownloadResult{Body: body, Err: err}
	}()
	return ch
}

func (a *Async) Delete(ctx context.Context, req DeleteRequest) <-chan DeleteResult {
	ch := make(chan DeleteResult, 1)
	go func() {
		defer close(ch)
		existed, err := a.ops.Delete(ctx, req)
		ch <- DeleteResult{Existed: existed, Err: err}
	}()
	return ch
}

func (a *Async) Stat(ctx context.Context, req StatRequest) <-chan StatResult {
	ch := make(chan StatResult, 1)
	go func() {
		defer close(ch)
		meta, err := a.ops.Stat(ctx, req)
		ch <- StatResult{Metadata: meta, Err: err}
	}()
	return ch
}

func (a *Async) List(ctx context.Context, req ListRequest) <-chan ListResult {
	ch := make(chan ListResult, 1)
	go func() {
		defer close(ch)
		entries, err := a.ops.List(ctx, req)
		ch <- ListResult{Entries: entries, Err: err}
	}()
	return ch
}

func (a *Async) PresignUpload(ctx context.Context, req PresignUploadRequest) <-chan PresignResult {
	ch := make(chan PresignResult, 1)
	go func() {
		defer close(ch)
		u, err := a.ops.PresignUpload(ctx, req)
		ch <- PresignResult{URL: u, Err: err}
	}()
	return ch
}

func (a *Async) PresignDownload(ctx context.Context, req PresignDownloadRequest) <-chan PresignResult {
	ch := make(chan PresignResult, 1)
	go func() {
		defer close(ch)
		u, err := a.ops.PresignDownload(ctx, req)
		ch <- PresignResult{URL: u, Err: err}
	}()
	return ch
}
