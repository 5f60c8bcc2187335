package cmd

import (
	"context"
	"fmt"

	"github.com/Sierra-Arn/minio-core/core/config"
	"github.com/Sierra-Arn/minio-core/core/logger"
	"github.com/Sierra-Arn/minio-core/core/storage"
	"github.com/Sierra-Arn/minio-core/feature/files"

	"go.uber.org/zap"
)

// app wires configuration, logger and the storage factory in the order every
// command needs them. The factory owns the process's one connection pool;
// Close tears it down.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	factory *storage.Factory
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	factory, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &app{cfg: cfg, log: log, factory: factory}, nil
}

func (a *app) Close() {
	if err := a.factory.Close(); err != nil {
		a.log.Warn("Storage shutdown reported an error", zap.Error(err))
	}
	_ = a.log.Sync()
}

func (a *app) bucketConfig(name string) (config.BucketConfig, error) {
	switch name {
	case "documents":
		return a.cfg.Buckets.Documents, nil
	case "images":
		return a.cfg.Buckets.Images, nil
	}
	return config.BucketConfig{}, fmt.Errorf("unknown bucket %q (expected documents or images)", name)
}

// service returns a file service bound to the bucket named by --bucket.
func (a *app) service(name string) (*files.Service, error) {
	bc, err := a.bucketConfig(name)
	if err != nil {
		return nil, err
	}
	return files.NewService(a.factory, bc, a.log), nil
}

// opContext derives the per-operation deadline from --timeout.
func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeoutFlag)
}
