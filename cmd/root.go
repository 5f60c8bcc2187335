package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Sierra-Arn/minio-core/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bucketFlag  string
	timeoutFlag time.Duration
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "minio-core",
	Short: "Object storage facade for fixed application buckets",
	Long: `minio-core manages a fixed set of buckets on an S3-compatible storage
server: it bootstraps buckets and their expiration policies and exposes
upload, download, delete, stat, list and presign operations against them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&bucketFlag, "bucket", "documents", "target bucket (documents or images)")
	RootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "deadline for each storage operation")
}
