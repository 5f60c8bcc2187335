package cmd

import (
	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrapCmd ensures every configured bucket exists with its retention
// policy. It must succeed before any other command is meaningful; a failure
// here means the storage server is unreachable or rejected the policy.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Ensure all configured buckets and their expiration policies exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		for _, bucket := range app.cfg.Buckets.All() {
			svc := files.NewService(app.factory, bucket, app.log)

			ctx, cancel := opContext()
			err := svc.EnsureBucket(ctx)
			cancel()
			if err != nil {
				return err
			}
			app.log.Info("Bucket ready",
				zap.String("bucket", bucket.Name),
				zap.Int("retention_days", bucket.RetentionDays),
			)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bootstrapCmd)
}
