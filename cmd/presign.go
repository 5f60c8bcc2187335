package cmd

import (
	"fmt"
	"time"

	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/spf13/cobra"
)

var (
	presignExpiry      time.Duration
	presignContentType string
)

var presignCmd = &cobra.Command{
	Use:   "presign <put|get> <key>",
	Short: "Issue a time-limited URL for a direct upload or download",
	Long: `Issues a presigned URL so a client can transfer the object directly
against the storage server, without this application in the data path. The
URL stops working once the expiry elapses.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		svc, err := app.service(bucketFlag)
		if err != nil {
			return err
		}

		ctx, cancel := opContext()
		defer cancel()

		switch args[0] {
		case "put":
			u, err := svc.PresignUpload(ctx, files.PresignUploadRequest{
				Key:         args[1],
				Expiry:      presignExpiry,
				ContentType: presignContentType,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
		case "get":
			u, err := svc.PresignDownload(ctx, files.PresignDownloadRequest{
				Key:    args[1],
				Expiry: presignExpiry,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
		default:
			return fmt.Errorf("unknown presign direction %q (expected put or get)", args[0])
		}
		return nil
	},
}

func init() {
	presignCmd.Flags().DurationVar(&presignExpiry, "expiry", 0, "how long the URL stays valid (default 5m)")
	presignCmd.Flags().StringVar(&presignContentType, "content-type", "", "content type the upload must use (put only)")
	RootCmd.AddCommand(presignCmd)
}
