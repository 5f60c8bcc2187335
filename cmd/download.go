package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var downloadCmd = &cobra.Command{
	Use:   "download <key> [dest]",
	Short: "Download an object to a local file",
	Long: `Downloads the object and writes it to dest, which defaults to the key's
base name in the current directory. Use "-" as dest to write to stdout.`,
	Args: cobra.RangeArgs(1, 2),
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

		body, err := svc.Download(ctx, files.DownloadRequest{Key: args[0]})
		if err != nil {
			return err
		}
		defer body.Close()

		dest := filepath.Base(args[0])
		if len(args) == 2 {
			dest = args[1]
		}

		var out io.Writer
		if dest == "-" {
			out = cmd.OutOrStdout()
		} else {
			f, err := os.Create(dest)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		n, err := io.Copy(out, body)
		if err != nil {
			return err
		}
		if dest != "-" {
			app.log.Info("Downloaded",
				zap.String("bucket", svc.Bucket()),
				zap.String("key", args[0]),
				zap.String("dest", dest),
				zap.Int64("size", n),
			)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(downloadCmd)
}
