package cmd

import (
	"fmt"

	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat <key>",
	Short: "Show object metadata without downloading the body",
	Args:  cobra.ExactArgs(1),
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

		meta, err := svc.Stat(ctx, files.StatRequest{Key: args[0]})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Key:           %s\n", meta.Key)
		fmt.Fprintf(out, "Size:          %d\n", meta.Size)
		fmt.Fprintf(out, "Content-Type:  %s\n", meta.ContentType)
		fmt.Fprintf(out, "ETag:          %s\n", meta.ETag)
		fmt.Fprintf(out, "Last-Modified: %s\n", meta.LastModified)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statCmd)
}
