package cmd

import (
	"fmt"

	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/spf13/cobra"
)

var lsPrefix string

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List objects in the target bucket",
	Long: `Lists objects under the given prefix. The listing is streamed page by
page from the storage server, so large buckets are never held in memory.`,
	Args: cobra.NoArgs,
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

		entries, err := svc.List(ctx, files.ListRequest{Prefix: lsPrefix})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for entry := range entries {
			if entry.Err != nil {
				return entry.Err
			}
			fmt.Fprintf(out, "%12d  %s\n", entry.Object.Size, entry.Object.Key)
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&lsPrefix, "prefix", "", "only list keys under this prefix")
	RootCmd.AddCommand(lsCmd)
}
