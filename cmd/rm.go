package cmd

import (
	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Delete an object from the target bucket",
	Long: `Deletes the object under the given key. Deleting a key that does not
exist is not an error; the command reports whether anything was removed.`,
	Args: cobra.ExactArgs(1),
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

		existed, err := svc.Delete(ctx, files.DeleteRequest{Key: args[0]})
		if err != nil {
			return err
		}
		if existed {
			app.log.Info("Object removed", zap.String("bucket", svc.Bucket()), zap.String("key", args[0]))
		} else {
			app.log.Info("Object did not exist", zap.String("bucket", svc.Bucket()), zap.String("key", args[0]))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rmCmd)
}
