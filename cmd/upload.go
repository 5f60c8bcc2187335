package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	uploadKey         string
	uploadContentType string
	uploadUnique      bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file> [file...]",
	Short: "Upload local files to the target bucket",
	Long: `Uploads one or more local files. The object key defaults to the file's
base name; --unique prefixes it with a generated id to avoid overwriting.
Files are uploaded concurrently through the non-blocking operation surface.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if uploadKey != "" && len(args) > 1 {
			return fmt.Errorf("--key can only be used with a single file")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		svc, err := app.service(bucketFlag)
		if err != nil {
			return err
		}
		async := files.NewAsync(svc)

		ctx, cancel := opContext()
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(4)
		for _, path := range args {
			g.Go(func() error {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()

				info, err := f.Stat()
				if err != nil {
					return err
				}

				key := uploadKey
				if key == "" {
					key = filepath.Base(path)
				}
				if uploadUnique {
					key = uuid.NewString() + "-" + key
				}

				res := <-async.Upload(ctx, files.UploadRequest{
					Key:         key,
					Body:        f,
					Size:        info.Size(),
					ContentType: detectContentType(path),
				})
				if res.Err != nil {
					return fmt.Errorf("%s: %w", path, res.Err)
				}

				app.log.Info("Uploaded",
					zap.String("bucket", svc.Bucket()),
					zap.String("key", res.Metadata.Key),
					zap.Int64("size", res.Metadata.Size),
				)
				return nil
			})
		}
		return g.Wait()
	},
}

func detectContentType(path string) string {
	if uploadContentType != "" {
		return uploadContentType
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		return "application/octet-stream"
	}
	// Drop parameters like "; charset=utf-8" so the type matches allow-lists.
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

func init() {
	uploadCmd.Flags().StringVar(&uploadKey, "key", "", "object key (single file only; defaults to the file name)")
	uploadCmd.Flags().StringVar(&uploadContentType, "content-type", "", "content type (defaults to a guess from the file extension)")
	uploadCmd.Flags().BoolVar(&uploadUnique, "unique", false, "prefix the key with a generated id")
	RootCmd.AddCommand(uploadCmd)
}
