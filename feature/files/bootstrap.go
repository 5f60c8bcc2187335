package files

import (
	"context"
	"fmt"

	"github.com/Sierra-Arn/minio-core/core/logger"
	"github.com/Sierra-Arn/minio-core/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"go.uber.org/zap"
)

// EnsureBucket guarantees the service's bucket exists and that its
// expiration policy matches the configured retention. It is idempotent and
// safe to run concurrently from multiple processes: bucket creation
// tolerates the create/create race, and policy reconciliation is
// last-writer-wins. A failure wraps ErrBootstrap and must be treated as
// startup-fatal; the system must not serve traffic over an unverified
// bucket.
func (s *Service) EnsureBucket(ctx context.Context) error {
	lease, err := s.factory.Acquire(s.bucket.Name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBootstrap, err)
	}
	defer lease.Release()

	log := logger.Op(s.logger, s.bucket.Name, "bootstrap")

	exists, err := lease.Client().BucketExists(ctx, s.bucket.Name)
	if err != nil {
		return fmt.Errorf("%w: checking bucket existence: %v", ErrBootstrap, err)
	}
	if !exists {
		err := lease.Client().MakeBucket(ctx, s.bucket.Name, minio.MakeBucketOptions{})
		if err != nil && !bucketAlreadyExists(err) {
			return fmt.Errorf("%w: creating bucket: %v", ErrBootstrap, err)
		}
		if err == nil {
			log.Info("Bucket created")
		}
	}

	// Retention of zero means no expiration policy is managed for this
	// bucket; an existing policy is left untouched.
	if s.bucket.RetentionDays <= 0 {
		return nil
	}
	return s.reconcileLifecycle(ctx, lease.Client(), log)
}

func (s *Service) reconcileLifecycle(ctx context.Context, client storage.Client, log *zap.Logger) error {
	days := s.bucket.RetentionDays

	current, err := client.GetBucketLifecycle(ctx, s.bucket.Name)
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchLifecycleConfiguration" {
		return fmt.Errorf("%w: reading lifecycle: %v", ErrBootstrap, err)
	}
	if expirationMatches(current, days) {
		log.Debug("Lifecycle policy already matches retention", zap.Int("retention_days", days))
		return nil
	}

	desired := lifecycle.NewConfiguration()
	desired.Rules = []lifecycle.Rule{
		{
			ID:     fmt.Sprintf("auto-delete-after-%d-days", days),
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(days),
			},
		},
	}
	if err := client.SetBucketLifecycle(ctx, s.bucket.Name, desired); err != nil {
		return fmt.Errorf("%w: setting lifecycle: %v", ErrBootstrap, err)
	}
	log.Info("Lifecycle policy set", zap.Int("retention_days", days))
	return nil
}

// expirationMatches reports whether the current configuration already holds
// an enabled whole-bucket expiration rule for the given number of days.
func expirationMatches(cfg *lifecycle.Configuration, days int) bool {
	if cfg == nil {
		return false
	}
	for _, rule := range cfg.Rules {
		if rule.Status != "Enabled" {
			continue
		}
		if rule.RuleFilter.Prefix != "" {
			continue
		}
		if int(rule.Expiration.Days) == days {
			return true
		}
	}
	return false
}

func bucketAlreadyExists(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return true
	}
	return false
}
