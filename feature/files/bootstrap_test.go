package files_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Sierra-Arn/minio-core/core/storage/mocks"
	"github.com/Sierra-Arn/minio-core/feature/files"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func noLifecycle() minio.ErrorResponse {
	return minio.ErrorResponse{Code: "NoSuchLifecycleConfiguration", StatusCode: 404}
}

func lifecycleWithDays(days int) *lifecycle.Configuration {
	cfg := lifecycle.NewConfiguration()
	cfg.Rules = []lifecycle.Rule{
		{
			ID:         "existing-rule",
			Status:     "Enabled",
			Expiration: lifecycle.Expiration{Days: lifecycle.ExpirationDays(days)},
		},
	}
	return cfg
}

func TestEnsureBucket(t *testing.T) {
	t.Run("CreatesMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		bucket := documentsBucket()
		bucket.RetentionDays = 0
		svc, _ := newTestService(client, bucket)

		client.On("BucketExists", mock.Anything, "documents").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "documents", mock.Anything).Return(nil)

		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
		// No retention configured, so the lifecycle is never touched.
		client.AssertNumberOfCalls(t, "GetBucketLifecycle", 0)
		client.AssertNumberOfCalls(t, "SetBucketLifecycle", 0)
	})

	t.Run("ToleratesCreateRace", func(t *testing.T) {
		client := new(mocks.Client)
		bucket := documentsBucket()
		bucket.RetentionDays = 0
		svc, _ := newTestService(client, bucket)

		client.On("BucketExists", mock.Anything, "documents").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "documents", mock.Anything).
			Return(minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou", StatusCode: 409})

		assert.NoError(t, svc.EnsureBucket(context.Background()))
	})

	t.Run("SetsLifecycleWhenAbsent", func(t *testing.T) {
		client := new(mocks.Client)
		svc, _ := newTestService(client, documentsBucket()) // 7 day retention

		client.On("BucketExists", mock.Anything, "documents").Return(true, nil)
		client.On("GetBucketLifecycle", mock.Anything, "documents").Return(nil, noLifecycle())
		client.On("SetBucketLifecycle", mock.Anything, "documents", mock.MatchedBy(func(cfg *lifecycle.Configuration) bool {
			return len(cfg.Rules) == 1 &&
				cfg.Rules[0].ID == "auto-delete-after-7-days" &&
				cfg.Rules[0].Status == "Enabled" &&
				int(cfg.Rules[0].Expiration.Days) == 7
		})).Return(nil)

		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("IdempotentWhenPolicyMatches", func(t *testing.T) {
		client := new(mocks.Client)
		svc, _ := newTestService(client, documentsBucket())

		client.On("BucketExists", mock.Anything, "documents").Return(true, nil)
		client.On("GetBucketLifecycle", mock.Anything, "documents").Return(lifecycleWithDays(7), nil)

		// Running twice in succession neither errors nor rewrites the policy.
		require.NoError(t, svc.EnsureBucket(context.Background()))
		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertNumberOfCalls(t, "SetBucketLifecycle", 0)
	})

	t.Run("ReconcilesChangedRetention", func(t *testing.T) {
		client := new(mocks.Client)
		svc, _ := newTestService(client, documentsBucket())

		client.On("BucketExists", mock.Anything, "documents").Return(true, nil)
		client.On("GetBucketLifecycle", mock.Anything, "documents").Return(lifecycleWithDays(30), nil)
		client.On("SetBucketLifecycle", mock.Anything, "documents", mock.MatchedBy(func(cfg *lifecycle.Configuration) bool {
			return len(cfg.Rules) == 1 && int(cfg.Rules[0].Expiration.Days) == 7
		})).Return(nil)

		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("UnreachableServerIsFatal", func(t *testing.T) {
		client := new(mocks.Client)
		svc, _ := newTestService(client, documentsBucket())

		client.On("BucketExists", mock.Anything, "documents").
			Return(false, errors.New("connection refused"))

		err := svc.EnsureBucket(context.Background())
		assert.ErrorIs(t, err, files.ErrBootstrap)
	})

	t.Run("RejectedPolicyIsFatal", func(t *testing.T) {
		client := new(mocks.Client)
		svc, _ := newTestService(client, documentsBucket())

		client.On("BucketExists", mock.Anything, "documents").Return(true, nil)
		client.On("GetBucketLifecycle", mock.Anything, "documents").Return(nil, noLifecycle())
		client.On("SetBucketLifecycle", mock.Anything, "documents", mock.Anything).
			Return(minio.ErrorResponse{Code: "MalformedXML", StatusCode: 400})

		err := svc.EnsureBucket(context.Background())
		assert.ErrorIs(t, err, files.ErrBootstrap)
	})
}
