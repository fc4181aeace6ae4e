package testutils

import (
	"bytes"
	"context"
	"fmt"

	minioClient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"

	"gallery-viewer/internal/config"
	"gallery-viewer/internal/platform/storage"
)

// TestContainers manages the object storage container used by integration tests
type TestContainers struct {
	MinioContainer testcontainers.Container
	MinioClient    *storage.MinIOClient
	MinioEndpoint  string
	MinioUsername  string
	MinioPassword  string
	BucketName     string

	admin *minioClient.Client
}

// SetupTestContainers starts MinIO, creates the test bucket and connects
// the gallery storage client to it
func SetupTestContainers(ctx context.Context) (*TestContainers, error) {
	tc := &TestContainers{
		MinioUsername: "testuser",
		MinioPassword: "testpass123",
		BucketName:    "test-gallery",
	}

	if err := tc.setupMinio(ctx); err != nil {
		_ = tc.Cleanup(ctx) //nolint:errcheck // best effort cleanup
		return nil, fmt.Errorf("failed to setup minio container: %w", err)
	}

	return tc, nil
}

// setupMinio creates and starts a MinIO test container
func (tc *TestContainers) setupMinio(ctx context.Context) error {
	minioContainer, err := minio.Run(ctx,
		"minio/minio:latest",
		minio.WithUsername(tc.MinioUsername),
		minio.WithPassword(tc.MinioPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to start minio container: %w", err)
	}

	tc.MinioContainer = minioContainer

	endpoint, err := minioContainer.ConnectionString(ctx)
	if err != nil {
		return fmt.Errorf("failed to get minio endpoint: %w", err)
	}

	tc.MinioEndpoint = endpoint

	admin, err := minioClient.New(endpoint, &minioClient.Options{
		Creds:  credentials.NewStaticV4(tc.MinioUsername, tc.MinioPassword, ""),
		Secure: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}
	tc.admin = admin

	// The gallery client is read-only, so the bucket is created up front
	if err := admin.MakeBucket(ctx, tc.BucketName, minioClient.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create test bucket: %w", err)
	}

	storageClient, err := storage.NewMinIOClient(ctx, tc.StorageConfig())
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	tc.MinioClient = storageClient
	return nil
}

// StorageConfig returns a storage configuration pointing at the container
func (tc *TestContainers) StorageConfig() config.StorageConfig {
	return config.StorageConfig{
		Endpoint:        tc.MinioEndpoint,
		AccessKeyID:     tc.MinioUsername,
		SecretAccessKey: tc.MinioPassword,
		UseSSL:          false,
		BucketName:      tc.BucketName,
		Region:          "us-east-1",
	}
}

// PutObject uploads data with optional user metadata
func (tc *TestContainers) PutObject(ctx context.Context, key, contentType string, data []byte, meta map[string]string) error {
	_, err := tc.admin.PutObject(ctx, tc.BucketName, key, bytes.NewReader(data), int64(len(data)), minioClient.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: meta,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Cleanup terminates the container
func (tc *TestContainers) Cleanup(ctx context.Context) error {
	if tc.MinioContainer != nil {
		if err := tc.MinioContainer.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate minio container: %w", err)
		}
	}
	return nil
}
