package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// BlobStore is the object-storage surface the files usecase depends on.
type BlobStore interface {
	Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, paths []string) error
	SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// MinioStore implements BlobStore on a MinIO bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(client *minio.Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

func (s *MinioStore) Upload(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", path, err)
	}
	return nil
}

func (s *MinioStore) Remove(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove object %s: %w", path, err)
		}
	}
	return nil
}

// SignedURL issues a time-limited download URL for the object.
func (s *MinioStore) SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)
	signed, err := s.client.PresignedGetObject(ctx, s.bucket, path, expiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", path, err)
	}
	return signed.String(), nil
}
