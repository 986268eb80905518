package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"papermark-backend/internal/config"
	"papermark-backend/internal/database/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Ensure MinIOStorage implements Storage
var _ Storage = (*MinIOStorage)(nil)

// MinIOStorage is a thin wrapper around the minio client
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage creates a MinIO client and makes sure the bucket exists
func NewMinIOStorage(ctx context.Context, cfg *config.Config) (*MinIOStorage, error) {
	if cfg.StorageEndpoint == "" {
		return nil, fmt.Errorf("minio endpoint missing")
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.StorageEndpoint, "https://"), "http://")

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
		Region: cfg.StorageRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}

	s := &MinIOStorage{client: mc, bucket: cfg.StorageBucket}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: cfg.StorageRegion}); err != nil {
		exists, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exists {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// Type returns the storage type recorded on documents
func (s *MinIOStorage) Type() models.StorageType {
	return models.StorageTypeMinIO
}

// Upload writes an object
func (s *MinIOStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Download opens an object for reading
func (s *MinIOStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// PresignGet returns a time limited download URL
func (s *MinIOStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, make(url.Values))
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}

// PresignPut returns a time limited upload URL
func (s *MinIOStorage) PresignPut(ctx context.Context, key, _ string, ttl time.Duration) (string, error) {
	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, key, ttl)
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}

// Delete removes an object
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
