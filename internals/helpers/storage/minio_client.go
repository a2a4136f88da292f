package storage

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bjjh_cleaning_backend/internals/configs"
)

type MinioStorage struct {
	Client *minio.Client
	Bucket string
}

func NewMinioStorageFromEnv() (*MinioStorage, error) {
	endpoint := configs.GetEnv("MINIO_ENDPOINT")
	port := configs.GetEnv("MINIO_PORT", "9000")
	accessKey := configs.GetEnv("MINIO_ACCESS_KEY")
	secretKey := configs.GetEnv("MINIO_SECRET_KEY")
	useSSL, _ := strconv.ParseBool(configs.GetEnv("MINIO_USE_SSL", "false"))

	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing env: MINIO_ENDPOINT/MINIO_ACCESS_KEY/MINIO_SECRET_KEY")
	}

	client, err := minio.New(endpoint+":"+port, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New: %w", err)
	}

	return &MinioStorage{
		Client: client,
		Bucket: configs.StorageBucket,
	}, nil
}

func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.Client.MakeBucket(ctx, s.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *MinioStorage) PresignedPutObject(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.Client.PresignedPutObject(ctx, s.Bucket, key, expiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *MinioStorage) PresignedGetObject(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.Client.PresignedGetObject(ctx, s.Bucket, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *MinioStorage) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.Client.PutObject(ctx, s.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStorage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
}

func (s *MinioStorage) RemoveObjects(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := s.Client.RemoveObject(ctx, s.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return err
		}
	}
	return nil
}
