package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"bjjh_cleaning_backend/internals/configs"
)

// OSSStorage is the Aliyun OSS backend, used when the app is deployed in
// environments without a MinIO instance.
type OSSStorage struct {
	Client *oss.Client
	Bucket *oss.Bucket
}

func NewOSSStorageFromEnv() (*OSSStorage, error) {
	endpoint := configs.GetEnv("ALI_OSS_ENDPOINT")
	ak := configs.GetEnv("ALI_OSS_ACCESS_KEY")
	sk := configs.GetEnv("ALI_OSS_SECRET_KEY")
	if endpoint == "" || ak == "" || sk == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(configs.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return &OSSStorage{Client: client, Bucket: bkt}, nil
}

func (s *OSSStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.Client.IsBucketExist(s.Bucket.BucketName)
	if err != nil {
		return err
	}
	if !exists {
		return s.Client.CreateBucket(s.Bucket.BucketName)
	}
	return nil
}

func (s *OSSStorage) PresignedPutObject(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return s.Bucket.SignURL(key, oss.HTTPPut, int64(expiry/time.Second))
}

func (s *OSSStorage) PresignedGetObject(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return s.Bucket.SignURL(key, oss.HTTPGet, int64(expiry/time.Second))
}

func (s *OSSStorage) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return s.Bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
	)
}

func (s *OSSStorage) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Bucket.GetObject(key, oss.WithContext(ctx))
}

func (s *OSSStorage) RemoveObjects(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.Bucket.DeleteObjects(keys, oss.WithContext(ctx))
	return err
}
