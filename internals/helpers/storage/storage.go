package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"bjjh_cleaning_backend/internals/configs"
)

// ObjectStorage is the storage backend behind evidence photos. The core only
// ever passes opaque keys through; it never inspects file bytes.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	PresignedPutObject(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignedGetObject(ctx context.Context, key string, expiry time.Duration) (string, error)
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	RemoveObjects(ctx context.Context, keys []string) error
}

// NewFromEnv selects the backend once at startup from explicit configuration.
func NewFromEnv() (ObjectStorage, error) {
	switch configs.StorageDriver {
	case "minio":
		return NewMinioStorageFromEnv()
	case "oss":
		return NewOSSStorageFromEnv()
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want minio or oss)", configs.StorageDriver)
	}
}
