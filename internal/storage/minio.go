package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinioStore keeps blobs in a single MinIO bucket.
type MinioStore struct {
	client *minioSDK.Client
	bucket string
}

// NewMinioStore connects to MinIO and creates the bucket when missing.
func NewMinioStore(ctx context.Context, cfg MinioConfig, log *zap.Logger) (*MinioStore, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}
	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info("bucket created", zap.String("bucket", cfg.Bucket))
	} else {
		log.Info("bucket already exists", zap.String("bucket", cfg.Bucket))
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStore) Store(ctx context.Context, r io.Reader, size int64, originalName string) (Object, error) {
	key := NewKey(originalName)
	contentType := contentTypeFor(originalName)
	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"original-filename": originalName},
	})
	if err != nil {
		return Object{}, fmt.Errorf("put object: %w", err)
	}
	return Object{
		Key:          key,
		URL:          URLFor(key),
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         info.Size,
	}, nil
}

func (s *MinioStore) Open(ctx context.Context, key string) (io.ReadCloser, Object, error) {
	if !validKey(key) {
		return nil, Object{}, ErrObjectNotFound
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, Object{}, translateMinioErr(err)
	}
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, Object{}, translateMinioErr(err)
	}
	return obj, Object{
		Key:          key,
		URL:          URLFor(key),
		OriginalName: stat.UserMetadata["Original-Filename"],
		ContentType:  stat.ContentType,
		Size:         stat.Size,
	}, nil
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return ErrObjectNotFound
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minioSDK.RemoveObjectOptions{})
}

func translateMinioErr(err error) error {
	if minioSDK.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return err
}
