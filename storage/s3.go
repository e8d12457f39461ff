package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"eats-scraper/config"
)

// FeedArchive stores raw feed responses in S3-compatible storage so past
// scrapes stay inspectable after the parsed output is overwritten.
type FeedArchive struct {
	client *minio.Client
	bucket string
}

// NewFeedArchive connects to the MinIO endpoint described by cfg.
func NewFeedArchive(cfg config.EnvConfig) (*FeedArchive, error) {
	if cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" {
		return nil, fmt.Errorf("missing one or more required environment variables: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}
	bucket := cfg.ArchiveBucket
	if bucket == "" {
		bucket = "feed-archive"
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	log.Println("[FeedArchive] Connected to MinIO endpoint:", cfg.MinioEndpoint)
	return &FeedArchive{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the archive bucket when it does not exist yet.
func (a *FeedArchive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket existence: %v", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}
	return nil
}

// StoreRawFeed writes one raw response body under a timestamped key,
// partitioned by state and city.
func (a *FeedArchive) StoreRawFeed(ctx context.Context, city, state string, raw []byte) error {
	objectKey := fmt.Sprintf("raw_feeds/%s/%s/%s.json",
		sanitizeKey(state), sanitizeKey(city), time.Now().UTC().Format("20060102T150405Z"))

	_, err := a.client.PutObject(
		ctx,
		a.bucket,
		objectKey,
		bytes.NewReader(raw),
		int64(len(raw)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to store object in S3: %v", err)
	}

	log.Printf("[FeedArchive] Stored raw feed in bucket '%s' with key '%s'", a.bucket, objectKey)
	return nil
}

// sanitizeKey replaces spaces with hyphens and lowercases to build a
// valid object key segment.
func sanitizeKey(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ToLower(s)
	return s
}
