// Package storage uploads product images to S3 and returns a public URL.
// The backend is treated as an opaque collaborator: blob in, URL or error
// out.
package storage

import (
	"bytes"
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/threadcount/retailops/internal/config"
)

// Uploader wraps the S3 client. A zero-bucket configuration leaves the
// uploader disabled; callers get a descriptive error instead of a panic.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewUploader builds an uploader from configuration. Returns a disabled
// uploader when no bucket is configured.
func NewUploader(ctx context.Context, cfg config.UploadConfig) (*Uploader, error) {
	if cfg.Bucket == "" {
		return &Uploader{}, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &Uploader{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.Bucket,
		publicBaseURL: base,
	}, nil
}

// Enabled reports whether uploads are configured
func (u *Uploader) Enabled() bool {
	return u != nil && u.client != nil && u.bucket != ""
}

// UploadImage stores the blob under key and returns its public URL.
func (u *Uploader) UploadImage(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !u.Enabled() {
		return "", fmt.Errorf("image uploads are not configured")
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return fmt.Sprintf("%s/%s", u.publicBaseURL, key), nil
}
