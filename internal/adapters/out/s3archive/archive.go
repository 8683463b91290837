// Package s3archive copies processed delivery photos to an S3-compatible
// bucket (AWS S3, MinIO, LocalStack).
package s3archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the bucket settings. AccessKey and SecretKey are optional;
// without them the default AWS credential chain is used.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Optional custom endpoint (for MinIO, LocalStack, etc.)
	AccessKey string
	SecretKey string
	Prefix    string // Optional key prefix, e.g. "entregas/"
}

// putObjectAPI is the subset of *s3.Client used by Archive.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archive implements ports.PhotoArchive.
type Archive struct {
	client putObjectAPI
	bucket string
	prefix string
}

// New creates an archive backed by a real S3 client.
func New(ctx context.Context, cfg Config) (*Archive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newArchive(client, cfg.Bucket, cfg.Prefix), nil
}

func newArchive(client putObjectAPI, bucket, prefix string) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key used for the photo at localPath.
func (a *Archive) Key(localPath string) string {
	return path.Join(a.prefix, filepath.Base(localPath))
}

// Archive uploads the file at localPath.
func (a *Archive) Archive(ctx context.Context, localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read photo: %w", err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(a.Key(localPath)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("s3 put failed: %w", err)
	}

	return nil
}
