// Package blobstore stores uploaded chat files in an S3-compatible bucket.
// A custom endpoint supports MinIO and other S3 clones alongside AWS.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type BlobStore interface {
	// Upload stores the content under key and returns the object URL.
	Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
	// Download returns a reader over the object content. Missing objects
	// report found=false with a nil reader.
	Download(ctx context.Context, key string) (io.ReadCloser, bool, error)
	// Delete removes the object. Returns false when the object did not exist.
	Delete(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Endpoint  string // optional, for S3-compatible stores
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type s3Store struct {
	client *s3.Client
	bucket string
	// baseURL is what Upload returns; derived from endpoint or the AWS
	// virtual-hosted form.
	baseURL string
}

func NewS3Store(ctx context.Context, cfg Config) (BlobStore, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	var baseURL string
	if cfg.Endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
	} else {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &s3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload blob: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

func (s *s3Store) Download(ctx context.Context, key string) (io.ReadCloser, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("download blob: %w", err)
	}
	return out.Body, true, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) (bool, error) {
	// Probe first so the caller can distinguish a delete from a no-op.
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("probe blob: %w", err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, fmt.Errorf("delete blob: %w", err)
	}
	return true, nil
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
}
