package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"hirehub/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client implements domain.FileStore on top of S3 (or any S3-compatible
// provider via a custom endpoint).
type Client struct {
	s3       *s3.Client
	bucket   string
	region   string
	endpoint string
}

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string // optional, e.g. an S3-compatible provider
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("object storage credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("object storage bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		// S3-compatible providers need a custom endpoint and path-style
		// addressing.
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &Client{
		s3:       client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

// Upload stores the object publicly readable and returns its URL and key.
func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (*domain.UploadResult, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return &domain.UploadResult{URL: c.objectURL(key), Key: key}, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (c *Client) objectURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// ParseDataURI splits a "data:<content-type>;base64,<payload>" string into
// its content type and decoded bytes. A bare base64 payload is accepted
// and treated as application/octet-stream.
func ParseDataURI(dataURI string) (contentType string, data []byte, err error) {
	contentType = "application/octet-stream"
	payload := dataURI

	if strings.HasPrefix(dataURI, "data:") {
		header, rest, found := strings.Cut(dataURI[len("data:"):], ",")
		if !found {
			return "", nil, fmt.Errorf("invalid data URI")
		}
		if ct := strings.TrimSuffix(header, ";base64"); ct != "" {
			contentType = strings.TrimSpace(ct)
		}
		payload = rest
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return contentType, data, nil
}
