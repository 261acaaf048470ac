package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-interactive-raytracer/pkg/core"
)

// DefaultUploadTimeout bounds a single upload
const DefaultUploadTimeout = 30 * time.Second

// S3Config describes an S3-compatible bucket
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`  // Empty for AWS, set for S3-compatible stores
	AccessKey string `yaml:"accessKey"` // Empty to use the default credential chain
	SecretKey string `yaml:"secretKey"`
	Prefix    string `yaml:"prefix"` // Prepended to every object key
}

// S3Uploader uploads rendered images to a bucket
type S3Uploader struct {
	client  s3iface.S3API
	bucket  string
	prefix  string
	Timeout time.Duration
	logger  core.Logger
}

// NewS3Uploader creates an uploader with its own AWS session
func NewS3Uploader(cfg S3Config, logger core.Logger) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3UploaderWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewS3UploaderWithClient creates an uploader around an existing client
func NewS3UploaderWithClient(client s3iface.S3API, bucket, prefix string, logger core.Logger) *S3Uploader {
	if logger == nil {
		logger = core.NopLogger()
	}
	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		Timeout: DefaultUploadTimeout,
		logger:  logger,
	}
}

// Upload encodes img as PNG with the same options a local Save would use
// and stores it under key
func (u *S3Uploader) Upload(ctx context.Context, key string, img image.Image, opts Options) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG, opts); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return u.UploadBytes(ctx, key, buf.Bytes(), FormatPNG.ContentType())
}

// UploadBytes stores already-encoded data under key
func (u *S3Uploader) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, u.Timeout)
	defer cancel()

	fullKey := u.prefix + key
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", fullKey, err)
	}

	u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", fullKey, u.bucket, size)
	return nil
}
