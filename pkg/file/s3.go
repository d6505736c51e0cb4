package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of *s3.Client used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage keeps resumes in a bucket on AWS or an S3-compatible service.
// It is safe for concurrent use.
type S3Storage struct {
	client        S3Client
	bucket        string
	baseURL       string
	uploadTimeout time.Duration
}

// S3Config is loaded from S3_* variables. Endpoint and ForcePathStyle are
// for MinIO and similar services. BaseURL overrides the public URL prefix.
type S3Config struct {
	Bucket         string        `env:"S3_BUCKET"`
	Region         string        `env:"S3_REGION" envDefault:"us-west-1"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`
	BaseURL        string        `env:"S3_PUBLIC_URL"`
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE"`
	UploadTimeout  time.Duration `env:"S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}

// S3Option configures NewS3Storage.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	clientOptions []func(*s3.Options)
}

// WithS3Client skips AWS config loading and uses client as is.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// WithS3ClientOption adjusts the client built from S3Config.
func WithS3ClientOption(fn func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.clientOptions = append(o.clientOptions, fn)
	}
}

// NewS3Storage builds an S3 client from cfg unless WithS3Client is given.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	var o s3Options
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		var err error
		if client, err = newS3Client(ctx, cfg, o.clientOptions); err != nil {
			return nil, err
		}
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		baseURL:       publicBaseURL(cfg),
		uploadTimeout: cfg.UploadTimeout,
	}, nil
}

func newS3Client(ctx context.Context, cfg S3Config, extra []func(*s3.Options)) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadConfig, err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
		for _, fn := range extra {
			fn(o)
		}
	}), nil
}

// publicBaseURL always ends in a slash.
func publicBaseURL(cfg S3Config) string {
	base := cfg.BaseURL
	switch {
	case base != "":
	case cfg.Endpoint != "":
		base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return strings.TrimSuffix(base, "/") + "/"
}

// s3ErrorCodes maps API error codes to package errors.
var s3ErrorCodes = map[string]error{
	"AccessDenied":       ErrAccessDenied,
	"RequestTimeout":     ErrRequestTimeout,
	"SlowDown":           ErrServiceUnavailable,
	"ServiceUnavailable": ErrServiceUnavailable,
	"NoSuchKey":          ErrFileNotFound,
	"NotFound":           ErrFileNotFound,
	"NoSuchBucket":       ErrBucketNotFound,
}

// classifyS3Error wraps err with the matching package error. The original
// error stays in the chain.
func classifyS3Error(err error, op string) error {
	var (
		nsk    *types.NoSuchKey
		nsb    *types.NoSuchBucket
		apiErr smithy.APIError
		kind   error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = ErrOperationTimeout
	case errors.Is(err, context.Canceled):
		kind = ErrOperationCanceled
	case errors.As(err, &nsk):
		kind = ErrFileNotFound
	case errors.As(err, &nsb):
		kind = ErrBucketNotFound
	case errors.As(err, &apiErr):
		kind = s3ErrorCodes[apiErr.ErrorCode()]
	}
	if kind == nil {
		return fmt.Errorf("s3 %s: %w", op, err)
	}
	return fmt.Errorf("s3 %s: %w", op, errors.Join(kind, err))
}

// objectKey turns a storage path into a bucket key. Keys never start with a
// slash and never climb out of the bucket root.
func objectKey(name string) (string, error) {
	key := strings.TrimPrefix(path.Clean("/"+name), "/")
	if key == "" || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return key, nil
}

// Save uploads fh under name. Resumes are served inline with the stored
// file name.
func (s *S3Storage) Save(ctx context.Context, fh *multipart.FileHeader, name string) (*File, error) {
	if fh == nil {
		return nil, ErrNilFileHeader
	}
	key, err := objectKey(name)
	if err != nil {
		return nil, err
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	meta := inspect(fh, fh.Size, key, "")
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               src,
		ContentLength:      aws.Int64(fh.Size),
		ContentType:        aws.String(meta.MIMEType),
		ContentDisposition: aws.String(fmt.Sprintf("inline; filename=%q", path.Base(key))),
	}); err != nil {
		return nil, classifyS3Error(err, "put")
	}

	return meta, nil
}

// Delete removes one object. A missing object is ErrFileNotFound.
func (s *S3Storage) Delete(ctx context.Context, name string) error {
	key, err := objectKey(name)
	if err != nil {
		return err
	}
	if err := s.head(ctx, key); err != nil {
		return err
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "delete")
	}
	return nil
}

func (s *S3Storage) Exists(ctx context.Context, name string) bool {
	key, err := objectKey(name)
	return err == nil && s.head(ctx, key) == nil
}

func (s *S3Storage) URL(name string) string {
	return s.baseURL + strings.TrimPrefix(name, "/")
}

func (s *S3Storage) head(ctx context.Context, key string) error {
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return classifyS3Error(err, "head")
	}
	return nil
}
