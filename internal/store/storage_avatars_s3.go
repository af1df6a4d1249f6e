package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// seams for tests
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

type s3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// s3AvatarStorage keeps avatars in a single bucket of an S3-compatible store.
type s3AvatarStorage struct {
	bucket    string
	client    s3Putter
	presigner s3Presigner
	logger    *logger.Logger
}

// NewS3AvatarStorage builds the storage from cfg. A non-empty Endpoint
// switches to path-style addressing for MinIO and similar servers. Static
// credentials are used when both keys are set, otherwise the default AWS
// credential chain applies.
func NewS3AvatarStorage(ctx context.Context, cfg config.Avatars, log *logger.Logger) (AvatarStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3AvatarStorage").Msg("failed to load aws config")
		return nil, fmt.Errorf("%w: loading aws config: %w", ErrUpstream, err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("func", "NewS3AvatarStorage").Str("bucket", cfg.Bucket).Msg("avatar storage configured")

	return &s3AvatarStorage{
		bucket:    cfg.Bucket,
		client:    client,
		presigner: s3.NewPresignClient(client),
		logger:    log,
	}, nil
}

func (s *s3AvatarStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Err(err).Str("func", "s3AvatarStorage.Put").Str("key", key).Msg("failed to upload avatar")
		return fmt.Errorf("%w: put object: %w", ErrUpstream, err)
	}

	return nil
}

func (s *s3AvatarStorage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	log := logger.FromContext(ctx)

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		log.Err(err).Str("func", "s3AvatarStorage.SignedURL").Str("key", key).Msg("failed to sign avatar url")
		return "", fmt.Errorf("%w: presign: %w", ErrUpstream, err)
	}

	return req.URL, nil
}
