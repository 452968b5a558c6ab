package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

const (
	defaultPresignExpiryDuration = 15 * time.Minute
)

type Service interface {
	KeyPrefix() string
	PresignUpload(ctx context.Context, key, contentType string) (*PresignedURL, error)
	PresignDownload(ctx context.Context, key string) (*PresignedURL, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type s3ServiceImpl struct {
	client    *s3.Client
	presigner *s3.PresignClient
	config    *config.S3Config
}

// NewService returns nil when document storage is disabled
func NewService(cfg *config.Configuration) (Service, error) {
	if !cfg.S3.Enabled {
		return nil, nil
	}

	awsCfg, err := config.LoadAwsConfig(context.Background(), cfg.S3)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	client := s3.NewFromConfig(awsCfg)
	return &s3ServiceImpl{
		config:    &cfg.S3,
		client:    client,
		presigner: s3.NewPresignClient(client),
	}, nil
}

func (s *s3ServiceImpl) KeyPrefix() string {
	return s.config.KeyPrefix
}

func (s *s3ServiceImpl) expiry() time.Duration {
	if s.config.PresignExpiry <= 0 {
		return defaultPresignExpiryDuration
	}
	return s.config.PresignExpiry
}

func (s *s3ServiceImpl) PresignUpload(ctx context.Context, key, contentType string) (*PresignedURL, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	expiry := s.expiry()
	result, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return nil, ierr.WithError(err).WithHint("Failed to prepare document upload").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	headers := map[string]string{"Content-Type": contentType}
	for name, values := range result.SignedHeader {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	return &PresignedURL{
		URL:       result.URL,
		Method:    result.Method,
		Key:       key,
		Headers:   headers,
		ExpiresAt: time.Now().UTC().Add(expiry),
	}, nil
}

func (s *s3ServiceImpl) PresignDownload(ctx context.Context, key string) (*PresignedURL, error) {
	expiry := s.expiry()
	result, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return nil, ierr.WithError(err).WithHint("Failed to prepare document download").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrHTTPClient)
	}

	return &PresignedURL{
		URL:       result.URL,
		Method:    result.Method,
		Key:       key,
		ExpiresAt: time.Now().UTC().Add(expiry),
	}, nil
}

func (s *s3ServiceImpl) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if ierr.As(err, &nsk) || ierr.As(err, &nf) {
			return false, nil
		}
		return false, ierr.WithError(err).
			WithHint("Failed to check stored document").
			Mark(ierr.ErrHTTPClient)
	}
	return true, nil
}
