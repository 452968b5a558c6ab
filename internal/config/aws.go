package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadAwsConfig resolves credentials from the default chain, pinned to the document bucket region
func LoadAwsConfig(ctx context.Context, s3 S3Config) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if s3.Region != "" {
		opts = append(opts, config.WithRegion(s3.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}
