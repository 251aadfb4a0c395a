package config

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client and the dataset bucket info.
type S3Config struct {
	Client     *s3.Client
	BucketName string
	ObjectKey  string
}

// NewS3Config initializes the S3 client for the configured dataset bucket.
// Returns nil when no bucket is configured; the dataset then loads from the
// local file only.
func (c *Config) NewS3Config(ctx context.Context) (*S3Config, error) {
	if c.DatasetS3Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: c.DatasetS3Bucket,
		ObjectKey:  c.DatasetS3Key,
	}, nil
}
