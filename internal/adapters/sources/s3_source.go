package sources

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"launch-dashboard-service/internal/domain"
)

// objectGetter is the slice of the S3 client the source needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config describes the object holding the launch records CSV.
type S3Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string // optional; S3-compatible endpoint such as MinIO
	PathStyle bool
}

// S3Source reads launch records from a CSV object in an S3-compatible bucket.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
}

// NewS3Source builds an S3 client from the default AWS credential chain.
func NewS3Source(ctx context.Context, cfg S3Config) (*S3Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, errors.New("s3 source: bucket and key are required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("s3 source: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3Source{client: client, bucket: cfg.Bucket, key: cfg.Key}, nil
}

func (s *S3Source) LoadLaunches(ctx context.Context) ([]domain.LaunchRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("load launches: get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	records, err := ParseCSV(out.Body)
	if err != nil {
		return nil, fmt.Errorf("load launches: s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return records, nil
}
