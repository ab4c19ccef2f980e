package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	internalConfig "github.com/sefazor/stripe-memberships/internal/config"
)

// CloudflareStorage writes objects to an R2 bucket through its S3 API.
type CloudflareStorage struct {
	client *s3.Client
	bucket string
}

func NewCloudflareStorage(cfg *internalConfig.Config) (*CloudflareStorage, error) {
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &CloudflareStorage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.R2.Bucket,
	}, nil
}

// Upload buffers src so R2 receives a Content-Length; webhook payloads are small.
func (s *CloudflareStorage) Upload(key string, src io.Reader) error {
	buf, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read object content: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(int64(len(buf))),
		ContentType:   aws.String("application/json"),
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}
