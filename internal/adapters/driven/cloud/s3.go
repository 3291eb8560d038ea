package cloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Ensure S3Store implements the interface.
var _ driven.ObjectStore = (*S3Store)(nil)

// S3Store stores objects in an Amazon S3 bucket.
type S3Store struct {
	client   *s3.Client
	bucket   string
	transfer *transfer
}

// NewS3Store creates an S3 store. Credentials and region come from the
// standard AWS chain; cfg.Region and cfg.Endpoint override them.
func NewS3Store(ctx context.Context, cfg domain.CloudConfig, limiter *RateLimiter) (*S3Store, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.Retryer = aws.NopRetryer{}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.Bucket,
		transfer: newTransfer(limiter, cfg.MaxRetries, classifyS3Error),
	}, nil
}

// Upload copies a local file to key.
func (s *S3Store) Upload(ctx context.Context, localPath, key string) error {
	return s.transfer.do(ctx, "s3 upload", func(ctx context.Context) error {
		f, err := os.Open(localPath)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   f,
		})
		return wrapS3Error(err)
	})
}

// Download copies the object at key to localPath, creating parent directories.
func (s *S3Store) Download(ctx context.Context, key, localPath string) error {
	return s.transfer.do(ctx, "s3 download", func(ctx context.Context) error {
		out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return wrapS3Error(err)
		}
		defer out.Body.Close()

		return writeFile(localPath, out.Body)
	})
}

// List returns the keys under prefix, following continuation tokens.
func (s *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		var page *s3.ListObjectsV2Output
		err := s.transfer.do(ctx, "s3 list", func(ctx context.Context) error {
			var err error
			page, err = paginator.NextPage(ctx)
			return wrapS3Error(err)
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

// Location returns the s3:// URL of key.
func (s *S3Store) Location(key string) string {
	return fmt.Sprintf("%s://%s/%s", domain.CloudProviderAWS.Scheme(), s.bucket, key)
}

func wrapS3Error(err error) error {
	if err == nil {
		return nil
	}
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noKey) || errors.As(err, &noBucket) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}

func classifyS3Error(err error) Class {
	if errors.Is(err, domain.ErrNotFound) {
		return Permanent
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return classifyHTTPStatus(respErr.HTTPStatusCode())
	}
	return Permanent
}

// writeFile streams r into path through a temporary file so a failed
// transfer never leaves a truncated file behind.
func writeFile(path string, r io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
