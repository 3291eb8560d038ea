package cloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Ensure GCSStore implements the interface.
var _ driven.ObjectStore = (*GCSStore)(nil)

// GCSStore stores objects in a Google Cloud Storage bucket.
type GCSStore struct {
	service  *storage.Service
	bucket   string
	transfer *transfer
}

// NewGCSStore creates a GCS store. Credentials come from cfg.CredentialsFile
// when set, otherwise from Application Default Credentials.
// Extra client options are appended last.
func NewGCSStore(ctx context.Context, cfg domain.CloudConfig, limiter *RateLimiter, extra ...option.ClientOption) (*GCSStore, error) {
	opts, err := gcsClientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	service, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage service: %w", err)
	}

	return &GCSStore{
		service:  service,
		bucket:   cfg.Bucket,
		transfer: newTransfer(limiter, cfg.MaxRetries, classifyGCSError),
	}, nil
}

func gcsClientOptions(ctx context.Context, cfg domain.CloudConfig) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read gcp credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, storage.DevstorageReadWriteScope)
		if err != nil {
			return nil, fmt.Errorf("parse gcp credentials: %w", err)
		}
		return append(opts, option.WithTokenSource(creds.TokenSource)), nil
	}

	if cfg.Endpoint != "" {
		// Emulators accept unauthenticated requests.
		return append(opts, option.WithoutAuthentication()), nil
	}

	ts, err := google.DefaultTokenSource(ctx, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("%w: gcp default credentials: %w", domain.ErrCloudNotConfigured, err)
	}
	return append(opts, option.WithTokenSource(ts)), nil
}

// Upload copies a local file to key.
func (s *GCSStore) Upload(ctx context.Context, localPath, key string) error {
	return s.transfer.do(ctx, "gcs upload", func(ctx context.Context) error {
		f, err := os.Open(localPath)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = s.service.Objects.Insert(s.bucket, &storage.Object{Name: key}).
			Media(f).
			Context(ctx).
			Do()
		return wrapGCSError(err)
	})
}

// Download copies the object at key to localPath, creating parent directories.
func (s *GCSStore) Download(ctx context.Context, key, localPath string) error {
	return s.transfer.do(ctx, "gcs download", func(ctx context.Context) error {
		resp, err := s.service.Objects.Get(s.bucket, key).Context(ctx).Download()
		if err != nil {
			return wrapGCSError(err)
		}
		defer resp.Body.Close()

		return writeFile(localPath, resp.Body)
	})
}

// List returns the keys under prefix across all result pages.
func (s *GCSStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	pageToken := ""
	for {
		var page *storage.Objects
		err := s.transfer.do(ctx, "gcs list", func(ctx context.Context) error {
			call := s.service.Objects.List(s.bucket).Prefix(prefix).Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var err error
			page, err = call.Do()
			return wrapGCSError(err)
		})
		if err != nil {
			return nil, err
		}

		for _, obj := range page.Items {
			keys = append(keys, obj.Name)
		}
		if page.NextPageToken == "" {
			return keys, nil
		}
		pageToken = page.NextPageToken
	}
}

// Location returns the gs:// URL of key.
func (s *GCSStore) Location(key string) string {
	return fmt.Sprintf("%s://%s/%s", domain.CloudProviderGCP.Scheme(), s.bucket, key)
}

func wrapGCSError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}

func classifyGCSError(err error) Class {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return classifyHTTPStatus(gerr.Code)
	}
	return Permanent
}
