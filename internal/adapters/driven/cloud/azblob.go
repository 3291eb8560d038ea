package cloud

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Ensure AzureStore implements the interface.
var _ driven.ObjectStore = (*AzureStore)(nil)

// AzureStore stores objects as block blobs in an Azure container.
type AzureStore struct {
	client    *azblob.Client
	container string
	transfer  *transfer
}

// NewAzureStore creates an Azure Blob store from a connection string.
// The SDK's own retry policy is disabled; transfers retry through limiter.
func NewAzureStore(cfg domain.CloudConfig, limiter *RateLimiter) (*AzureStore, error) {
	if cfg.ConnectionString == "" {
		return nil, fmt.Errorf("%w: azure connection string not set", domain.ErrCloudNotConfigured)
	}

	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create azure client: %w", err)
	}

	return &AzureStore{
		client:    client,
		container: cfg.Container,
		transfer:  newTransfer(limiter, cfg.MaxRetries, classifyAzureError),
	}, nil
}

// Upload copies a local file to key.
func (s *AzureStore) Upload(ctx context.Context, localPath, key string) error {
	return s.transfer.do(ctx, "azure upload", func(ctx context.Context) error {
		f, err := os.Open(localPath)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = s.client.UploadFile(ctx, s.container, key, f, nil)
		return wrapAzureError(err)
	})
}

// Download copies the blob at key to localPath, creating parent directories.
func (s *AzureStore) Download(ctx context.Context, key, localPath string) error {
	return s.transfer.do(ctx, "azure download", func(ctx context.Context) error {
		resp, err := s.client.DownloadStream(ctx, s.container, key, nil)
		if err != nil {
			return wrapAzureError(err)
		}
		defer resp.Body.Close()

		return writeFile(localPath, resp.Body)
	})
}

// List returns the blob names under prefix.
func (s *AzureStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	pager := s.client.NewListBlobsFlatPager(s.container, &azblob.ListBlobsFlatOptions{
		Prefix: &prefix,
	})

	for pager.More() {
		var page azblob.ListBlobsFlatResponse
		err := s.transfer.do(ctx, "azure list", func(ctx context.Context) error {
			var err error
			page, err = pager.NextPage(ctx)
			return wrapAzureError(err)
		})
		if err != nil {
			return nil, err
		}
		if page.Segment == nil {
			continue
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name != nil {
				keys = append(keys, *item.Name)
			}
		}
	}
	return keys, nil
}

// Location returns the azure:// URL of key.
func (s *AzureStore) Location(key string) string {
	return fmt.Sprintf("%s://%s/%s", domain.CloudProviderAzure.Scheme(), s.container, key)
}

func wrapAzureError(err error) error {
	if err == nil {
		return nil
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}

func classifyAzureError(err error) Class {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return classifyHTTPStatus(respErr.StatusCode)
	}
	return Permanent
}
