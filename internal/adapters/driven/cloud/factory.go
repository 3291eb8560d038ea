package cloud

import (
	"context"
	"fmt"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Factory builds object stores that share one rate limiter.
type Factory struct {
	limiter *RateLimiter
}

// NewFactory creates a factory whose stores are limited to rps requests per
// second in total.
func NewFactory(rps float64) *Factory {
	return &Factory{limiter: NewRateLimiter(rps)}
}

// NewObjectStore builds the store for cfg.Provider.
func (f *Factory) NewObjectStore(ctx context.Context, cfg domain.CloudConfig) (driven.ObjectStore, error) {
	if !cfg.IsConfigured() {
		return nil, domain.ErrCloudNotConfigured
	}
	if !cfg.Provider.IsValid() {
		return nil, fmt.Errorf("%w: cloud provider %q", domain.ErrUnsupportedType, cfg.Provider)
	}
	if cfg.BucketName() == "" {
		return nil, fmt.Errorf("%w: %s requires a bucket or container name", domain.ErrInvalidInput, cfg.Provider)
	}

	var (
		store driven.ObjectStore
		err   error
	)
	switch cfg.Provider {
	case domain.CloudProviderAWS:
		store, err = NewS3Store(ctx, cfg, f.limiter)
	case domain.CloudProviderGCP:
		store, err = NewGCSStore(ctx, cfg, f.limiter)
	case domain.CloudProviderAzure:
		store, err = NewAzureStore(cfg, f.limiter)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
