package services

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
	"github.com/custodia-labs/cleanhub/internal/logger"
)

// Ensure SyncService implements the interface.
var _ driving.CloudSync = (*SyncService)(nil)

// ObjectStoreFactory opens an object store for a cloud configuration.
type ObjectStoreFactory func(ctx context.Context, cfg domain.CloudConfig) (driven.ObjectStore, error)

// SyncService mirrors pipeline artifacts to an object store.
// Every failure is logged with the [CLOUD] prefix and swallowed so that
// the local pipeline never fails because of the cloud.
type SyncService struct {
	cfg      *domain.CloudConfig
	newStore ObjectStoreFactory
}

// NewSyncService creates a sync service. A nil or unconfigured cfg makes
// both operations no-ops.
func NewSyncService(cfg *domain.CloudConfig, newStore ObjectStoreFactory) *SyncService {
	return &SyncService{
		cfg:      cfg,
		newStore: newStore,
	}
}

func (s *SyncService) open(ctx context.Context) driven.ObjectStore {
	if !s.cfg.IsConfigured() || s.newStore == nil {
		return nil
	}
	store, err := s.newStore(ctx, *s.cfg)
	if err != nil {
		logger.Cloud("%s sync disabled: %v", s.cfg.Provider, err)
		return nil
	}
	return store
}

// MaybeUpload uploads localPath under the artifact kind what.
// Directories are walked recursively and keep their relative layout.
func (s *SyncService) MaybeUpload(ctx context.Context, localPath, what string) {
	store := s.open(ctx)
	if store == nil {
		return
	}

	info, err := os.Stat(localPath)
	if err != nil {
		logger.Cloud("upload %s: %v", localPath, err)
		return
	}

	if !info.IsDir() {
		s.upload(ctx, store, localPath, s.cfg.KeyFor(what, filepath.Base(localPath)))
		return
	}

	err = filepath.WalkDir(localPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(localPath, p)
		if err != nil {
			return err
		}
		s.upload(ctx, store, p, s.cfg.KeyFor(what, filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		logger.Cloud("upload %s: %v", localPath, err)
	}
}

func (s *SyncService) upload(ctx context.Context, store driven.ObjectStore, localPath, key string) {
	if err := store.Upload(ctx, localPath, key); err != nil {
		logger.Cloud("upload %s to %s failed: %v", localPath, store.Location(key), err)
		return
	}
	logger.Cloud("uploaded %s to %s", localPath, store.Location(key))
}

// MaybeDownload fetches every object under the artifact kind what into
// localDir, keeping paths relative to the kind's prefix.
func (s *SyncService) MaybeDownload(ctx context.Context, what, localDir string) {
	store := s.open(ctx)
	if store == nil {
		return
	}

	prefix := s.cfg.KeyFor(what) + "/"
	keys, err := store.List(ctx, prefix)
	if err != nil {
		logger.Cloud("list %s: %v", store.Location(prefix), err)
		return
	}

	for _, key := range keys {
		if ctx.Err() != nil {
			logger.Cloud("download interrupted: %v", ctx.Err())
			return
		}
		if strings.HasSuffix(key, "/") {
			continue
		}
		rel, ok := relativeKey(key, prefix)
		if !ok {
			logger.Cloud("skipping %s: outside %s", key, prefix)
			continue
		}
		dest := filepath.Join(localDir, filepath.FromSlash(rel))
		if err := store.Download(ctx, key, dest); err != nil {
			logger.Cloud("download %s failed: %v", store.Location(key), err)
			continue
		}
		logger.Cloud("downloaded %s to %s", store.Location(key), dest)
	}
}

// relativeKey strips prefix from key and rejects keys that would escape
// the destination directory.
func relativeKey(key, prefix string) (string, bool) {
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	rel := path.Clean(strings.TrimPrefix(key, prefix))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") || path.IsAbs(rel) {
		return "", false
	}
	return rel, true
}
