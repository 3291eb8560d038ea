package cloud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

func newTestGCSStore(t *testing.T, handler http.HandlerFunc) *GCSStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := NewGCSStore(context.Background(), domain.CloudConfig{
		Provider:   domain.CloudProviderGCP,
		Bucket:     "corpus",
		Endpoint:   srv.URL + "/storage/v1/",
		MaxRetries: 1,
	}, NewRateLimiter(1000))
	require.NoError(t, err)
	return store
}

func TestGCSStore_List(t *testing.T) {
	store := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "exp/data/", r.URL.Query().Get("prefix"))
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("pageToken") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items":         []map[string]string{{"name": "exp/data/pos/a.txt"}},
				"nextPageToken": "page2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{{"name": "exp/data/neg/b.txt"}},
		})
	})

	keys, err := store.List(context.Background(), "exp/data/")
	require.NoError(t, err)
	assert.Equal(t, []string{"exp/data/pos/a.txt", "exp/data/neg/b.txt"}, keys)
}

func TestGCSStore_Download(t *testing.T) {
	store := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("alt") != "media" {
			http.Error(w, "unexpected", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("ሰላም"))
	})

	dest := filepath.Join(t.TempDir(), "pos", "a.txt")
	require.NoError(t, store.Download(context.Background(), "exp/data/pos/a.txt", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "ሰላም", string(data))
}

func TestGCSStore_DownloadNotFound(t *testing.T) {
	var calls atomic.Int32
	store := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"No such object"}}`))
	})

	dest := filepath.Join(t.TempDir(), "a.txt")
	err := store.Download(context.Background(), "missing", dest)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
	assert.NoFileExists(t, dest)
}

func TestGCSStore_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	store := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"code":503,"message":"backend error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"name":"k"}]}`))
	})
	store.transfer.base = 1

	keys, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGCSStore_Upload(t *testing.T) {
	var uploaded atomic.Bool
	store := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/o") {
			uploaded.Store(true)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"exp/model/model.gob","bucket":"corpus"}`))
	})

	src := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, os.WriteFile(src, []byte("weights"), 0o644))

	require.NoError(t, store.Upload(context.Background(), src, "exp/model/model.gob"))
	assert.True(t, uploaded.Load())
}

func TestGCSStore_UploadMissingFile(t *testing.T) {
	store := newTestGCSStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "missing"), "k")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
