// Package cache implements the Fetcher port with an on-disk cache for remote sources.
package cache

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	rosfs "go.trai.ch/rosbrew/internal/adapters/fs"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// Fetcher implements ports.Fetcher.
// Local paths and file:// URLs are read directly; http(s) sources go through the cache.
type Fetcher struct {
	cacheDir   string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Fetcher = (*Fetcher)(nil)

// NewFetcher creates a Fetcher caching below the user cache directory.
func NewFetcher(logger ports.Logger) *Fetcher {
	return newFetcherWithClient(domain.DefaultCachePath(), &http.Client{Timeout: httpClientTimeout}, logger)
}

// newFetcherWithClient creates a Fetcher with a custom cache path and http client (used for testing).
func newFetcherWithClient(path string, client *http.Client, logger ports.Logger) *Fetcher {
	return &Fetcher{
		cacheDir:   filepath.Clean(path),
		httpClient: client,
		logger:     logger,
	}
}

// Fetch returns the content of source.
// A cached copy is used unless refresh is set. When a download fails and a
// cached copy exists, the stale copy is returned with a warning.
func (f *Fetcher) Fetch(ctx context.Context, source string, refresh bool) ([]byte, error) {
	if path, ok := localPath(source); ok {
		//nolint:gosec // sources are configured by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceFetchFailed.Error()), "source", source)
		}
		return data, nil
	}

	cachePath := f.cachePath(source)
	cached, cacheErr := f.loadFromCache(cachePath)
	if cacheErr == nil && !refresh {
		return cached, nil
	}

	data, err := f.download(ctx, source)
	if err != nil {
		if cacheErr == nil && ctx.Err() == nil {
			f.logger.Warn("Using cached copy of " + source + ", download failed")
			return cached, nil
		}
		return nil, err
	}

	if err := f.saveToCache(cachePath, data); err != nil {
		f.logger.Warn("Could not cache " + source + ": " + err.Error())
	}

	return data, nil
}

// localPath reports whether source refers to the local file system.
func localPath(source string) (string, bool) {
	if after, ok := strings.CutPrefix(source, "file://"); ok {
		return after, true
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return "", false
	}
	return source, true
}

func (f *Fetcher) cachePath(source string) string {
	key := strconv.FormatUint(xxhash.Sum64String(source), 16)
	return filepath.Join(f.cacheDir, key+".yaml")
}

func (f *Fetcher) loadFromCache(path string) ([]byte, error) {
	//nolint:gosec // path is built from the cache dir and a hashed name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, "failed to read cache entry")
	}
	return data, nil
}

func (f *Fetcher) saveToCache(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	if err := rosfs.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

func (f *Fetcher) download(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceFetchFailed.Error()), "source", source)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceFetchFailed.Error()), "source", source)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrSourceFetchFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "source", source)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceFetchFailed.Error()), "source", source)
	}
	return body, nil
}
