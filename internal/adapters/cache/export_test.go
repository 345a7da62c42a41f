package cache

import (
	"net/http"

	"go.trai.ch/rosbrew/internal/core/ports"
)

// NewFetcherWithClient exposes newFetcherWithClient for tests.
func NewFetcherWithClient(path string, client *http.Client, logger ports.Logger) *Fetcher {
	return newFetcherWithClient(path, client, logger)
}
