package ports

import "context"

// Fetcher reads remote or local metadata sources.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch returns the content of source. refresh bypasses any cached copy.
	Fetch(ctx context.Context, source string, refresh bool) ([]byte, error)
}
