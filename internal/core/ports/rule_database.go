package ports

import (
	"context"

	"go.trai.ch/rosbrew/internal/core/domain"
)

// RuleDatabase defines the interface for the dependency rule database.
//
//go:generate mockgen -source=rule_database.go -destination=mocks/mock_rule_database.go -package=mocks
type RuleDatabase interface {
	// Lookup returns the definition of a key from the merged view of sources.
	// A key without a definition yields domain.ErrUnknownKey.
	Lookup(ctx context.Context, sources []string, key string) (domain.Definition, error)

	// Refresh re-fetches the sources and drops the memoised view.
	Refresh(ctx context.Context, sources []string) error
}
