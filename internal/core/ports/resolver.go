package ports

import (
	"context"

	"go.trai.ch/rosbrew/internal/core/domain"
)

// DependencyResolver resolves dependency keys for one platform.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve returns the resolved dependency, or nil when the key is dropped.
	Resolve(ctx context.Context, key string) (*domain.ResolvedDependency, error)
}

// ResolverFactory creates resolution sessions.
type ResolverFactory interface {
	// NewSession creates a resolver for the configured platform.
	// dist, when not nil, seeds the ignored keys and backs the fallback.
	NewSession(cfg domain.Config, dist *domain.Distribution, peers []string) (DependencyResolver, error)
}
