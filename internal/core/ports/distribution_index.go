package ports

import (
	"context"

	"go.trai.ch/rosbrew/internal/core/domain"
)

// DistributionIndex defines the interface for reading release metadata of a distro.
//
//go:generate mockgen -source=distribution_index.go -destination=mocks/mock_distribution_index.go -package=mocks
type DistributionIndex interface {
	// Distribution returns the release metadata of the named distro listed in the index at indexURL.
	Distribution(ctx context.Context, indexURL, distro string) (*domain.Distribution, error)
}
