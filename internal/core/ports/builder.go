package ports

import (
	"context"

	"go.trai.ch/rosbrew/internal/core/domain"
)

// SubstitutionBuilder assembles the template substitutions of a package.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type SubstitutionBuilder interface {
	Build(
		ctx context.Context,
		cfg domain.Config,
		pkg *domain.Package,
		dist *domain.Distribution,
	) (*domain.Substitutions, error)
}
