package ports

import "go.trai.ch/rosbrew/internal/core/domain"

// PackageFinder defines the interface for discovering package descriptors.
//
//go:generate mockgen -source=package_finder.go -destination=mocks/mock_package_finder.go -package=mocks
type PackageFinder interface {
	// Find returns the packages found at or below path, keyed by their directory.
	Find(path string) (map[string]*domain.Package, error)
}
