package pack

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go trainbook/internal/repositories/pack Repository

import (
	"context"

	"trainbook/internal/models"
)

// Repository defines the interface for package data persistence
type Repository interface {
	// SavePackage persists a package
	SavePackage(ctx context.Context, input *SavePackageInput) error

	// GetPackage retrieves a package by ID
	GetPackage(ctx context.Context, input *GetPackageInput) (*models.Package, error)

	// ListPackages retrieves every package in the collection
	ListPackages(ctx context.Context, input *ListPackagesInput) (*ListPackagesOutput, error)

	// GetPackagesByClient retrieves all packages naming a client, as sole
	// owner or shared member
	GetPackagesByClient(ctx context.Context, input *GetPackagesByClientInput) (*GetPackagesByClientOutput, error)

	// UpdateUsed rewrites a package's used count
	UpdateUsed(ctx context.Context, input *UpdateUsedInput) error

	// DeletePackage removes a package; deleting an absent ID is a no-op
	DeletePackage(ctx context.Context, input *DeletePackageInput) error

	// Subscribe registers a change listener that receives a fresh snapshot
	// of the collection after every mutation
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}
