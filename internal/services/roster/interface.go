package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go trainbook/internal/services/roster Service

import "context"

// Service defines the interface for client and package roster operations
type Service interface {
	// CreatePackage records a purchased session package for one client or a
	// shared client group
	CreatePackage(ctx context.Context, input *CreatePackageInput) (*CreatePackageOutput, error)

	// DeletePackage removes a fully consumed package
	DeletePackage(ctx context.Context, input *DeletePackageInput) (*DeletePackageOutput, error)

	// DeleteClient removes a client with their sole-owned packages and
	// bookings
	DeleteClient(ctx context.Context, input *DeleteClientInput) (*DeleteClientOutput, error)

	// ListClients returns the client panel data: every known client with
	// their packages and active quota
	ListClients(ctx context.Context, input *ListClientsInput) (*ListClientsOutput, error)

	// GetPackageSessions returns one client's bookings within a package,
	// chronologically
	GetPackageSessions(ctx context.Context, input *GetPackageSessionsInput) (*GetPackageSessionsOutput, error)
}
