package roster

import (
	"trainbook/internal/common/clock"
	"trainbook/internal/common/uuid"
	"trainbook/internal/models"
	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
	"trainbook/internal/services/scheduling"
)

// Config holds the dependencies for the roster service
type Config struct {
	// PackageRepo persists packages
	PackageRepo packRepo.Repository

	// BookingRepo persists bookings
	BookingRepo bookingRepo.Repository

	// Scheduler reindexes shared packages after a client sweep
	Scheduler scheduling.Service

	// Clock provides the purchase date for new packages
	Clock clock.Clock

	// UUIDGenerator provides package IDs
	UUIDGenerator uuid.UUID
}

type CreatePackageInput struct {
	// ClientNames holds one name for a sole owner or several for a shared
	// group; blanks are trimmed and dropped
	ClientNames []string

	// Size is the number of sessions purchased
	Size int
}

type CreatePackageOutput struct {
	Package *models.Package
}

type DeletePackageInput struct {
	PackageID string

	// Confirmed must be set by the caller after a human confirmation step
	Confirmed bool
}

type DeletePackageOutput struct {
}

type DeleteClientInput struct {
	ClientName string

	// Confirmed must be set by the caller after a human confirmation step
	Confirmed bool
}

type DeleteClientOutput struct {
	// PackagesDeleted counts the removed sole-owned packages
	PackagesDeleted int

	// BookingsDeleted counts the removed bookings
	BookingsDeleted int
}

type ListClientsInput struct {
}

// ClientSummary is one row of the client panel
type ClientSummary struct {
	// Name is the client name
	Name string

	// Packages holds every package naming the client, oldest purchase first
	Packages []*models.Package

	// Active is the first package with unused quota, nil when all are done
	Active *models.Package

	// SharedSecondary marks a client who is in a shared group but not its
	// primary member; new packages are purchased through the primary
	SharedSecondary bool
}

type ListClientsOutput struct {
	Clients []*ClientSummary
}

type GetPackageSessionsInput struct {
	PackageID  string
	ClientName string
}

type GetPackageSessionsOutput struct {
	Package  *models.Package
	Bookings []*models.Booking
}
