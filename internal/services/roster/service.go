package roster

import (
	"context"
	"errors"
	"sort"
	"strings"

	"trainbook/internal/calendar"
	"trainbook/internal/common/clock"
	"trainbook/internal/common/uuid"
	"trainbook/internal/models"
	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
	"trainbook/internal/services/scheduling"
)

// service implements the Service interface
type service struct {
	packageRepo   packRepo.Repository
	bookingRepo   bookingRepo.Repository
	scheduler     scheduling.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PackageRepo == nil {
		return nil, ErrNilPackageRepo
	}
	if cfg.BookingRepo == nil {
		return nil, ErrNilBookingRepo
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	return &service{
		packageRepo:   cfg.PackageRepo,
		bookingRepo:   cfg.BookingRepo,
		scheduler:     cfg.Scheduler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreatePackage records a purchased session package. One name makes a sole
// owner, several a shared group whose quota is pooled across all members.
func (s *service) CreatePackage(ctx context.Context, input *CreatePackageInput) (*CreatePackageOutput, error) {
	if input == nil {
		return nil, ErrEmptyClient
	}

	names := make([]string, 0, len(input.ClientNames))
	for _, raw := range input.ClientNames {
		name := strings.TrimSpace(raw)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, ErrEmptyClient
	}

	if input.Size <= 0 {
		return nil, ErrInvalidPackageSize
	}

	var owner models.Owner
	if len(names) == 1 {
		owner = models.SingleOwner(names[0])
	} else {
		owner = models.SharedOwner(names)
	}

	pkg := &models.Package{
		ID:       s.uuidGenerator.NewUUID(),
		Size:     input.Size,
		Used:     0,
		AddedISO: calendar.FormatISO(s.clock.Now()),
		Owner:    owner,
	}

	err := s.packageRepo.SavePackage(ctx, &packRepo.SavePackageInput{
		Package: pkg,
	})
	if err != nil {
		return nil, err
	}

	return &CreatePackageOutput{Package: pkg}, nil
}

// DeletePackage removes a package once its quota is fully consumed. The
// caller must pass the confirmation flag from its human-in-the-loop step.
func (s *service) DeletePackage(ctx context.Context, input *DeletePackageInput) (*DeletePackageOutput, error) {
	if input == nil || input.PackageID == "" {
		return nil, errors.New("input and package ID cannot be empty")
	}

	if !input.Confirmed {
		return nil, ErrConfirmationRequired
	}

	pkg, err := s.packageRepo.GetPackage(ctx, &packRepo.GetPackageInput{
		PackageID: input.PackageID,
	})
	if err != nil {
		if errors.Is(err, packRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	if pkg.Active() {
		return nil, ErrPackageInUse
	}

	err = s.packageRepo.DeletePackage(ctx, &packRepo.DeletePackageInput{
		PackageID: input.PackageID,
	})
	if err != nil {
		return nil, err
	}

	return &DeletePackageOutput{}, nil
}

// DeleteClient removes a client once every package naming them, sole or
// shared, is exhausted. Sole-owned packages and the client's bookings are
// deleted; shared packages stay with the group, and any shared package whose
// bookings were swept is reindexed so its used count stays consistent.
func (s *service) DeleteClient(ctx context.Context, input *DeleteClientInput) (*DeleteClientOutput, error) {
	if input == nil {
		return nil, ErrEmptyClient
	}

	name := strings.TrimSpace(input.ClientName)
	if name == "" {
		return nil, ErrEmptyClient
	}

	if !input.Confirmed {
		return nil, ErrConfirmationRequired
	}

	owned, err := s.packageRepo.GetPackagesByClient(ctx, &packRepo.GetPackagesByClientInput{
		ClientName: name,
	})
	if err != nil {
		return nil, err
	}

	for _, pkg := range owned.Packages {
		if pkg.Active() {
			return nil, ErrClientHasActivePackages
		}
	}

	deletedPackages := make(map[string]struct{})
	for _, pkg := range owned.Packages {
		if pkg.Owner.Shared() || pkg.Owner.Primary() != name {
			continue
		}
		err = s.packageRepo.DeletePackage(ctx, &packRepo.DeletePackageInput{
			PackageID: pkg.ID,
		})
		if err != nil {
			return nil, err
		}
		deletedPackages[pkg.ID] = struct{}{}
	}

	clientBookings, err := s.bookingRepo.GetBookingsByClient(ctx, &bookingRepo.GetBookingsByClientInput{
		ClientName: name,
	})
	if err != nil {
		return nil, err
	}

	affected := make(map[string]struct{})
	for _, b := range clientBookings.Bookings {
		err = s.bookingRepo.DeleteBooking(ctx, &bookingRepo.DeleteBookingInput{
			BookingID: b.ID,
		})
		if err != nil {
			return nil, err
		}
		if b.PackageID == "" {
			continue
		}
		if _, gone := deletedPackages[b.PackageID]; gone {
			continue
		}
		affected[b.PackageID] = struct{}{}
	}

	// Shared packages survive the sweep; bring their used counts back in
	// line with their remaining bookings
	for packageID := range affected {
		_, err = s.scheduler.ReindexPackage(ctx, &scheduling.ReindexPackageInput{
			PackageID: packageID,
		})
		if err != nil {
			return nil, err
		}
	}

	return &DeleteClientOutput{
		PackagesDeleted: len(deletedPackages),
		BookingsDeleted: len(clientBookings.Bookings),
	}, nil
}

// ListClients builds the client panel: every name appearing on a package,
// with packages ordered oldest purchase first.
func (s *service) ListClients(ctx context.Context, input *ListClientsInput) (*ListClientsOutput, error) {
	all, err := s.packageRepo.ListPackages(ctx, &packRepo.ListPackagesInput{})
	if err != nil {
		return nil, err
	}

	packages := sortPackages(all.Packages)

	// First appearance across the sorted packages fixes the panel order
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, pkg := range packages {
		for _, name := range pkg.Owner.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	clients := make([]*ClientSummary, 0, len(names))
	for _, name := range names {
		owned := make([]*models.Package, 0)
		for _, pkg := range packages {
			if pkg.Owner.Has(name) {
				owned = append(owned, pkg)
			}
		}

		var active *models.Package
		for _, pkg := range owned {
			if pkg.Active() {
				active = pkg
				break
			}
		}

		var shared *models.Package
		for _, pkg := range owned {
			if pkg.Owner.Shared() {
				shared = pkg
				break
			}
		}

		clients = append(clients, &ClientSummary{
			Name:            name,
			Packages:        owned,
			Active:          active,
			SharedSecondary: shared != nil && shared.Owner.Primary() != name,
		})
	}

	return &ListClientsOutput{Clients: clients}, nil
}

// GetPackageSessions returns one client's bookings within a package in
// chronological order, for the expanded package view.
func (s *service) GetPackageSessions(ctx context.Context, input *GetPackageSessionsInput) (*GetPackageSessionsOutput, error) {
	if input == nil || input.PackageID == "" {
		return nil, errors.New("input and package ID cannot be empty")
	}

	pkg, err := s.packageRepo.GetPackage(ctx, &packRepo.GetPackageInput{
		PackageID: input.PackageID,
	})
	if err != nil {
		if errors.Is(err, packRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	all, err := s.bookingRepo.GetBookingsByPackage(ctx, &bookingRepo.GetBookingsByPackageInput{
		PackageID: input.PackageID,
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]*models.Booking, 0, len(all.Bookings))
	for _, b := range all.Bookings {
		if input.ClientName == "" || b.ClientName == input.ClientName {
			bookings = append(bookings, b)
		}
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].DateISO != bookings[j].DateISO {
			return bookings[i].DateISO < bookings[j].DateISO
		}
		if bookings[i].Hour != bookings[j].Hour {
			return bookings[i].Hour < bookings[j].Hour
		}
		return bookings[i].ID < bookings[j].ID
	})

	return &GetPackageSessionsOutput{
		Package:  pkg,
		Bookings: bookings,
	}, nil
}

// sortPackages orders packages by purchase date, oldest first, with the ID
// as a deterministic tie-break.
func sortPackages(packages []*models.Package) []*models.Package {
	sorted := make([]*models.Package, len(packages))
	copy(sorted, packages)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].PurchaseTime(), sorted[j].PurchaseTime()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
