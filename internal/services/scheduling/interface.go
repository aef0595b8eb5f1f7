package scheduling

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go trainbook/internal/services/scheduling Service

import "context"

// Service defines the interface for calendar scheduling operations
type Service interface {
	// CreateBooking reserves a free slot for a client and charges one
	// session to their active package
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*CreateBookingOutput, error)

	// DeleteBooking removes a booking and restores the package quota
	DeleteBooking(ctx context.Context, input *DeleteBookingInput) (*DeleteBookingOutput, error)

	// ReindexPackage recomputes session numbers and the used count for one
	// package from its live bookings
	ReindexPackage(ctx context.Context, input *ReindexPackageInput) (*ReindexPackageOutput, error)

	// GetCalendarWeek returns the week grid around an anchor date with its
	// bookings
	GetCalendarWeek(ctx context.Context, input *GetCalendarWeekInput) (*GetCalendarWeekOutput, error)
}
