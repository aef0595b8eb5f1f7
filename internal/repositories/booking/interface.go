package booking

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go trainbook/internal/repositories/booking Repository

import (
	"context"

	"trainbook/internal/models"
)

// Repository defines the interface for booking data persistence
type Repository interface {
	// SaveBooking persists a booking
	SaveBooking(ctx context.Context, input *SaveBookingInput) error

	// GetBooking retrieves a booking by ID
	GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error)

	// GetBookingsByPackage retrieves all bookings charged to a package
	GetBookingsByPackage(ctx context.Context, input *GetBookingsByPackageInput) (*GetBookingsByPackageOutput, error)

	// GetBookingsByClient retrieves all bookings for an exact client name
	GetBookingsByClient(ctx context.Context, input *GetBookingsByClientInput) (*GetBookingsByClientOutput, error)

	// GetBookingsBySlot retrieves the bookings occupying a (date, hour) slot
	GetBookingsBySlot(ctx context.Context, input *GetBookingsBySlotInput) (*GetBookingsBySlotOutput, error)

	// GetBookingsByDates retrieves all bookings on the given calendar dates
	GetBookingsByDates(ctx context.Context, input *GetBookingsByDatesInput) (*GetBookingsByDatesOutput, error)

	// UpdateSessionNumbers rewrites session numbers as a batch of
	// independent per-booking updates
	UpdateSessionNumbers(ctx context.Context, input *UpdateSessionNumbersInput) error

	// DeleteBooking removes a booking; deleting an absent ID is a no-op
	DeleteBooking(ctx context.Context, input *DeleteBookingInput) error

	// Subscribe registers a change listener that receives a fresh snapshot
	// of the collection after every mutation
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}
