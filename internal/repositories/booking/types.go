package booking

import "trainbook/internal/models"

type SaveBookingInput struct {
	Booking *models.Booking
}

type GetBookingInput struct {
	BookingID string
}

type GetBookingsByPackageInput struct {
	PackageID string
}

type GetBookingsByPackageOutput struct {
	Bookings []*models.Booking
}

type GetBookingsByClientInput struct {
	ClientName string
}

type GetBookingsByClientOutput struct {
	Bookings []*models.Booking
}

type GetBookingsBySlotInput struct {
	DateISO string
	Hour    int
}

type GetBookingsBySlotOutput struct {
	Bookings []*models.Booking
}

type GetBookingsByDatesInput struct {
	DatesISO []string
}

type GetBookingsByDatesOutput struct {
	Bookings []*models.Booking
}

// SessionNumberUpdate assigns one booking its recomputed session number
type SessionNumberUpdate struct {
	BookingID     string
	SessionNumber int
}

type UpdateSessionNumbersInput struct {
	Updates []SessionNumberUpdate
}

type DeleteBookingInput struct {
	BookingID string
}

type SubscribeInput struct {
	// OnChange receives the full collection after every mutation, and once
	// on subscription with the current contents
	OnChange func(bookings []*models.Booking)
}
