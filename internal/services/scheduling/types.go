package scheduling

import (
	"trainbook/internal/common/clock"
	"trainbook/internal/common/uuid"
	"trainbook/internal/models"
	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
)

// Config holds the dependencies and settings for the scheduling service
type Config struct {
	// BookingRepo persists bookings
	BookingRepo bookingRepo.Repository

	// PackageRepo persists packages
	PackageRepo packRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator provides booking IDs
	UUIDGenerator uuid.UUID

	// GridStartHour is the first hour row of the scheduling grid
	GridStartHour int

	// GridHourCount is the number of hour rows on the grid
	GridHourCount int
}

type CreateBookingInput struct {
	ClientName string
	DateISO    string
	Hour       int
}

type CreateBookingOutput struct {
	// Booking carries the session number assigned by the reindex
	Booking *models.Booking

	// PackageUsed is the package's used count after the reindex
	PackageUsed int
}

type DeleteBookingInput struct {
	BookingID string
}

type DeleteBookingOutput struct {
	// Deleted is false when the booking was already gone
	Deleted bool
}

type ReindexPackageInput struct {
	PackageID string
}

type ReindexPackageOutput struct {
	// Bookings holds the package's bookings in chronological order with
	// their recomputed session numbers
	Bookings []*models.Booking

	// Used is the recomputed used count
	Used int
}

type GetCalendarWeekInput struct {
	// AnchorDateISO selects the week; empty means the current week
	AnchorDateISO string
}

type GetCalendarWeekOutput struct {
	// DaysISO are the seven dates of the week, Monday first
	DaysISO []string

	// Hours are the grid hour rows
	Hours []int

	// Bookings are the week's bookings in chronological order
	Bookings []*models.Booking
}
