package scheduling

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"trainbook/internal/calendar"
	"trainbook/internal/common/clock"
	"trainbook/internal/common/uuid"
	"trainbook/internal/models"
	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
)

// service implements the Service interface
type service struct {
	bookingRepo   bookingRepo.Repository
	packageRepo   packRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	gridStartHour int
	gridHourCount int
}

// New creates a new scheduling service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BookingRepo == nil {
		return nil, ErrNilBookingRepo
	}
	if cfg.PackageRepo == nil {
		return nil, ErrNilPackageRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	startHour := cfg.GridStartHour
	hourCount := cfg.GridHourCount
	if hourCount <= 0 {
		startHour = calendar.DefaultStartHour
		hourCount = calendar.DefaultHourCount
	}

	return &service{
		bookingRepo:   cfg.BookingRepo,
		packageRepo:   cfg.PackageRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		gridStartHour: startHour,
		gridHourCount: hourCount,
	}, nil
}

// onGrid reports whether hour is one of the grid's hour rows
func (s *service) onGrid(hour int) bool {
	return hour >= s.gridStartHour && hour < s.gridStartHour+s.gridHourCount
}

// CreateBooking reserves a free slot for a client and charges one session to
// their active package. The package's used count is never incremented here;
// the reindex derives it from the live bookings.
func (s *service) CreateBooking(ctx context.Context, input *CreateBookingInput) (*CreateBookingOutput, error) {
	if input == nil {
		return nil, ErrEmptyClient
	}

	name := strings.TrimSpace(input.ClientName)
	if name == "" {
		return nil, ErrEmptyClient
	}

	if !calendar.ValidISO(input.DateISO) {
		return nil, ErrInvalidDate
	}

	if !s.onGrid(input.Hour) {
		return nil, ErrHourOutsideGrid
	}

	// The calendar is single-track: one booking per slot, regardless of client
	slot, err := s.bookingRepo.GetBookingsBySlot(ctx, &bookingRepo.GetBookingsBySlotInput{
		DateISO: input.DateISO,
		Hour:    input.Hour,
	})
	if err != nil {
		return nil, err
	}
	if len(slot.Bookings) > 0 {
		return nil, ErrSlotOccupied
	}

	candidates, err := s.packageRepo.GetPackagesByClient(ctx, &packRepo.GetPackagesByClientInput{
		ClientName: name,
	})
	if err != nil {
		return nil, err
	}

	target, err := resolveActivePackage(candidates.Packages)
	if err != nil {
		return nil, err
	}

	newBooking := &models.Booking{
		ID:         s.uuidGenerator.NewUUID(),
		ClientName: name,
		DateISO:    input.DateISO,
		Hour:       input.Hour,
		PackageID:  target.ID,
	}

	err = s.bookingRepo.SaveBooking(ctx, &bookingRepo.SaveBookingInput{
		Booking: newBooking,
	})
	if err != nil {
		return nil, err
	}

	// Derive sessionNumber and used from the live booking set
	reindexed, err := s.ReindexPackage(ctx, &ReindexPackageInput{
		PackageID: target.ID,
	})
	if err != nil {
		return nil, err
	}

	for _, b := range reindexed.Bookings {
		if b.ID == newBooking.ID {
			newBooking.SessionNumber = b.SessionNumber
			break
		}
	}

	return &CreateBookingOutput{
		Booking:     newBooking,
		PackageUsed: reindexed.Used,
	}, nil
}

// DeleteBooking removes a booking and reindexes its package. An unknown ID
// is a logged no-op so the caller can lag behind the live store. A reindex
// failure after the delete is surfaced but never undoes the delete; the next
// mutation's recompute converges the package again.
func (s *service) DeleteBooking(ctx context.Context, input *DeleteBookingInput) (*DeleteBookingOutput, error) {
	if input == nil || input.BookingID == "" {
		return nil, errors.New("input and booking ID cannot be empty")
	}

	b, err := s.bookingRepo.GetBooking(ctx, &bookingRepo.GetBookingInput{
		BookingID: input.BookingID,
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			log.Printf("delete of unknown booking %s ignored", input.BookingID)
			return &DeleteBookingOutput{Deleted: false}, nil
		}
		return nil, err
	}

	err = s.bookingRepo.DeleteBooking(ctx, &bookingRepo.DeleteBookingInput{
		BookingID: input.BookingID,
	})
	if err != nil {
		return nil, err
	}

	// A dangling booking just vanishes; there is no quota to restore
	if b.PackageID == "" {
		return &DeleteBookingOutput{Deleted: true}, nil
	}

	if _, err := s.ReindexPackage(ctx, &ReindexPackageInput{PackageID: b.PackageID}); err != nil {
		return nil, err
	}

	return &DeleteBookingOutput{Deleted: true}, nil
}

// ReindexPackage recomputes session numbers and the used count for one
// package from scratch. Only changed values are written; running it twice on
// an unchanged booking set writes nothing.
func (s *service) ReindexPackage(ctx context.Context, input *ReindexPackageInput) (*ReindexPackageOutput, error) {
	if input == nil || input.PackageID == "" {
		return nil, errors.New("input and package ID cannot be empty")
	}

	current, err := s.bookingRepo.GetBookingsByPackage(ctx, &bookingRepo.GetBookingsByPackageInput{
		PackageID: input.PackageID,
	})
	if err != nil {
		return nil, err
	}

	renumbered, used := reindexBookings(current.Bookings)

	stored := make(map[string]int, len(current.Bookings))
	for _, b := range current.Bookings {
		stored[b.ID] = b.SessionNumber
	}

	updates := make([]bookingRepo.SessionNumberUpdate, 0, len(renumbered))
	for _, b := range renumbered {
		if stored[b.ID] != b.SessionNumber {
			updates = append(updates, bookingRepo.SessionNumberUpdate{
				BookingID:     b.ID,
				SessionNumber: b.SessionNumber,
			})
		}
	}

	if len(updates) > 0 {
		err = s.bookingRepo.UpdateSessionNumbers(ctx, &bookingRepo.UpdateSessionNumbersInput{
			Updates: updates,
		})
		if err != nil {
			return nil, err
		}
	}

	pkg, err := s.packageRepo.GetPackage(ctx, &packRepo.GetPackageInput{
		PackageID: input.PackageID,
	})
	if err != nil {
		return nil, err
	}

	if pkg.Used != used {
		err = s.packageRepo.UpdateUsed(ctx, &packRepo.UpdateUsedInput{
			PackageID: input.PackageID,
			Used:      used,
		})
		if err != nil {
			return nil, err
		}
	}

	return &ReindexPackageOutput{
		Bookings: renumbered,
		Used:     used,
	}, nil
}

// GetCalendarWeek returns the week grid around an anchor date with its
// bookings in chronological order.
func (s *service) GetCalendarWeek(ctx context.Context, input *GetCalendarWeekInput) (*GetCalendarWeekOutput, error) {
	anchor := s.clock.Now()
	if input != nil && input.AnchorDateISO != "" {
		parsed, err := calendar.ParseISO(input.AnchorDateISO)
		if err != nil {
			return nil, ErrInvalidDate
		}
		anchor = parsed
	}

	days := calendar.WeekDays(anchor)
	daysISO := make([]string, len(days))
	for i, day := range days {
		daysISO[i] = calendar.FormatISO(day)
	}

	week, err := s.bookingRepo.GetBookingsByDates(ctx, &bookingRepo.GetBookingsByDatesInput{
		DatesISO: daysISO,
	})
	if err != nil {
		return nil, err
	}

	bookings := week.Bookings
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].DateISO != bookings[j].DateISO {
			return bookings[i].DateISO < bookings[j].DateISO
		}
		if bookings[i].Hour != bookings[j].Hour {
			return bookings[i].Hour < bookings[j].Hour
		}
		return bookings[i].ID < bookings[j].ID
	})

	return &GetCalendarWeekOutput{
		DaysISO:  daysISO,
		Hours:    calendar.GridHours(s.gridStartHour, s.gridHourCount),
		Bookings: bookings,
	}, nil
}
