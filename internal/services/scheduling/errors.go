package scheduling

// SchedulingError is a custom error type for scheduling-related errors
type SchedulingError string

// Error implements the error interface
func (e SchedulingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyClient     SchedulingError = "client name cannot be empty"
	ErrInvalidDate     SchedulingError = "date must be a yyyy-MM-dd calendar date"
	ErrHourOutsideGrid SchedulingError = "hour is outside the scheduling grid"
	ErrSlotOccupied    SchedulingError = "slot already has a booking"
	ErrNoPackage       SchedulingError = "no available package"
	ErrNilConfig       SchedulingError = "config cannot be nil"
	ErrNilBookingRepo  SchedulingError = "booking repository cannot be nil"
	ErrNilPackageRepo  SchedulingError = "package repository cannot be nil"
	ErrNilClock        SchedulingError = "clock cannot be nil"
	ErrNilUUID         SchedulingError = "UUID generator cannot be nil"
)
