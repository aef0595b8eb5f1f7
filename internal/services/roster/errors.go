package roster

// RosterError is a custom error type for client and package roster errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyClient             RosterError = "client name cannot be empty"
	ErrInvalidPackageSize      RosterError = "package size must be positive"
	ErrConfirmationRequired    RosterError = "deletion requires confirmation"
	ErrPackageNotFound         RosterError = "package not found"
	ErrPackageInUse            RosterError = "package still has unused sessions"
	ErrClientHasActivePackages RosterError = "client still has unfinished packages"
	ErrNilConfig               RosterError = "config cannot be nil"
	ErrNilPackageRepo          RosterError = "package repository cannot be nil"
	ErrNilBookingRepo          RosterError = "booking repository cannot be nil"
	ErrNilScheduler            RosterError = "scheduling service cannot be nil"
	ErrNilClock                RosterError = "clock cannot be nil"
	ErrNilUUID                 RosterError = "UUID generator cannot be nil"
)
