package models

// Booking represents one scheduled training session occupying a calendar slot
type Booking struct {
	// ID is the unique identifier for the booking
	ID string `json:"id"`

	// ClientName is the individual attending, even when the package is shared
	ClientName string `json:"clientName"`

	// DateISO is the session date (yyyy-MM-dd)
	DateISO string `json:"dateISO"`

	// Hour is the hour-of-day slot on the scheduling grid
	Hour int `json:"hour"`

	// PackageID is the package this session counts against; may be empty
	// for a dangling booking, which is tolerated
	PackageID string `json:"packageId,omitempty"`

	// SessionNumber is the 1-based chronological rank of this booking among
	// all bookings of the same package; recomputed after every mutation
	SessionNumber int `json:"sessionNumber,omitempty"`
}
