// Package httpapi exposes the scheduling and roster services over a small
// JSON API. It is a thin boundary: validation and accounting live in the
// services, and the stream endpoint relays the stores' change feeds so a
// calendar view can stay current the same way the services do.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
	"trainbook/internal/services/roster"
	"trainbook/internal/services/scheduling"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Scheduling  scheduling.Service
	Roster      roster.Service
	BookingRepo bookingRepo.Repository
	PackageRepo packRepo.Repository
}

// Handler serves the booking calendar API
type Handler struct {
	scheduling  scheduling.Service
	roster      roster.Service
	bookingRepo bookingRepo.Repository
	packageRepo packRepo.Repository
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Scheduling == nil {
		return nil, errors.New("scheduling service cannot be nil")
	}
	if cfg.Roster == nil {
		return nil, errors.New("roster service cannot be nil")
	}
	if cfg.BookingRepo == nil {
		return nil, errors.New("booking repository cannot be nil")
	}
	if cfg.PackageRepo == nil {
		return nil, errors.New("package repository cannot be nil")
	}

	return &Handler{
		scheduling:  cfg.Scheduling,
		roster:      cfg.Roster,
		bookingRepo: cfg.BookingRepo,
		packageRepo: cfg.PackageRepo,
	}, nil
}

// Register mounts the API routes on an echo instance
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/calendar", h.GetCalendarWeek)
	api.POST("/bookings", h.CreateBooking)
	api.DELETE("/bookings/:id", h.DeleteBooking)

	api.GET("/clients", h.ListClients)
	api.DELETE("/clients/:name", h.DeleteClient)

	api.POST("/packages", h.CreatePackage)
	api.DELETE("/packages/:id", h.DeletePackage)
	api.GET("/packages/:id/sessions", h.GetPackageSessions)

	api.GET("/stream", h.Stream)
}

// fail translates service errors into HTTP responses
func fail(c echo.Context, err error) error {
	return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrEmptyClient),
		errors.Is(err, scheduling.ErrInvalidDate),
		errors.Is(err, scheduling.ErrHourOutsideGrid),
		errors.Is(err, roster.ErrEmptyClient),
		errors.Is(err, roster.ErrInvalidPackageSize):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrPackageNotFound):
		return http.StatusNotFound
	case errors.Is(err, scheduling.ErrSlotOccupied),
		errors.Is(err, scheduling.ErrNoPackage),
		errors.Is(err, roster.ErrPackageInUse),
		errors.Is(err, roster.ErrClientHasActivePackages):
		return http.StatusConflict
	case errors.Is(err, roster.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	default:
		return http.StatusInternalServerError
	}
}
