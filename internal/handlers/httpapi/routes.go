package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"trainbook/internal/models"
	"trainbook/internal/services/roster"
	"trainbook/internal/services/scheduling"
)

type createBookingRequest struct {
	ClientName string `json:"clientName"`
	DateISO    string `json:"dateISO"`
	Hour       int    `json:"hour"`
}

type createPackageRequest struct {
	// Clients is a comma-separated list of names; several names make a
	// shared package
	Clients string `json:"clients"`
	Size    int    `json:"size"`
}

type confirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// GetCalendarWeek handles GET /api/calendar?anchor=yyyy-MM-dd
func (h *Handler) GetCalendarWeek(c echo.Context) error {
	out, err := h.scheduling.GetCalendarWeek(c.Request().Context(), &scheduling.GetCalendarWeekInput{
		AnchorDateISO: c.QueryParam("anchor"),
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"days":     out.DaysISO,
		"hours":    out.Hours,
		"bookings": out.Bookings,
	})
}

// CreateBooking handles POST /api/bookings
func (h *Handler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	out, err := h.scheduling.CreateBooking(c.Request().Context(), &scheduling.CreateBookingInput{
		ClientName: req.ClientName,
		DateISO:    req.DateISO,
		Hour:       req.Hour,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking": out.Booking,
		"used":    out.PackageUsed,
	})
}

// DeleteBooking handles DELETE /api/bookings/:id
func (h *Handler) DeleteBooking(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking id required"})
	}

	_, err := h.scheduling.DeleteBooking(c.Request().Context(), &scheduling.DeleteBookingInput{
		BookingID: id,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListClients handles GET /api/clients
func (h *Handler) ListClients(c echo.Context) error {
	out, err := h.roster.ListClients(c.Request().Context(), &roster.ListClientsInput{})
	if err != nil {
		return fail(c, err)
	}

	clients := make([]echo.Map, 0, len(out.Clients))
	for _, client := range out.Clients {
		entry := echo.Map{
			"name":            client.Name,
			"packages":        packageViews(client.Packages),
			"sharedSecondary": client.SharedSecondary,
		}
		if client.Active != nil {
			entry["active"] = packageView(client.Active)
		}
		clients = append(clients, entry)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"clients": clients,
		// The size menu offered when purchasing a package; stored sizes are
		// not validated against it
		"packageSizes": models.PackageSizes,
	})
}

// DeleteClient handles DELETE /api/clients/:name
func (h *Handler) DeleteClient(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	out, err := h.roster.DeleteClient(c.Request().Context(), &roster.DeleteClientInput{
		ClientName: c.Param("name"),
		Confirmed:  req.Confirmed,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"packagesDeleted": out.PackagesDeleted,
		"bookingsDeleted": out.BookingsDeleted,
	})
}

// CreatePackage handles POST /api/packages
func (h *Handler) CreatePackage(c echo.Context) error {
	var req createPackageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	out, err := h.roster.CreatePackage(c.Request().Context(), &roster.CreatePackageInput{
		ClientNames: strings.Split(req.Clients, ","),
		Size:        req.Size,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"package": packageView(out.Package)})
}

// DeletePackage handles DELETE /api/packages/:id
func (h *Handler) DeletePackage(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	_, err := h.roster.DeletePackage(c.Request().Context(), &roster.DeletePackageInput{
		PackageID: c.Param("id"),
		Confirmed: req.Confirmed,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPackageSessions handles GET /api/packages/:id/sessions?client=Name
func (h *Handler) GetPackageSessions(c echo.Context) error {
	out, err := h.roster.GetPackageSessions(c.Request().Context(), &roster.GetPackageSessionsInput{
		PackageID:  c.Param("id"),
		ClientName: c.QueryParam("client"),
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"package":  packageView(out.Package),
		"bookings": out.Bookings,
	})
}

// packageView renders a package document the way the store keeps it: either
// a sole clientName or a shared clientNames list.
func packageView(p *models.Package) echo.Map {
	view := echo.Map{
		"id":       p.ID,
		"size":     p.Size,
		"used":     p.Used,
		"addedISO": p.AddedISO,
	}
	if p.Owner.Shared() {
		view["clientNames"] = p.Owner.Names()
	} else {
		view["clientName"] = p.Owner.Primary()
	}
	return view
}

func packageViews(packages []*models.Package) []echo.Map {
	views := make([]echo.Map, 0, len(packages))
	for _, p := range packages {
		views = append(views, packageView(p))
	}
	return views
}
