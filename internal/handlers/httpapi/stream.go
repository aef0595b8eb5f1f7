package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"trainbook/internal/models"
	bookingRepo "trainbook/internal/repositories/booking"
	packRepo "trainbook/internal/repositories/pack"
)

// event is one server-sent message: a full snapshot of one collection
type event struct {
	name string
	data interface{}
}

// Stream handles GET /api/stream. It relays the stores' change feeds as
// server-sent events; each mutation produces a fresh snapshot of the changed
// collection, so a client can drop its state and re-render, the same way the
// original live subscription worked.
func (h *Handler) Stream(c echo.Context) error {
	ctx := c.Request().Context()

	events := make(chan event, 8)

	packageSub, err := h.packageRepo.Subscribe(ctx, &packRepo.SubscribeInput{
		OnChange: func(packages []*models.Package) {
			select {
			case events <- event{name: "packages", data: packages}:
			case <-ctx.Done():
			}
		},
	})
	if err != nil {
		return fail(c, err)
	}
	defer packageSub.Close()

	bookingSub, err := h.bookingRepo.Subscribe(ctx, &bookingRepo.SubscribeInput{
		OnChange: func(bookings []*models.Booking) {
			select {
			case events <- event{name: "bookings", data: bookings}:
			case <-ctx.Done():
			}
		},
	})
	if err != nil {
		return fail(c, err)
	}
	defer bookingSub.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			payload, err := json.Marshal(ev.data)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", ev.name, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
