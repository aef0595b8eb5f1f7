package scheduling

import (
	"sort"

	"trainbook/internal/models"
)

// reindexBookings renumbers one package's bookings from scratch: it returns
// a copy sorted by (dateISO, hour) with session numbers 1..n, plus the used
// count n. The input is not modified.
//
// The lexical date comparison is chronological because dates are zero-padded
// yyyy-MM-dd. The ID tie-break only matters if slot exclusivity has been
// violated; it keeps the recompute deterministic regardless.
func reindexBookings(bookings []*models.Booking) ([]*models.Booking, int) {
	renumbered := make([]*models.Booking, len(bookings))
	for i, b := range bookings {
		copied := *b
		renumbered[i] = &copied
	}

	sort.SliceStable(renumbered, func(i, j int) bool {
		if renumbered[i].DateISO != renumbered[j].DateISO {
			return renumbered[i].DateISO < renumbered[j].DateISO
		}
		if renumbered[i].Hour != renumbered[j].Hour {
			return renumbered[i].Hour < renumbered[j].Hour
		}
		return renumbered[i].ID < renumbered[j].ID
	})

	for i := range renumbered {
		renumbered[i].SessionNumber = i + 1
	}

	return renumbered, len(renumbered)
}
