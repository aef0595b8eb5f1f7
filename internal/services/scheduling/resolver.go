package scheduling

import (
	"sort"

	"trainbook/internal/models"
)

// resolveActivePackage picks the package to charge for one session, given
// every package that names the client. Pure selection: no side effects.
//
// Candidates are ordered by purchase date (oldest first, undated as epoch),
// then by ID so selection does not depend on store iteration order. When any
// candidate is shared, the first shared candidate's participant set defines
// the group and only packages with exactly that set (compared as a sorted
// set) stay eligible: sessions booked by any member drain the pooled quota
// in purchase order.
func resolveActivePackage(candidates []*models.Package) (*models.Package, error) {
	if len(candidates) == 0 {
		return nil, ErrNoPackage
	}

	ordered := make([]*models.Package, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti, tj := ordered[i].PurchaseTime(), ordered[j].PurchaseTime()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var shared *models.Package
	for _, p := range ordered {
		if p.Owner.Shared() {
			shared = p
			break
		}
	}

	if shared != nil {
		grouped := make([]*models.Package, 0, len(ordered))
		for _, p := range ordered {
			if p.Owner.Shared() && p.Owner.SameGroup(shared.Owner) {
				grouped = append(grouped, p)
			}
		}
		ordered = grouped
	}

	for _, p := range ordered {
		if p.Active() {
			return p, nil
		}
	}

	return nil, ErrNoPackage
}
